package duel

import (
	"errors"

	"github.com/luca-patrignani/gunslinger/domain/deck"
)

// DuelDeck wraps a generic deck and converts its raw card numbers into Cards.
type DuelDeck struct {
	*deck.Deck
}

// NewDuelDeck creates a shuffled 44 card deck (11 ranks × 4 suits) drawing
// randomness from src. A nil src uses the crypto backed default.
func NewDuelDeck(src deck.Source) DuelDeck {
	return DuelDeck{
		Deck: deck.New(DeckSize, src),
	}
}

// IntToCard converts a raw card number (1-44) to a Card.
//
// Card numbering:
//   - 1-11: Gear (0 through 10)
//   - 12-22: Sun
//   - 23-33: Bolt
//   - 34-44: Skull
func IntToCard(rawCard int) (Card, error) {
	if rawCard > DeckSize || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}
	suit := uint8((rawCard - 1) / RankCount)
	rank := uint8((rawCard - 1) % RankCount)
	return NewCard(suit, rank)
}

// CardToInt is the inverse of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*RankCount + int(card.Rank()) + 1
}

// Draw takes the next card. The underlying deck regenerates itself when
// empty, so Draw never fails.
func (d DuelDeck) Draw() Card {
	c, err := IntToCard(d.Deck.DrawCard())
	if err != nil {
		// only reachable with a deck built for another size
		panic(err)
	}
	return c
}

// Stack puts cards on top of the deck, first card drawn first.
func (d DuelDeck) Stack(cards ...Card) {
	raw := make([]int, len(cards))
	for i, c := range cards {
		raw[i] = CardToInt(c)
	}
	d.Deck.Stack(raw...)
}
