package duel

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Gear  = 0 // ⚙ (green)
	Sun   = 1 // ☀ (orange)
	Bolt  = 2 // ⚡ (purple)
	Skull = 3 // 💀 (gray)
)

const (
	MinRank = 0
	MaxRank = 10
	// SuitCount * RankCount cards make a full deck.
	SuitCount = 4
	RankCount = MaxRank - MinRank + 1
	DeckSize  = SuitCount * RankCount
)

// Card is a playing card with suit and rank.
type Card struct {
	suit uint8
	rank uint8
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Gear, Sun, Bolt, Skull)
//   - rank: 0-10
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit >= SuitCount || rank > MaxRank {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// Suit returns the suit value of the Card.
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank of the Card, which is also its value.
func (c Card) Rank() uint8 {
	return c.rank
}

// SuitName returns the lowercase suit name.
func (c Card) SuitName() string {
	switch c.suit {
	case Gear:
		return "gear"
	case Sun:
		return "sun"
	case Bolt:
		return "bolt"
	case Skull:
		return "skull"
	}
	return "unknown"
}

// String renders the rank followed by a colored suit symbol.
func (c Card) String() string {
	var suit string
	switch c.suit {
	case Gear:
		suit = pterm.LightGreen("⚙")
	case Sun:
		suit = pterm.Yellow("☀")
	case Bolt:
		suit = pterm.LightMagenta("⚡")
	case Skull:
		suit = pterm.Gray("💀")
	default:
		suit = "?"
	}
	return fmt.Sprintf("%d", c.rank) + suit
}

// Hand is the ordered list of cards held by one combatant during a round.
type Hand []Card

func (h Hand) String() string {
	s := ""
	for i, c := range h {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s
}

// MarshalJSON encodes the card as {"suit":"gear","rank":7}.
func (c Card) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"suit":%q,"rank":%d}`, c.SuitName(), c.rank)), nil
}
