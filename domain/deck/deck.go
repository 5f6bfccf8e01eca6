// Package deck implements a replenishing card source of raw card numbers.
//
// A Deck holds the multiset 1..DeckSize. Cards are drawn from the top of the
// shuffled pile; when the pile is empty the full multiset is regenerated and
// reshuffled before the next draw, so drawing never fails.
package deck

// Deck is the card source used by a single battle.
type Deck struct {
	DeckSize int
	Rand     Source

	cards         []int
	prepared      bool
	regenerations int
}

// New returns a prepared and shuffled deck of size cards.
func New(size int, src Source) *Deck {
	d := &Deck{
		DeckSize: size,
		Rand:     src,
	}
	d.PrepareDeck()
	return d
}

// PrepareDeck fills the deck with every card number from 1 to DeckSize and
// shuffles it.
func (d *Deck) PrepareDeck() {
	d.cards = make([]int, 0, d.DeckSize)
	for i := 1; i <= d.DeckSize; i++ {
		d.cards = append(d.cards, i)
	}
	d.prepared = true
	d.Shuffle()
}

// DrawCard removes and returns the top card. An exhausted deck is regenerated
// and reshuffled first.
func (d *Deck) DrawCard() int {
	if d.DeckSize <= 0 {
		return 0
	}
	if !d.prepared {
		d.PrepareDeck()
	}
	if len(d.cards) == 0 {
		d.regenerations++
		d.PrepareDeck()
	}
	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards = d.cards[:last]
	return c
}

// Remaining returns how many cards are left before the next regeneration.
func (d *Deck) Remaining() int {
	if !d.prepared {
		return d.DeckSize
	}
	return len(d.cards)
}

// Regenerations counts how many times the deck ran out and was rebuilt.
func (d *Deck) Regenerations() int {
	return d.regenerations
}

// Stack puts cards on top of the pile so that they are drawn next, in the
// given order. It is meant for scripted deals; the stacked cards are extra
// copies and do not leave the regular multiset.
func (d *Deck) Stack(cards ...int) {
	if !d.prepared {
		d.PrepareDeck()
	}
	for i := len(cards) - 1; i >= 0; i-- {
		d.cards = append(d.cards, cards[i])
	}
}
