package duel

import (
	"log/slog"

	"github.com/luca-patrignani/gunslinger/domain/deck"
)

// Option configures a Battle at construction.
type Option func(Battle) Battle

func WithRules(r Rules) Option {
	return func(b Battle) Battle {
		b.rules = r
		return b
	}
}

// WithSource builds the battle deck on src.
func WithSource(src deck.Source) Option {
	return func(b Battle) Battle {
		b.deck = NewDuelDeck(src)
		return b
	}
}

func WithDeck(d DuelDeck) Option {
	return func(b Battle) Battle {
		b.deck = d
		return b
	}
}

func WithTracker(t Tracker) Option {
	return func(b Battle) Battle {
		b.tracker = t
		return b
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(b Battle) Battle {
		if l != nil {
			b.logger = l
		}
		return b
	}
}

// WithObserver registers o before the battle emits anything, so it also sees
// the events of Initialize.
func WithObserver(o Observer) Option {
	return func(b Battle) Battle {
		b.observers = append(b.observers, o)
		return b
	}
}

func WithID(id string) Option {
	return func(b Battle) Battle {
		b.id = id
		return b
	}
}
