package run

import (
	"log/slog"
	"slices"

	"github.com/luca-patrignani/gunslinger/domain/duel"
)

type Option func(Tracker) Tracker

// WithBosses replaces the campaign. The templates are copied; a boss without
// a wager schedule plays the battle rules' one.
func WithBosses(bosses ...duel.BossTemplate) Option {
	return func(t Tracker) Tracker {
		t.bosses = make([]duel.BossTemplate, 0, len(bosses))
		for _, b := range bosses {
			b.WagerSchedule = slices.Clone(b.WagerSchedule)
			t.bosses = append(t.bosses, b)
		}
		return t
	}
}

// WithRunBonus sets the reputation awarded for completing the campaign.
func WithRunBonus(bonus int) Option {
	return func(t Tracker) Tracker {
		t.runBonus = bonus
		return t
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(t Tracker) Tracker {
		if l != nil {
			t.logger = l
		}
		return t
	}
}
