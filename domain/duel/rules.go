package duel

import (
	"fmt"
	"time"
)

// Rules are the table settings shared by every battle of a session.
type Rules struct {
	TableMax            int
	BustDelay           time.Duration
	BattleEndDelay      time.Duration
	ImmediateResolution bool
	// WagerSchedule is used for bosses whose template has none.
	WagerSchedule []int
}

func DefaultRules() Rules {
	return Rules{
		TableMax:       100,
		BustDelay:      time.Second,
		BattleEndDelay: 2 * time.Second,
		WagerSchedule:  DefaultWagerSchedule,
	}
}

// MinWager is the dynamic minimum for round: the round number, capped by the
// player's health.
func MinWager(round, health int) int {
	return max(0, min(round, health))
}

// MaxWager is the largest wager the table accepts from a player with health.
func MaxWager(tableMax, health int) int {
	return max(0, min(tableMax, health))
}

// CheckBet validates amount for round and returns the wager that will be
// played. A player whose health is below the round minimum goes all-in
// whatever amount was asked.
func CheckBet(amount, round, health, tableMax int) (int, error) {
	if health <= 0 {
		return 0, fmt.Errorf("%w: no health left to wager", ErrInvalidWager)
	}
	if health < round {
		return health, nil
	}
	lo := MinWager(round, health)
	hi := max(MaxWager(tableMax, health), lo)
	if amount < lo || amount > hi {
		return 0, fmt.Errorf("%w: %d not in [%d, %d] for round %d", ErrInvalidWager, amount, lo, hi, round)
	}
	return amount, nil
}
