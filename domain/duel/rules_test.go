package duel

import (
	"errors"
	"testing"
)

func TestCheckBet(t *testing.T) {
	tests := []struct {
		name     string
		amount   int
		round    int
		health   int
		tableMax int
		wager    int
		wantErr  bool
	}{
		{"round one minimum", 1, 1, 21, 100, 1, false},
		{"below dynamic minimum", 2, 3, 21, 100, 0, true},
		{"at dynamic minimum", 3, 3, 21, 100, 3, false},
		{"above health", 22, 1, 21, 100, 0, true},
		{"above table max", 11, 1, 50, 10, 0, true},
		{"all health", 21, 1, 21, 100, 21, false},
		{"forced all-in below minimum", 1, 3, 2, 100, 2, false},
		{"forced all-in ignores amount", 50, 5, 4, 100, 4, false},
		{"health equals round", 3, 3, 3, 100, 3, false},
		{"no health", 1, 1, 0, 100, 0, true},
		{"table max below round", 4, 4, 20, 2, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wager, err := CheckBet(tt.amount, tt.round, tt.health, tt.tableMax)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got wager %d", wager)
				}
				if !errors.Is(err, ErrInvalidWager) {
					t.Fatalf("expected ErrInvalidWager, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if wager != tt.wager {
				t.Fatalf("wager = %d, want %d", wager, tt.wager)
			}
		})
	}
}

func TestWagerBounds(t *testing.T) {
	if MinWager(1, 21) != 1 || MinWager(5, 3) != 3 || MinWager(2, 0) != 0 {
		t.Fatal("MinWager is not min(round, health)")
	}
	if MaxWager(100, 21) != 21 || MaxWager(10, 21) != 10 {
		t.Fatal("MaxWager is not min(tableMax, health)")
	}
}

func TestBossWagerSchedule(t *testing.T) {
	b := NewBoss(BossTemplate{ID: "x", Health: 10, WagerSchedule: []int{2, 4, 8}})
	for round, want := range map[int]int{1: 2, 2: 4, 3: 8, 4: 8, 10: 8, 0: 2} {
		if got := b.WagerFor(round); got != want {
			t.Errorf("WagerFor(%d) = %d, want %d", round, got, want)
		}
	}
	for r := 1; r <= len(DefaultWagerSchedule); r++ {
		if DefaultWagerSchedule[r-1] <= r {
			t.Errorf("default schedule %d at round %d does not outpace the player minimum", DefaultWagerSchedule[r-1], r)
		}
	}
}

func TestTemplateNormalize(t *testing.T) {
	tmpl := BossTemplate{ID: "plain", Health: 5}.Normalize()
	if tmpl.BustThreshold != 21 || tmpl.StayThreshold != 17 {
		t.Fatalf("unexpected defaults %d/%d", tmpl.BustThreshold, tmpl.StayThreshold)
	}
	if len(tmpl.WagerSchedule) != len(DefaultWagerSchedule) {
		t.Fatal("default schedule not applied")
	}
	tmpl.WagerSchedule[0] = 99
	if DefaultWagerSchedule[0] == 99 {
		t.Fatal("Normalize shares the default schedule")
	}
}
