package duel

import (
	"math/rand"
	"testing"
)

func hand(ranks ...uint8) Hand {
	h := make(Hand, len(ranks))
	for i, r := range ranks {
		h[i] = Card{suit: uint8(i % SuitCount), rank: r}
	}
	return h
}

func TestValueIsRankSum(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for n := 0; n < 200; n++ {
		size := r.Intn(8)
		h := make(Hand, size)
		sum := 0
		for i := range h {
			rank := uint8(r.Intn(RankCount))
			h[i] = Card{suit: uint8(r.Intn(SuitCount)), rank: rank}
			sum += int(rank)
		}
		if Value(h) != sum {
			t.Fatalf("Value(%v) = %d, want %d", h, Value(h), sum)
		}
		r.Shuffle(len(h), func(i, j int) { h[i], h[j] = h[j], h[i] })
		if Value(h) != sum {
			t.Fatalf("Value depends on order for %v", h)
		}
	}
}

func TestIsBust(t *testing.T) {
	tests := []struct {
		name      string
		hand      Hand
		threshold int
		expected  bool
	}{
		{"empty hand", nil, 21, false},
		{"exactly 21", hand(10, 10, 1), 21, false},
		{"22 over 21", hand(10, 10, 2), 21, true},
		{"23 under 24", hand(10, 10, 3), 24, false},
		{"25 over 24", hand(10, 10, 5), 24, true},
		{"low threshold", hand(9, 9), 17, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBust(tt.hand, tt.threshold); got != tt.expected {
				t.Errorf("IsBust(%v, %d) = %v, want %v", tt.hand, tt.threshold, got, tt.expected)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Hand
		ta, tb   int
		expected int
	}{
		{"higher wins", hand(10, 10), hand(9, 9), 21, 21, 1},
		{"lower loses", hand(5, 5), hand(9, 9), 21, 21, -1},
		{"equal draws", hand(10, 8), hand(9, 9), 21, 21, 0},
		{"bust loses to standing", hand(10, 10, 5), hand(1, 1), 21, 21, -1},
		{"standing beats bust", hand(1, 1), hand(10, 10, 5), 21, 21, 1},
		{"both bust draw", hand(10, 10, 5), hand(10, 10, 10), 21, 21, 0},
		{"own threshold keeps 23 alive", hand(10, 10), hand(10, 10, 3), 21, 24, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b, tt.ta, tt.tb); got != tt.expected {
				t.Errorf("Compare = %d, want %d", got, tt.expected)
			}
		})
	}
}
