package duel

// PlayerBustThreshold is the fixed bust limit for the player.
const PlayerBustThreshold = 21

// Value sums the ranks of the hand.
func Value(hand Hand) int {
	v := 0
	for _, c := range hand {
		v += int(c.rank)
	}
	return v
}

// IsBust reports whether the hand's value is over threshold.
func IsBust(hand Hand, threshold int) bool {
	return Value(hand) > threshold
}

// Compare returns 1 when a beats b, -1 when b beats a and 0 on a draw. A bust
// hand loses to a standing one and two bust hands draw; otherwise the higher
// value wins. Each hand is judged against its own bust threshold.
func Compare(a, b Hand, thresholdA, thresholdB int) int {
	bustA := IsBust(a, thresholdA)
	bustB := IsBust(b, thresholdB)
	switch {
	case bustA && bustB:
		return 0
	case bustA:
		return -1
	case bustB:
		return 1
	}
	va, vb := Value(a), Value(b)
	switch {
	case va > vb:
		return 1
	case va < vb:
		return -1
	}
	return 0
}
