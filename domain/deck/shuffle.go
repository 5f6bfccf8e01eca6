package deck

import (
	"math/big"
	"math/rand"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Source picks uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

type cryptoSource struct {
	suite suites.Suite
}

// NewCryptoSource returns a Source backed by the Ed25519 suite random stream.
func NewCryptoSource() Source {
	return cryptoSource{suite: suite}
}

func (s cryptoSource) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return int(random.Int(big.NewInt(int64(n)), s.suite.RandomStream()).Int64())
}

// NewSeededSource returns a reproducible Source. Same seed, same shuffles.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Shuffle permutes the remaining cards in place (Fisher-Yates).
func (d *Deck) Shuffle() {
	if d.Rand == nil {
		d.Rand = NewCryptoSource()
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.Rand.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}
