package guess

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"math/big"
)

// Closed range the target is drawn from.
const (
	MinTarget uint32 = 1
	MaxTarget uint32 = 100
)

// Source produces the target for a new game.
type Source interface {
	Target() uint32
}

// RandomSource returns a Source backed by crypto/rand.
func RandomSource() Source { return randomSource{} }

type randomSource struct{}

func (randomSource) Target() uint32 {
	span := big.NewInt(int64(MaxTarget - MinTarget + 1))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(err)
	}
	return MinTarget + uint32(n.Int64())
}

// SeededSource returns a deterministic Source: the target is
// HMAC-SHA256(seed, "target") reduced into [MinTarget, MaxTarget].
func SeededSource(seed string) Source { return seededSource(seed) }

type seededSource string

func (s seededSource) Target() uint32 {
	h := hmac.New(sha256.New, []byte(s))
	h.Write([]byte("target"))
	sum := h.Sum(nil)
	n := binary.BigEndian.Uint64(sum[:8])
	return MinTarget + uint32(n%uint64(MaxTarget-MinTarget+1))
}

// FixedSource always yields its own value. Values outside the target
// range are allowed; tests use it to pin the game.
type FixedSource uint32

func (f FixedSource) Target() uint32 { return uint32(f) }
