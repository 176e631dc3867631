package phonology

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand/v2"
	"strconv"
)

// Seed identifies a reproducible random stream. Every seed is text: integer
// seeds are rendered in base 10, so IntSeed(42) and StringSeed("42") are the
// same stream. The zero Seed means "unseeded".
type Seed struct {
	text string
	set  bool
}

// StringSeed returns a seed for s.
func StringSeed(s string) Seed { return Seed{text: s, set: true} }

// IntSeed returns a seed for n.
func IntSeed(n int64) Seed { return StringSeed(strconv.FormatInt(n, 10)) }

// ParseSeed turns a command-line value into a seed; "" is unseeded.
func ParseSeed(s string) Seed {
	if s == "" {
		return Seed{}
	}
	return StringSeed(s)
}

// IsZero reports whether the seed is unset.
func (s Seed) IsZero() bool { return !s.set }

// String returns the seed text, or "" when unset.
func (s Seed) String() string { return s.text }

// Derive returns an independent seed for a sub-stream, e.g. the i-th of
// several languages generated from one user seed. Unset seeds stay unset.
func (s Seed) Derive(label string) Seed {
	if !s.set {
		return Seed{}
	}
	return StringSeed(s.text + "/" + label)
}

// words returns the two PCG seed words: the first 16 bytes of the SHA-256
// digest of the seed text, read big-endian.
func (s Seed) words() (uint64, uint64) {
	if !s.set {
		return rand.Uint64(), rand.Uint64()
	}
	sum := sha256.Sum256([]byte(s.text))
	return binary.BigEndian.Uint64(sum[0:8]), binary.BigEndian.Uint64(sum[8:16])
}

// NewSource returns a PCG source positioned at the start of the seed's stream.
func NewSource(s Seed) *rand.PCG {
	hi, lo := s.words()
	return rand.NewPCG(hi, lo)
}

// NewRand returns a generator owned by the caller. It is not safe for
// concurrent use; give each goroutine its own.
func NewRand(s Seed) *rand.Rand {
	return rand.New(NewSource(s))
}
