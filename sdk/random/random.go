// Package random isolates the randomness used for answer variant selection
// and widget identifiers so callers can inject deterministic sources.
package random

import (
	"math/rand/v2"
	"time"
)

// Alphabet is the character set for generated identifier suffixes.
const Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// New returns a PCG-backed source seeded with the given values.
func New(seed1, seed2 uint64) Source {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// Default returns a source seeded from the current time.
func Default() Source {
	now := uint64(time.Now().UnixNano())
	return New(now, now>>17|now<<47)
}

// String returns n characters drawn from Alphabet.
func String(src Source, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = Alphabet[src.IntN(len(Alphabet))]
	}
	return string(b)
}

// Pick returns one element of items chosen uniformly. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Sequence is a Source replaying fixed values modulo n, for tests.
type Sequence struct {
	Values []int
	pos    int
}

// IntN returns the next value modulo n.
func (s *Sequence) IntN(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
