// Package rng provides the small pseudo-random generator used for food
// placement. It needs no entropy source: a seed is derived from the wall
// clock and mixed with an xorshift-multiply step.
package rng

import "time"

const (
	// mixMultiplier is the odd constant applied after the xorshift rounds.
	mixMultiplier uint64 = 2685821657736338717
	// sequenceStep is the 64-bit golden ratio increment used by Sequence.
	sequenceStep uint64 = 0x9E3779B97F4A7C15
)

// Source supplies seeds for Next.
type Source interface {
	Seed() uint64
}

// Seed returns the current wall-clock time in nanoseconds since the Unix epoch.
func Seed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Next maps seed to a pseudo-random value in [0, bound).
// The same seed and bound always yield the same value. bound must be > 0.
func Next(seed uint64, bound uint32) uint32 {
	state := seed
	state ^= state >> 21
	state ^= state << 35
	state ^= state >> 4
	state *= mixMultiplier
	return uint32(state) % bound
}

// Clock is a Source backed by the wall clock.
type Clock struct{}

// Seed implements Source.
func (Clock) Seed() uint64 {
	return Seed()
}

// Sequence is a deterministic Source for reproducible games.
// Successive seeds are spread by a large odd step, so they differ in every
// bit position and the seed+1 draw made by callers never lands on a later
// seed.
type Sequence struct {
	next uint64
}

// NewSequence creates a Sequence that starts at start.
func NewSequence(start uint64) *Sequence {
	return &Sequence{next: start}
}

// Seed implements Source.
func (s *Sequence) Seed() uint64 {
	v := s.next
	s.next += sequenceStep
	return v
}
