package xorshift

import (
	"errors"

	"github.com/zeebo/errs"
	"github.com/zeebo/v8rand/internal/debug"
)

// Error is the class that contains all the errors from this package.
var Error = errs.Class("xorshift")

// ErrZeroState is returned when a state would have both words zero. That
// state is a fixed point of the transition and never leaves zero.
var ErrZeroState = errors.New("state cannot be zero")

// T is a xorshift128 generator whose outputs are whitened by the murmur3
// finalizer. The zero value is invalid.
type T struct {
	s0 uint64
	s1 uint64
}

const (
	c1 = 0xFF51AFD7ED558CCD
	c2 = 0xC4CEB9FE1A85EC53
)

// mix is the murmur3 64 bit finalizer. It is a bijection with mix(0) == 0.
func mix(h uint64) uint64 {
	h ^= h >> 33
	h *= c1
	h ^= h >> 33
	h *= c2
	h ^= h >> 33
	return h
}

// New constructs a generator from the seed. The second state word is derived
// from the complement of the first so that a zero seed still produces a valid
// state.
func New(seed uint64) (T, error) {
	s0 := mix(seed)
	return FromState(s0, mix(^s0))
}

// FromState constructs a generator with the exact state words.
func FromState(s0, s1 uint64) (T, error) {
	if s0 == 0 && s1 == 0 {
		return T{}, Error.Wrap(ErrZeroState)
	}
	return T{s0: s0, s1: s1}, nil
}

// State returns the current state words.
func (x *T) State() (s0, s1 uint64) { return x.s0, x.s1 }

// Step advances the state once without producing an output.
func (x *T) Step() {
	s1, s0 := x.s0, x.s1

	x.s0 = s0
	s1 ^= s1 << 23
	s1 ^= s1 >> 17
	s1 ^= s0
	s1 ^= s0 >> 26
	x.s1 = s1

	debug.Assert("xorshift state is zero", func() bool { return x.s0|x.s1 != 0 })
}

// Uint64 advances the state and returns the whitened output.
func (x *T) Uint64() uint64 {
	x.Step()
	return mix(x.s0 ^ x.s1)
}

// Int64 is Uint64 reinterpreted as two's complement.
func (x *T) Int64() int64 { return int64(x.Uint64()) }
