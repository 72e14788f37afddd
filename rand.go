// Package v8rand is a deterministic random number generator that reproduces
// the stream of the V8 xorshift128+ engine, whitened by the murmur3
// finalizer, bit for bit. Two generators with the same seed produce the same
// values for the same sequence of calls on every platform.
//
// It is not cryptographically secure and a T is not safe for concurrent use.
package v8rand

import (
	"math"

	"github.com/zeebo/v8rand/cast"
	"github.com/zeebo/v8rand/internal/mon"
	"github.com/zeebo/v8rand/internal/xorshift"
)

// T is a random number generator. It is not thread safe. The zero value is
// invalid: use New.
type T struct {
	x     xorshift.T
	draws mon.Histogram // engine draws consumed per rejection sampled call
}

// New returns a generator seeded with seed, which must be non-negative.
func New(seed int64) (*T, error) {
	t := new(T)
	if err := t.Seed(seed); err != nil {
		return nil, err
	}
	return t, nil
}

// Seed resets the generator to the state derived from seed and clears the
// draw statistics. On error the previous state and statistics are kept.
func (t *T) Seed(seed int64) error {
	if seed < 0 {
		return Error.Wrap(ErrBadSeed)
	}
	x, err := xorshift.New(uint64(seed))
	if err != nil {
		return Error.Wrap(err)
	}
	t.x = x
	t.draws.Reset()
	return nil
}

// Bool returns true when the top bit of a draw is set.
func (t *T) Bool() bool { return t.x.Int64() < 0 }

// Uint64 returns a uniform uint64. It makes *T a math/rand/v2 Source.
func (t *T) Uint64() uint64 { return t.x.Uint64() }

// Int64 returns a uniform int64.
func (t *T) Int64() int64 { return t.x.Int64() }

// Int32 returns a uniform int32: the low 32 bits of a draw.
func (t *T) Int32() int32 { return int32(uint32(t.x.Uint64())) }

// Int32n returns a uniform int32 in [0, bound).
func (t *T) Int32n(bound int32) (int32, error) {
	if err := checkBoundInt32(bound); err != nil {
		return 0, err
	}

	if bound&(bound-1) == 0 {
		t.draws.Observe(1)
		return int32(t.x.Uint64()&math.MaxInt32) & (bound - 1), nil
	}

	// both 31 bit halves of a draw are tried before drawing again.
	limit := math.MaxInt32 - math.MaxInt32%bound
	for n := int64(1); ; n++ {
		r64 := t.x.Uint64()
		if r32 := int32(r64 & math.MaxInt32); r32 < limit {
			t.draws.Observe(n)
			return r32 % bound, nil
		}
		if r32 := int32(r64 >> 32 & math.MaxInt32); r32 < limit {
			t.draws.Observe(n)
			return r32 % bound, nil
		}
	}
}

// Int32Range returns origin plus the low 32 bits of a value in
// [0, origin+bound), wrapping as int32 arithmetic. This is the construction
// the reference engine uses: the result is only in [origin, bound) when
// origin is zero, and a range whose sum is not positive is rejected with
// ErrBadBound.
func (t *T) Int32Range(origin, bound int32) (int32, error) {
	if err := checkRangeInt32(origin, bound); err != nil {
		return 0, err
	}
	r, err := t.Int64n(int64(origin) + int64(bound))
	if err != nil {
		return 0, err
	}
	return origin + int32(uint32(r)), nil
}

// Uint64n returns a uniform uint64 in [0, bound). The bound must not exceed
// math.MaxInt64.
func (t *T) Uint64n(bound uint64) (uint64, error) {
	if err := checkBoundUint64(bound); err != nil {
		return 0, err
	}

	if bound&(bound-1) == 0 {
		t.draws.Observe(1)
		return t.x.Uint64() & (bound - 1), nil
	}

	limit := math.MaxUint64 - math.MaxUint64%bound
	for n := int64(1); ; n++ {
		if r := t.x.Uint64(); r < limit {
			t.draws.Observe(n)
			return r % bound, nil
		}
	}
}

// Uint64Range returns origin plus a draw reduced modulo bound-origin. It is
// not rejection sampled, so spans that do not divide 2^64 favor smaller
// offsets slightly.
func (t *T) Uint64Range(origin, bound uint64) (uint64, error) {
	if err := checkRangeUint64(origin, bound); err != nil {
		return 0, err
	}
	return origin + t.x.Uint64()%(bound-origin), nil
}

// Int64n returns a uniform int64 in [0, bound).
func (t *T) Int64n(bound int64) (int64, error) {
	if err := checkBoundInt64(bound); err != nil {
		return 0, err
	}
	r, err := t.Uint64n(uint64(bound))
	return int64(r), err
}

// Int64Range returns a value in [origin, bound) the way Uint64Range does. The
// origin must be non-negative.
func (t *T) Int64Range(origin, bound int64) (int64, error) {
	if err := checkRangeInt64(origin, bound); err != nil {
		return 0, err
	}
	if err := checkRangeUint64Signed(origin, bound); err != nil {
		return 0, err
	}
	r, err := t.Uint64Range(uint64(origin), uint64(bound))
	return int64(r), err
}

// Float32 returns a float32 in [0, 1) built from 23 bits of a draw.
func (t *T) Float32() float32 { return cast.UnitFloat32(t.x.Int64()) }

// Float64 returns a float64 in [0, 1) built from 52 bits of a draw.
func (t *T) Float64() float64 { return cast.UnitFloat64(t.x.Int64()) }

// Float32n returns Float64() * bound narrowed to a float32.
func (t *T) Float32n(bound float32) (float32, error) {
	if err := checkBoundFloat32(bound); err != nil {
		return 0, err
	}
	return cast.Float32(cast.Float(t.Float64() * float64(bound))), nil
}

// Float32Range returns origin + Float64() * (bound - origin) narrowed to a
// float32. It advances the engine one extra step before drawing.
func (t *T) Float32Range(origin, bound float32) (float32, error) {
	if err := checkRangeFloat32(origin, bound); err != nil {
		return 0, err
	}
	t.x.Step()
	o, b := float64(origin), float64(bound)
	return cast.Float32(cast.Float(o + t.Float64()*(b-o))), nil
}

// Float64n returns Float64() * bound.
func (t *T) Float64n(bound float64) (float64, error) {
	if err := checkBoundFloat64(bound); err != nil {
		return 0, err
	}
	return t.Float64() * bound, nil
}

// Float64Range returns origin + Float64() * (bound - origin).
func (t *T) Float64Range(origin, bound float64) (float64, error) {
	if err := checkRangeFloat64(origin, bound); err != nil {
		return 0, err
	}
	return origin + t.Float64()*(bound-origin), nil
}
