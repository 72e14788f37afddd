// Package cast provides the exact narrowing and bit reinterpretation casts the
// generator is defined in terms of. The sampler narrows fixed width draws
// with the equivalent Go conversions and uses Float32 for its float32 results;
// Value covers the arbitrary precision inputs those conversions cannot.
package cast

import (
	"math"
	"math/big"
)

// kind tags the variant held by a Value.
type kind uint8

const (
	kindInvalid kind = iota
	kindInt
	kindFloat
)

// Value is the input to the truncating casts. It is either an integer of
// arbitrary precision, a float64, or invalid. The zero value is invalid.
type Value struct {
	kind kind
	i    *big.Int
	f    float64
}

// Invalid is the value that is not a number.
var Invalid = Value{}

// Int returns a Value holding a copy of x. A nil x is Invalid.
func Int(x *big.Int) Value {
	if x == nil {
		return Invalid
	}
	return Value{kind: kindInt, i: new(big.Int).Set(x)}
}

// Int64 returns a Value holding the integer x.
func Int64(x int64) Value { return Value{kind: kindInt, i: big.NewInt(x)} }

// Uint64 returns a Value holding the integer x.
func Uint64(x uint64) Value { return Value{kind: kindInt, i: new(big.Int).SetUint64(x)} }

// Float returns a Value holding the float f.
func Float(f float64) Value { return Value{kind: kindFloat, f: f} }

// Valid reports if the value holds a number.
func (v Value) Valid() bool { return v.kind != kindInvalid }

var mask32 = big.NewInt(math.MaxUint32)

// Int32 truncates the value to 32 bits and reinterprets it as two's
// complement. Floats are floored first. It returns false if the value has no
// integer value: Invalid, NaN or an infinity.
func Int32(v Value) (int32, bool) {
	switch v.kind {
	case kindInt:
		return low32(v.i), true

	case kindFloat:
		f := math.Floor(v.f)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		if -(1<<63) <= f && f < 1<<63 {
			return int32(int64(f)), true
		}
		i, _ := new(big.Float).SetFloat64(f).Int(nil)
		return low32(i), true

	default:
		return 0, false
	}
}

// low32 returns the low 32 bits of the two's complement form of i.
func low32(i *big.Int) int32 {
	return int32(uint32(new(big.Int).And(i, mask32).Uint64()))
}

// Float32 narrows the value to a float32. Integers round to the nearest
// float32 and floats narrow the way a store into a float32 does. Invalid
// values return NaN.
func Float32(v Value) float32 {
	switch v.kind {
	case kindInt:
		f, _ := new(big.Float).SetInt(v.i).Float32()
		return f
	case kindFloat:
		return float32(v.f)
	default:
		return float32(math.NaN())
	}
}
