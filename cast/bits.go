package cast

import "math"

// Smallest positive and largest finite values of each float width, defined by
// their raw bits.
var (
	MinFloat32 = math.Float32frombits(1)
	MaxFloat32 = math.Float32frombits(0x7F7FFFFF)
	MinFloat64 = math.Float64frombits(1)
	MaxFloat64 = math.Float64frombits(0x7FEFFFFFFFFFFFFF)
)

const (
	exponent32 = 0x3F800000         // exponent of [1, 2) for a float32
	mantissa32 = 1<<23 - 1          // low 23 bits
	exponent64 = 0x3FF0000000000000 // exponent of [1, 2) for a float64
	mantissa64 = 1<<52 - 1          // low 52 bits
)

// Float32Bits returns the raw bits of f as a signed integer.
func Float32Bits(f float32) int32 { return int32(math.Float32bits(f)) }

// Int32BitsToFloat32 reinterprets the raw bits as a float32.
func Int32BitsToFloat32(bits int32) float32 { return math.Float32frombits(uint32(bits)) }

// Float64Bits returns the raw bits of f as a signed integer.
func Float64Bits(f float64) int64 { return int64(math.Float64bits(f)) }

// Int64BitsToFloat64 reinterprets the raw bits as a float64.
func Int64BitsToFloat64(bits int64) float64 { return math.Float64frombits(uint64(bits)) }

// NextDown32 returns the largest float32 strictly less than f. NaN and the
// infinities are returned unchanged.
func NextDown32(f float32) float32 {
	switch {
	case f != f || math.IsInf(float64(f), 0):
		return f
	case f == 0:
		return -MinFloat32
	case f > 0:
		return Int32BitsToFloat32(Float32Bits(f) - 1)
	default:
		return Int32BitsToFloat32(Float32Bits(f) + 1)
	}
}

// NextDown64 returns the largest float64 strictly less than f. NaN and the
// infinities are returned unchanged.
func NextDown64(f float64) float64 {
	switch {
	case f != f || math.IsInf(f, 0):
		return f
	case f == 0:
		return -MinFloat64
	case f > 0:
		return Int64BitsToFloat64(Float64Bits(f) - 1)
	default:
		return Int64BitsToFloat64(Float64Bits(f) + 1)
	}
}

// UnitFloat32 uses the low 23 bits of bits as the mantissa of a float32 in
// [1, 2) and returns it shifted down into [0, 1).
func UnitFloat32(bits int64) float32 {
	return Int32BitsToFloat32(int32(bits&mantissa32)|exponent32) - 1
}

// UnitFloat64 uses the low 52 bits of bits as the mantissa of a float64 in
// [1, 2) and returns it shifted down into [0, 1).
func UnitFloat64(bits int64) float64 {
	return Int64BitsToFloat64(bits&mantissa64|exponent64) - 1
}
