package cast

import (
	"math"
	"testing"

	"github.com/zeebo/assert"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, MinFloat32, float32(math.SmallestNonzeroFloat32))
	assert.Equal(t, MaxFloat32, float32(math.MaxFloat32))
	assert.Equal(t, MinFloat64, math.SmallestNonzeroFloat64)
	assert.Equal(t, MaxFloat64, math.MaxFloat64)
}

func TestRawBits(t *testing.T) {
	assert.Equal(t, Float32Bits(1), int32(0x3F800000))
	assert.Equal(t, Float32Bits(-2), int32(-0x40000000))
	assert.Equal(t, Int32BitsToFloat32(0x3F800000), float32(1))
	assert.Equal(t, Int32BitsToFloat32(-0x40000000), float32(-2))

	assert.Equal(t, Float64Bits(1), int64(0x3FF0000000000000))
	assert.Equal(t, Float64Bits(-2), int64(-0x4000000000000000))
	assert.Equal(t, Int64BitsToFloat64(0x3FF0000000000000), float64(1))
	assert.Equal(t, Int64BitsToFloat64(-0x4000000000000000), float64(-2))

	negZero := math.Copysign(0, -1)
	assert.Equal(t, Float64Bits(negZero), int64(math.MinInt64))
}

func TestNextDown64(t *testing.T) {
	assert.Equal(t, NextDown64(0), -MinFloat64)
	assert.Equal(t, NextDown64(math.Copysign(0, -1)), -MinFloat64)
	assert.That(t, math.IsNaN(NextDown64(math.NaN())))
	assert.Equal(t, NextDown64(math.Inf(1)), math.Inf(1))
	assert.Equal(t, NextDown64(math.Inf(-1)), math.Inf(-1))

	assert.Equal(t, NextDown64(MinFloat64), float64(0))
	assert.Equal(t, NextDown64(-MinFloat64), Int64BitsToFloat64(math.MinInt64|2))
	assert.Equal(t, NextDown64(1), 1-0x1p-53)
	assert.Equal(t, NextDown64(-1), -1-0x1p-52)
	assert.Equal(t, NextDown64(2), 2-0x1p-52)
	assert.Equal(t, NextDown64(-MaxFloat64), math.Inf(-1))

	for _, f := range []float64{1e-310, 0.3, 1, 7e100, -1e-310, -0.3, -7e100} {
		assert.Equal(t, NextDown64(f), math.Nextafter(f, math.Inf(-1)))
	}
}

func TestNextDown32(t *testing.T) {
	assert.Equal(t, NextDown32(0), -MinFloat32)
	assert.That(t, math.IsNaN(float64(NextDown32(float32(math.NaN())))))
	assert.Equal(t, NextDown32(float32(math.Inf(1))), float32(math.Inf(1)))

	assert.Equal(t, NextDown32(MinFloat32), float32(0))
	assert.Equal(t, NextDown32(1), 1-float32(0x1p-24))
	assert.Equal(t, NextDown32(-1), -1-float32(0x1p-23))
	assert.Equal(t, NextDown32(-MaxFloat32), float32(math.Inf(-1)))

	for _, f := range []float32{1e-40, 0.3, 1, 7e30, -1e-40, -0.3, -7e30} {
		assert.Equal(t, NextDown32(f), math.Nextafter32(f, float32(math.Inf(-1))))
	}
}

func TestUnitFloat(t *testing.T) {
	assert.Equal(t, UnitFloat64(0), float64(0))
	assert.Equal(t, UnitFloat64(-1), 1-0x1p-52)
	assert.Equal(t, UnitFloat64(0x6db8a3ed97ed4092), 0.5400215086592977)

	assert.Equal(t, UnitFloat32(0), float32(0))
	assert.Equal(t, UnitFloat32(-1), 1-float32(0x1p-23))
	assert.Equal(t, UnitFloat32(0x6db8a3ed97ed4092), float32(0.8535330295562744))
}
