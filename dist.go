package v8rand

import "math"

// ExpFloat64 returns an exponentially distributed float64 with rate 1 by
// inverting the distribution function of a nonzero uniform draw.
func (t *T) ExpFloat64() float64 {
	u := t.Float64()
	for u == 0 {
		u = t.Float64()
	}
	return -math.Log(1 - u)
}

// NormFloat64 returns a standard normally distributed float64 using the cosine
// branch of the Box-Muller transform. The sine branch is discarded.
func (t *T) NormFloat64() float64 {
	u1, u2 := t.Float64(), t.Float64()
	for u1 == 0 {
		u1 = t.Float64()
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
