package v8rand

import "math"

func checkStreamSize(size int64) error {
	if size < 0 {
		return Error.Wrap(ErrBadSize)
	}
	return nil
}

func checkJumpDistance(distance int64) error {
	if distance <= 0 {
		return Error.Wrap(ErrBadDistance)
	}
	return nil
}

// the negated comparisons reject NaN as well.

func checkBoundFloat32(bound float32) error {
	if !(0 < bound && bound < float32(math.Inf(1))) {
		return Error.Wrap(ErrBadFloatingBound)
	}
	return nil
}

func checkBoundFloat64(bound float64) error {
	if !(0 < bound && bound < math.Inf(1)) {
		return Error.Wrap(ErrBadFloatingBound)
	}
	return nil
}

func checkBoundInt32(bound int32) error {
	if bound <= 0 {
		return Error.Wrap(ErrBadBound)
	}
	return nil
}

func checkBoundInt64(bound int64) error {
	if bound <= 0 {
		return Error.Wrap(ErrBadBound)
	}
	return nil
}

// checkBoundUint64 rejects bounds above MaxInt64 rather than masking them.
func checkBoundUint64(bound uint64) error {
	if bound == 0 || bound > math.MaxInt64 {
		return Error.Wrap(ErrBadBound)
	}
	return nil
}

func checkRangeFloat32(origin, bound float32) error {
	if !(float32(math.Inf(-1)) < origin && origin < bound && bound < float32(math.Inf(1))) {
		return Error.Wrap(ErrBadRange)
	}
	return nil
}

func checkRangeFloat64(origin, bound float64) error {
	if !(math.Inf(-1) < origin && origin < bound && bound < math.Inf(1)) {
		return Error.Wrap(ErrBadRange)
	}
	return nil
}

func checkRangeInt32(origin, bound int32) error {
	if origin >= bound {
		return Error.Wrap(ErrBadRange)
	}
	return nil
}

func checkRangeInt64(origin, bound int64) error {
	if origin >= bound {
		return Error.Wrap(ErrBadRange)
	}
	return nil
}

// checkRangeUint64Signed is the unsigned range rule applied to signed
// arguments: the origin must also be non-negative.
func checkRangeUint64Signed(origin, bound int64) error {
	if origin < 0 || origin >= bound {
		return Error.Wrap(ErrBadRange)
	}
	return nil
}

func checkRangeUint64(origin, bound uint64) error {
	if origin >= bound {
		return Error.Wrap(ErrBadRange)
	}
	return nil
}
