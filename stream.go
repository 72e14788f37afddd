package v8rand

// Int32s returns size values from Int32.
func (t *T) Int32s(size int64) ([]int32, error) {
	if err := checkStreamSize(size); err != nil {
		return nil, err
	}
	out := make([]int32, size)
	for i := range out {
		out[i] = t.Int32()
	}
	return out, nil
}

// Uint64s returns size values from Uint64.
func (t *T) Uint64s(size int64) ([]uint64, error) {
	if err := checkStreamSize(size); err != nil {
		return nil, err
	}
	out := make([]uint64, size)
	for i := range out {
		out[i] = t.Uint64()
	}
	return out, nil
}

// Float64s returns size values from Float64.
func (t *T) Float64s(size int64) ([]float64, error) {
	if err := checkStreamSize(size); err != nil {
		return nil, err
	}
	out := make([]float64, size)
	for i := range out {
		out[i] = t.Float64()
	}
	return out, nil
}

// Skip advances the generator past distance draws, leaving it where it would
// be after distance calls to Uint64.
func (t *T) Skip(distance int64) error {
	if err := checkJumpDistance(distance); err != nil {
		return err
	}
	for ; distance > 0; distance-- {
		t.x.Step()
	}
	return nil
}

// DrawStats describes how many engine draws the rejection sampled calls
// (Int32n, Uint64n and the calls built on them) have consumed.
type DrawStats struct {
	Calls   int64   // calls ever made
	Max     int64   // most draws any call consumed
	Average float64 // mean draws over the most recent calls
}

// DrawStats returns the draw statistics. It is safe to call while another
// goroutine uses the generator.
func (t *T) DrawStats() DrawStats {
	return DrawStats{
		Calls:   t.draws.Total(),
		Max:     t.draws.Max(),
		Average: t.draws.Average(),
	}
}
