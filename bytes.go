package v8rand

import "encoding/binary"

// align8 returns the largest multiple of 8 less than or equal to size.
func align8(size int) int {
	return size &^ 7
}

// Fill fills p with random bytes. Every full 8 byte chunk is a big-endian
// draw. A trailing partial chunk takes the leading bytes of one more
// big-endian draw.
func (t *T) Fill(p []byte) {
	n := align8(len(p))
	for i := 0; i < n; i += 8 {
		binary.BigEndian.PutUint64(p[i:], t.x.Uint64())
	}
	if n == len(p) {
		return
	}

	// the draw is written from its low byte at offset n+7 downward, skipping
	// offsets past the end of p.
	r := t.x.Uint64()
	for j := 7; j >= 0; j-- {
		if n+j < len(p) {
			p[n+j] = byte(r)
		}
		r >>= 8
	}
}

// Read fills p with random bytes. It always returns len(p), nil so that *T
// is an io.Reader.
func (t *T) Read(p []byte) (int, error) {
	t.Fill(p)
	return len(p), nil
}
