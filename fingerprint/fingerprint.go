// Package fingerprint summarizes a random stream as a single hash, so that two
// platforms can check they generate the same stream without comparing every
// value.
package fingerprint

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
)

// Source is a stream of 64 bit draws, such as *v8rand.T.
type Source interface {
	Uint64() uint64
}

// Sum returns the xxhash64 of the big-endian bytes of the next n draws from
// src. It advances src by n draws.
func Sum(src Source, n int) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint64(buf[:], src.Uint64())
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Hex renders a sum as 16 lowercase hex digits.
func Hex(sum uint64) string { return fmt.Sprintf("%016x", sum) }
