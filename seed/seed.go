// Package seed derives seeds for v8rand.New. Every seed it returns is
// non-negative.
package seed

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/cespare/xxhash"
	"github.com/minio/highwayhash"
	"github.com/zeebo/v8rand/internal/logger"
)

var (
	entropy io.Reader = cryptorand.Reader
	now               = time.Now
)

// Random returns a seed read from the host entropy source. If that fails it
// falls back to the wall clock and logs a warning.
func Random() int64 {
	var buf [8]byte
	if _, err := io.ReadFull(entropy, buf[:]); err != nil {
		seed := now().UnixNano() & math.MaxInt64
		logger.Log().Warn().Err(err).Int64("seed", seed).Msg("entropy unavailable, seeding from time")
		return seed
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) & math.MaxInt64)
}

// String returns a seed derived from s with xxhash64.
func String(s string) int64 {
	return int64(xxhash.Sum64([]byte(s)) & math.MaxInt64)
}

// Keyed returns a seed derived from s with HighwayHash-64 under the key, so
// that the same names map to unrelated seeds under different keys.
func Keyed(key [32]byte, s string) int64 {
	return int64(highwayhash.Sum64([]byte(s), key[:]) & math.MaxInt64)
}
