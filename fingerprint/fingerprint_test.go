package fingerprint

import (
	"testing"

	"github.com/cespare/xxhash"
	"github.com/zeebo/assert"
	"github.com/zeebo/v8rand"
)

func newT(t *testing.T, seed int64) *v8rand.T {
	t.Helper()
	r, err := v8rand.New(seed)
	assert.NoError(t, err)
	return r
}

func TestSum(t *testing.T) {
	buf := make([]byte, 8*64)
	newT(t, 42).Fill(buf)
	assert.Equal(t, Sum(newT(t, 42), 64), xxhash.Sum64(buf))

	assert.Equal(t, Sum(newT(t, 7), 1000), Sum(newT(t, 7), 1000))
	assert.That(t, Sum(newT(t, 7), 1000) != Sum(newT(t, 8), 1000))
	assert.Equal(t, Sum(newT(t, 7), 0), xxhash.Sum64(nil))
}

func TestSumAdvances(t *testing.T) {
	r, ref := newT(t, 3), newT(t, 3)
	Sum(r, 5)
	assert.NoError(t, ref.Skip(5))
	assert.Equal(t, r.Uint64(), ref.Uint64())
}

func TestHex(t *testing.T) {
	assert.Equal(t, Hex(0), "0000000000000000")
	assert.Equal(t, Hex(0xdeadbeef), "00000000deadbeef")
}
