package mon

import (
	"sync/atomic"
)

const (
	bufferShift = 8 // 256 elements
	bufferElems = 1 << bufferShift
	bufferMask  = bufferElems - 1
)

// Histogram is a ring histogram of observed counts. One goroutine may Observe
// while others read.
type Histogram struct {
	total int64
	max   int64
	obs   [bufferElems]int64
}

// Observe stores n in the ring buffer, incrementing the total.
func (h *Histogram) Observe(n int64) {
	loc := &h.obs[(atomic.AddInt64(&h.total, 1)-1)&bufferMask]
	atomic.StoreInt64(loc, n)

	for {
		max := atomic.LoadInt64(&h.max)
		if n <= max || atomic.CompareAndSwapInt64(&h.max, max, n) {
			return
		}
	}
}

// Reset clears the histogram. It must not run concurrently with Observe.
func (h *Histogram) Reset() {
	atomic.StoreInt64(&h.total, 0)
	atomic.StoreInt64(&h.max, 0)
	for i := range h.obs {
		atomic.StoreInt64(&h.obs[i], 0)
	}
}

// Total returns the amount of times a value has been observed.
func (h *Histogram) Total() int64 { return atomic.LoadInt64(&h.total) }

// Max returns the largest value ever observed.
func (h *Histogram) Max() int64 { return atomic.LoadInt64(&h.max) }

// obsLen returns the number of valid entries in the obs buffer.
func (h *Histogram) obsLen() int {
	n := h.Total()
	if n >= bufferElems {
		return bufferElems
	}
	return int(n & bufferMask)
}

// Values returns a copy of the recent observations.
func (h *Histogram) Values() []int64 {
	out := make([]int64, h.obsLen())
	for i := range out {
		out[i] = atomic.LoadInt64(&h.obs[i&bufferMask])
	}
	return out
}

// Average returns the average of the recent observations, or zero if there
// are none.
func (h *Histogram) Average() float64 {
	n := h.obsLen()
	if n == 0 {
		return 0
	}
	total := int64(0)
	for i := 0; i < n; i++ {
		total += atomic.LoadInt64(&h.obs[i])
	}
	return float64(total) / float64(n)
}
