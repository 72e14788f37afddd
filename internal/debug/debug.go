//go:build !release

package debug

// Assert panics with the info if fn reports false. Release builds compile it
// away.
func Assert(info string, fn func() bool) {
	if !fn() {
		panic("assertion failed: " + info)
	}
}
