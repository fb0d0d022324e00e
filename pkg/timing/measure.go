package timing

// The wrappers below all follow the same shape. begin captures the start
// instant, the callable runs exactly once, and the finish func reports.
// The finish call sits after the callable rather than in a defer, so a
// panicking callable unwinds without producing a report line. The panic
// itself propagates unchanged.

// begin starts a measurement against the package clock and sink and
// returns the func that ends it and reports.
func begin() func() {
	c, w := clk, out
	start := c.Now()
	return func() {
		report(w, c.Now().Sub(start))
	}
}

// Do runs fn once and reports how long it took.
func Do(fn func()) {
	finish := begin()
	fn()
	finish()
}

// Call runs fn once, reports how long it took and returns fn's result.
// The result is handed back as-is:
//
//	rows := timing.Call(countRows) // timed, rows unchanged
func Call[T any](fn func() T) T {
	finish := begin()
	v := fn()
	finish()
	return v
}

// CallErr runs fn once and returns its result and error unchanged. The
// measurement is reported whether or not fn returned an error, since an
// error return is a completed call. Compare a panic, which skips the
// report entirely.
func CallErr[T any](fn func() (T, error)) (T, error) {
	finish := begin()
	v, err := fn()
	finish()
	return v, err
}
