// Package timing measures the wall-clock execution time of function calls
// and reports each measurement as a single line on the configured sink.
//
// Two techniques are provided. A Timer brackets a lexical scope: start it at
// the top of a function and let a deferred Stop report when the scope exits,
// whichever exit path is taken:
//
//	func slowQuery() {
//		defer timing.Start().Stop()
//		// ... work ...
//	}
//
// Do, Call and CallErr wrap a single callable instead: they run it, report
// how long it took, and hand back whatever it returned.
//
// Durations come from a monotonic source and are reported as whole
// milliseconds, truncated. The report line is the fixed literal
// "function took <N> ms".
package timing

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/benbjohnson/clock"
)

var (
	clk      clock.Clock = clock.New()
	out      io.Writer   = os.Stdout
	observer func(time.Duration)
)

// SetClock replaces the time source for subsequent measurements. Tests use
// clock.NewMock to drive elapsed time deterministically.
func SetClock(c clock.Clock) {
	clk = c
}

// SetOutput redirects the report sink for subsequent measurements.
// The default is os.Stdout.
func SetOutput(w io.Writer) {
	out = w
}

// SetObserver registers fn to be called with the measured duration after
// each report line is written. A nil fn clears the observer. The report
// line itself is not affected.
func SetObserver(fn func(time.Duration)) {
	observer = fn
}

// report emits the measurement line and notifies the observer.
// N is the duration in whole milliseconds, truncated toward zero.
func report(w io.Writer, d time.Duration) {
	fmt.Fprintf(w, "function took %d ms\n", d.Milliseconds())
	if observer != nil {
		observer(d)
	}
}

// Timer measures the lifetime of a scope. It captures the start instant at
// Start and reports once when stopped. A Timer is not shared between
// goroutines.
type Timer struct {
	clk     clock.Clock
	out     io.Writer
	start   time.Time
	stopped bool
	took    time.Duration
}

// Start captures the current instant and returns a running Timer bound to
// the package clock and sink. The usual form is
//
//	defer timing.Start().Stop()
//
// which starts the clock immediately and reports on every exit path from
// the enclosing function, panics included.
func Start() *Timer {
	return &Timer{clk: clk, out: out, start: clk.Now()}
}

// Stop captures the end instant, reports the elapsed time and returns it.
// Only the first Stop reports; later calls return the recorded duration
// without emitting anything, so a scope produces exactly one line.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return t.took
	}
	t.stopped = true
	t.took = t.clk.Now().Sub(t.start)
	report(t.out, t.took)
	return t.took
}

// Elapsed returns the time since Start without stopping the Timer. After
// Stop it returns the recorded duration.
func (t *Timer) Elapsed() time.Duration {
	if t.stopped {
		return t.took
	}
	return t.clk.Now().Sub(t.start)
}
