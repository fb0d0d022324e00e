// Package workload provides a fake database call with a tunable blocking
// delay. It exists so the timing package has something slow and observable
// to measure in demos and tests.
package workload

import (
	"fmt"
	"io"
	"os"
	"time"
)

// DefaultRows is the row count a fresh Simulator reports.
const DefaultRows = 10

// Simulator imitates a blocking database round trip. Each call narrates
// its start and end on Out and blocks for Latency in between.
type Simulator struct {
	Latency time.Duration
	Rows    int
	Out     io.Writer
}

// New returns a Simulator that blocks for latency per call, reports
// DefaultRows rows and narrates on standard output.
func New(latency time.Duration) *Simulator {
	return &Simulator{
		Latency: latency,
		Rows:    DefaultRows,
		Out:     os.Stdout,
	}
}

// Query performs one simulated round trip: narrate, block, narrate.
func (s *Simulator) Query() {
	fmt.Fprintln(s.Out, "Starting the mock database call")
	time.Sleep(s.Latency)
	fmt.Fprintln(s.Out, "Ending the mock database call")
}

// CountRows performs one simulated round trip and returns the row count.
// It is the value-returning counterpart of Query.
func (s *Simulator) CountRows() int {
	s.Query()
	return s.Rows
}
