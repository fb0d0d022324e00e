package workload

import (
	"bytes"
	"testing"
	"time"
)

func TestQueryNarratesStartAndEnd(t *testing.T) {
	var buf bytes.Buffer
	sim := New(0)
	sim.Out = &buf

	sim.Query()

	want := "Starting the mock database call\nEnding the mock database call\n"
	if got := buf.String(); got != want {
		t.Errorf("narration = %q, want %q", got, want)
	}
}

func TestQueryBlocksForConfiguredLatency(t *testing.T) {
	sim := New(50 * time.Millisecond)
	sim.Out = &bytes.Buffer{}

	start := time.Now()
	sim.Query()
	elapsed := time.Since(start)

	if elapsed < 50*time.Millisecond {
		t.Errorf("Query returned after %v, want at least 50ms", elapsed)
	}
}

func TestCountRowsReturnsConfiguredRows(t *testing.T) {
	var buf bytes.Buffer
	sim := New(0)
	sim.Out = &buf

	if got := sim.CountRows(); got != DefaultRows {
		t.Errorf("CountRows = %d, want %d", got, DefaultRows)
	}

	sim.Rows = 42
	if got := sim.CountRows(); got != 42 {
		t.Errorf("CountRows = %d, want 42", got)
	}
	if buf.Len() == 0 {
		t.Error("CountRows should narrate like Query")
	}
}
