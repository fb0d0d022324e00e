package session

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestRecorderCollectsMeasurementsInOrder(t *testing.T) {
	rec := NewRecorder()

	rec.Step("scoped")
	rec.Observe(12 * time.Millisecond)
	rec.Step("wrapped void")
	rec.Observe(34 * time.Millisecond)
	rec.Observe(56 * time.Millisecond)

	got := rec.Measurements()
	if len(got) != 3 {
		t.Fatalf("recorded %d measurements, want 3", len(got))
	}
	if got[0].Label != "scoped" || got[0].Took != 12*time.Millisecond {
		t.Errorf("first = %+v, want scoped/12ms", got[0])
	}
	if got[1].Label != "wrapped void" {
		t.Errorf("second label = %q, want %q", got[1].Label, "wrapped void")
	}
	// No Step call before the third observation, so it gets numbered.
	if got[2].Label != "step 3" {
		t.Errorf("third label = %q, want %q", got[2].Label, "step 3")
	}

	if rec.Total() != 102*time.Millisecond {
		t.Errorf("Total = %v, want 102ms", rec.Total())
	}
}

func TestWriteTableListsEveryStep(t *testing.T) {
	rec := NewRecorder()
	rec.Step("query")
	rec.Observe(1500 * time.Millisecond)
	rec.Step("count rows")
	rec.Observe(250 * time.Millisecond)

	var buf bytes.Buffer
	rec.WriteTable(&buf)

	out := buf.String()
	for _, want := range []string{"query", "1500 ms", "count rows", "250 ms", "Total: 1750 ms across 2 steps"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTableWithNothingRecorded(t *testing.T) {
	var buf bytes.Buffer
	NewRecorder().WriteTable(&buf)

	if !strings.Contains(buf.String(), "No measurements recorded") {
		t.Errorf("empty recorder output = %q", buf.String())
	}
}

func TestWriteMetricsExposesDurationsAndCount(t *testing.T) {
	rec := NewRecorder()
	rec.Step("query")
	rec.Observe(100 * time.Millisecond)
	rec.Observe(200 * time.Millisecond)
	rec.Observe(300 * time.Millisecond)

	var buf bytes.Buffer
	if err := rec.WriteMetrics(&buf); err != nil {
		t.Fatalf("WriteMetrics: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "timeit_measurements_total 3") {
		t.Errorf("metrics missing total count:\n%s", out)
	}
	if !strings.Contains(out, `timeit_function_duration_seconds_count{step="query"} 1`) {
		t.Errorf("metrics missing labeled histogram count:\n%s", out)
	}
	if !strings.Contains(out, "# TYPE timeit_function_duration_seconds histogram") {
		t.Errorf("metrics missing histogram type line:\n%s", out)
	}
}

func TestRecordersAreIndependent(t *testing.T) {
	first := NewRecorder()
	first.Observe(10 * time.Millisecond)

	second := NewRecorder()
	var buf bytes.Buffer
	if err := second.WriteMetrics(&buf); err != nil {
		t.Fatalf("WriteMetrics: %v", err)
	}
	if strings.Contains(buf.String(), "timeit_measurements_total 1") {
		t.Error("a fresh recorder saw another recorder's measurements")
	}
	if len(second.Measurements()) != 0 {
		t.Errorf("fresh recorder has %d measurements, want 0", len(second.Measurements()))
	}
}
