// Package session collects the measurements taken during one demo run and
// renders them as a summary table or in Prometheus text format. The timing
// package stays output-only; anything that wants the numbers afterwards
// goes through a Recorder.
package session

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Measurement is one completed timing with the step name it ran under.
type Measurement struct {
	Label string
	Took  time.Duration
}

// Recorder accumulates measurements for a single run. Wire Observe into
// timing.SetObserver and call Step before each timed operation to name it.
// A Recorder is not safe for concurrent use.
type Recorder struct {
	registry  *prometheus.Registry
	durations *prometheus.HistogramVec
	total     prometheus.Counter
	next      string
	taken     []Measurement
}

// NewRecorder creates a Recorder with its own metrics registry, so runs do
// not bleed into each other through global state.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	durations := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "timeit_function_duration_seconds",
			Help:    "Duration of measured function calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"step"},
	)
	total := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "timeit_measurements_total",
			Help: "Total number of completed measurements",
		},
	)
	registry.MustRegister(durations, total)

	return &Recorder{
		registry:  registry,
		durations: durations,
		total:     total,
	}
}

// Step names the next measurement. Unnamed measurements are numbered.
func (r *Recorder) Step(label string) {
	r.next = label
}

// Observe records one completed measurement under the pending step name.
func (r *Recorder) Observe(d time.Duration) {
	label := r.next
	if label == "" {
		label = fmt.Sprintf("step %d", len(r.taken)+1)
	}
	r.next = ""

	r.taken = append(r.taken, Measurement{Label: label, Took: d})
	r.durations.WithLabelValues(label).Observe(d.Seconds())
	r.total.Inc()
}

// Measurements returns the recorded measurements in call order.
func (r *Recorder) Measurements() []Measurement {
	return r.taken
}

// Total returns the summed duration of all recorded measurements.
func (r *Recorder) Total() time.Duration {
	var total time.Duration
	for _, m := range r.taken {
		total += m.Took
	}
	return total
}

// WriteTable renders the run summary as a table on w.
func (r *Recorder) WriteTable(w io.Writer) {
	if len(r.taken) == 0 {
		fmt.Fprintln(w, "No measurements recorded")
		return
	}

	table := tablewriter.NewWriter(w)
	table.Header("Step", "Took")
	for _, m := range r.taken {
		table.Append(m.Label, fmt.Sprintf("%d ms", m.Took.Milliseconds()))
	}
	table.Render()

	fmt.Fprintf(w, "\nTotal: %d ms across %d steps\n", r.Total().Milliseconds(), len(r.taken))
}

// WriteMetrics writes the run's metrics to w in Prometheus text format.
func (r *Recorder) WriteMetrics(w io.Writer) error {
	metricFamilies, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	encoder := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range metricFamilies {
		if err := encoder.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
