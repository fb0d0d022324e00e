package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/psantana5/timeit/internal/session"
	"github.com/psantana5/timeit/pkg/timing"
	"github.com/psantana5/timeit/pkg/workload"
)

var (
	demoLatency time.Duration
	demoRows    int
	demoSummary bool
	demoMetrics bool
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the timing demonstration",
	Long: `Runs three simulated database calls and reports how long each took.

The first call is timed by a scoped timer started at the top of the
function and stopped by a deferred call on scope exit. The second and
third go through the measuring wrappers, one returning nothing and one
returning the row count.

Example:
  timeit demo --latency 250ms --summary`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().DurationVar(&demoLatency, "latency", 0, "simulated latency per call (default from config or 1s)")
	demoCmd.Flags().IntVar(&demoRows, "rows", workload.DefaultRows, "row count the mock database reports")
	demoCmd.Flags().BoolVar(&demoSummary, "summary", false, "print a summary table after the run")
	demoCmd.Flags().BoolVar(&demoMetrics, "metrics", false, "print run metrics in Prometheus text format")
}

type demoOptions struct {
	Latency time.Duration
	Rows    int
	Summary bool
	Metrics bool
}

func runDemo(cmd *cobra.Command, args []string) error {
	latency := demoLatency
	if latency == 0 {
		latency = viper.GetDuration("latency")
	}
	if latency == 0 {
		latency = time.Second
	}

	logger.Debug("starting demo", map[string]interface{}{
		"latency": latency.String(),
		"rows":    demoRows,
	})

	return demoRun(os.Stdout, demoOptions{
		Latency: latency,
		Rows:    demoRows,
		Summary: demoSummary,
		Metrics: demoMetrics,
	})
}

// demoRun executes the three measured calls with all output on w.
func demoRun(w io.Writer, opts demoOptions) error {
	timing.SetOutput(w)
	defer timing.SetOutput(os.Stdout)

	sim := workload.New(opts.Latency)
	sim.Rows = opts.Rows
	sim.Out = w

	rec := session.NewRecorder()
	timing.SetObserver(rec.Observe)
	defer timing.SetObserver(nil)

	rec.Step("mock database call")
	scopedQuery(sim)

	rec.Step("another mock database call")
	timing.Do(sim.Query)

	rec.Step("yet another mock database call")
	rows := timing.Call(sim.CountRows)
	logger.Debug("mock database returned", map[string]interface{}{"rows": rows})

	if opts.Summary {
		fmt.Fprintln(w)
		rec.WriteTable(w)
	}
	if opts.Metrics {
		fmt.Fprintln(w)
		if err := rec.WriteMetrics(w); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

// scopedQuery runs one simulated call under a scoped timer. The deferred
// Stop reports when this function returns.
func scopedQuery(sim *workload.Simulator) {
	defer timing.Start().Stop()
	sim.Query()
}
