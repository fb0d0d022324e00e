package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/psantana5/timeit/internal/sysinfo"
)

var envOutput string

// envCmd represents the env command
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment measurements run on",
	Long: `Detects the hardware and runtime of the current machine. Timing numbers
only mean something next to the machine that produced them, so keep this
output alongside any measurements you quote.`,
	RunE: runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)

	envCmd.Flags().StringVarP(&envOutput, "output", "o", "text",
		"Output format: text, json, yaml")
}

func runEnv(cmd *cobra.Command, args []string) error {
	env := sysinfo.Detect()
	return writeEnvironment(os.Stdout, env, envOutput)
}

func writeEnvironment(w io.Writer, env *sysinfo.Environment, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(env)

	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		return encoder.Encode(env)

	default: // text
		fmt.Fprintln(w, "Measurement Environment:")
		fmt.Fprintf(w, "  CPU: %s (%d threads)\n", env.CPUModel, env.CPUThreads)
		fmt.Fprintf(w, "  RAM: %s\n", sysinfo.FormatRAM(env.RAMTotalBytes))
		fmt.Fprintf(w, "  OS: %s/%s\n", env.OS, env.Arch)
		fmt.Fprintf(w, "  Go: %s\n", env.GoVersion)
		return nil
	}
}
