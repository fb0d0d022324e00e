// Package sysinfo describes the machine a measurement ran on. Timing
// numbers mean little without the hardware behind them, so the CLI prints
// this next to demo results.
package sysinfo

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Environment captures the host the process is running on.
type Environment struct {
	CPUModel      string `json:"cpu_model" yaml:"cpu_model"`
	CPUThreads    int    `json:"cpu_threads" yaml:"cpu_threads"`
	RAMTotalBytes uint64 `json:"ram_total_bytes" yaml:"ram_total_bytes"`
	OS            string `json:"os" yaml:"os"`
	Arch          string `json:"arch" yaml:"arch"`
	GoVersion     string `json:"go_version" yaml:"go_version"`
}

// Detect probes the current host. Probes that fail leave their fields at
// the "Unknown" defaults rather than returning an error, since a partial
// description is still useful.
func Detect() *Environment {
	env := &Environment{
		CPUModel:   "Unknown",
		CPUThreads: runtime.NumCPU(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		GoVersion:  runtime.Version(),
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		if model := infos[0].ModelName; model != "" {
			env.CPUModel = model
		}
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		env.RAMTotalBytes = vm.Total
	}

	return env
}

// FormatRAM formats RAM bytes to human-readable string
func FormatRAM(bytes uint64) string {
	gb := float64(bytes) / (1024 * 1024 * 1024)
	return fmt.Sprintf("%.1f GB", gb)
}
