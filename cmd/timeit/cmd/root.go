package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/psantana5/timeit/pkg/logging"
)

var (
	cfgFile  string
	logLevel string
	logJSON  bool

	logger = logging.NewLogger(logging.INFO, false)
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "timeit",
	Short: "Demonstrations of function timing techniques",
	Long: `timeit demonstrates two ways to measure how long a function call takes:
a scoped timer that reports when its enclosing scope exits, and generic
wrappers that time a callable and hand back its return value.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.timeit/config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config or info)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit diagnostics as JSON")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		// Search config in home directory with name ".timeit/config" (without extension)
		configDir := filepath.Join(home, ".timeit")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Bind specific environment variables
	viper.BindEnv("log_level", "TIMEIT_LOG_LEVEL")
	viper.BindEnv("latency", "TIMEIT_LATENCY")

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetString("log_level") != "" && logLevel == "" {
			logLevel = viper.GetString("log_level")
		}
	}

	// Check environment variables if not set from config
	if logLevel == "" && viper.GetString("log_level") != "" {
		logLevel = viper.GetString("log_level")
	}

	// Set default if still empty
	if logLevel == "" {
		logLevel = "info"
	}

	logger = logging.NewLogger(logging.ParseLevel(logLevel), logJSON)
}
