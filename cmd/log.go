package cmd

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/naka-gawa/github-profile-assets/internal/config"
	"github.com/spf13/cobra"
)

// newLogger creates a leveled logger writing to w.
// Timestamps are formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// setup reads the shared flags and returns the logger and the loaded configuration.
func setup(cmd *cobra.Command) (*log.Logger, *config.Config, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	configFile, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	logger := newLogger(cmd.ErrOrStderr(), verbose)
	cfg, err := config.Load(config.Options{File: configFile, EnvFile: envFile})
	if err != nil {
		return nil, nil, err
	}
	return logger, cfg, nil
}
