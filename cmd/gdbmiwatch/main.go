package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var logLevel string

func main() {
	rootCmd := &cobra.Command{
		Use:   "gdbmiwatch [file]",
		Short: "Tail a GDB/MI transcript and relay it as LSP log notifications",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(logLevelToVerbosity(logLevel), nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			watcher := NewWatcher("0.1.0")
			if len(args) == 1 {
				return watcher.RunFile(args[0])
			}
			return watcher.RunStdio()
		},
	}

	defaultLevel := os.Getenv("GDBMI_LOG_LEVEL")
	if defaultLevel == "" {
		defaultLevel = "warning"
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLevel, "debug, info, warning, error, or critical")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func logLevelToVerbosity(level string) int {
	switch level {
	case "critical":
		return 0
	case "error":
		return 1
	case "warning":
		return 2
	case "info":
		return 3
	case "debug":
		return 4
	default:
		return 2
	}
}
