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
		Use:   "gdbmicat",
		Short: "Parse a GDB/MI transcript and print its record stream",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(logLevelToVerbosity(logLevel), nil)
		},
	}

	defaultLevel := os.Getenv("GDBMI_LOG_LEVEL")
	if defaultLevel == "" {
		defaultLevel = "warning"
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLevel, "debug, info, warning, error, or critical")

	rootCmd.AddCommand(newParseCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// logLevelToVerbosity maps the named levels in --log-level to
// commonlog's integer verbosity (higher means more output).
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
