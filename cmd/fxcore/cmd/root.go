package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxcore/diag"
)

var rootCmd = &cobra.Command{
	Use:   "fxcore",
	Short: "Decision-support engine for FX trading systems",
	Long: `Fxcore is the decision core of an FX trading system.

It provides tools for:
  - Parsing and normalizing broker symbol names
  - Looking up currency and pair metadata
  - Risk-based position sizing and margin checks
  - Stop and profit-target estimation
  - Querying decision journals

Complete documentation is available at https://github.com/rustyeddy/fxcore`,
}

var verbose bool

// sink is the diagnostic sink commands hand down to the engine.
var sink diag.Sink

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")

	cobra.OnInitialize(func() {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		sink = diag.NewZerolog(logger)
	})
}
