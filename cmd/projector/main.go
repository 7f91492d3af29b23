// Command projector projects RRSP, FHSA, TFSA and brokerage balances year by year.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

type rootOptions struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "projector",
		Short: "Project savings across RRSP, FHSA, TFSA and brokerage accounts",
		Long: `projector simulates how yearly surplus cash flows into registered and
taxable accounts under contribution-room limits, and reports the balance of
each account plus an after-tax net worth for every projected year.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			// --debug on project prints per-year balances, which are debug entries
			debug, _ := cmd.Flags().GetBool("debug")
			if opts.verbose || debug {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(
		newProjectCmd(opts),
		newServeCmd(opts),
		newExampleCmd(),
		newFractionCmd(),
	)
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
