package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rpgo/savings-projector/internal/calculation"
	"github.com/rpgo/savings-projector/internal/config"
	"github.com/rpgo/savings-projector/internal/output"
	"github.com/rpgo/savings-projector/internal/server"
	"github.com/rpgo/savings-projector/pkg/dateutil"
)

type projectOptions struct {
	configFile string
	format     string
	asOf       string
	outputDir  string
	debug      bool
}

func newProjectCmd(root *rootOptions) *cobra.Command {
	opts := &projectOptions{}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run every scenario in a configuration file and report the results",
		Example: `  projector project --config scenarios.yaml
  projector project --config scenarios.yaml --format html --output-dir reports
  projector project --config scenarios.yaml --as-of 2024-07-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, root, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Scenario configuration file (required)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "console", "Output format: "+formatHelp())
	cmd.Flags().StringVar(&opts.asOf, "as-of", "", "Derive every scenario's partial year fraction from this date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", ".", "Directory for file reports")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log account balances at the start of every year")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func formatHelp() string {
	return strings.Join(append(output.AvailableFormatterNames(), "all"), ", ")
}

func runProject(cmd *cobra.Command, root *rootOptions, opts *projectOptions) error {
	cfg, err := config.NewInputParser().LoadFromFile(opts.configFile)
	if err != nil {
		return err
	}
	root.logger.Debug("loaded scenarios", zap.String("config", opts.configFile), zap.Strings("scenarios", cfg.ScenarioNames()))
	if opts.asOf != "" {
		asOf, err := dateutil.ParseDate(opts.asOf)
		if err != nil {
			return fmt.Errorf("invalid --as-of: %w", err)
		}
		fraction := decimal.NewFromFloat(dateutil.YearFractionElapsed(asOf))
		config.ApplyPartialYearFraction(cfg, fraction)
		root.logger.Debug("partial year fraction from date", zap.String("as_of", opts.asOf), zap.String("fraction", fraction.String()))
	}

	engine := calculation.NewProjectionEngine()
	engine.Debug = opts.debug
	engine.SetLogger(calculation.NewZapLogger(root.logger.Named("engine")))

	results, err := engine.RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	format := output.NormalizeFormatName(opts.format)
	if format == "console" || format == "console-lite" {
		data, err := output.GetFormatterByName(format).Format(results)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	files, err := output.GenerateReport(results, format, opts.outputDir)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
	}
	return nil
}

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve projections over HTTP",
		Long: `Starts the projection service. Settings are read from the environment:
  PROJECTOR_ADDR          listen address (default :8080)
  PROJECTOR_MAX_YEARS     largest accepted horizon (default 100)
  PROJECTOR_LOG_LEVEL     debug, info, warn or error (default info)
  PROJECTOR_READ_TIMEOUT  request read timeout (default 10s)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadServerSettings()
			if err != nil {
				return err
			}
			logger := root.logger
			if !root.verbose {
				level, err := zapcore.ParseLevel(settings.LogLevel)
				if err != nil {
					return fmt.Errorf("PROJECTOR_LOG_LEVEL: %w", err)
				}
				logger = logger.WithOptions(zap.IncreaseLevel(level))
			}
			return server.New(*settings, logger).ListenAndServe(cmd.Context())
		},
	}
}

func newExampleCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example scenario configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := config.SaveConfiguration(cfg, path); err != nil {
				return fmt.Errorf("failed to save example configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "output", "o", "example_config.yaml", "Destination file")
	return cmd
}

func newFractionCmd() *cobra.Command {
	var since string
	cmd := &cobra.Command{
		Use:   "fraction [date]",
		Short: "Print the partial year fraction for a date (default today)",
		Long: `Prints the fraction of the calendar year elapsed at the given date, suitable
for partial_year_fraction. With --since, prints the fraction of a 365.25-day year
between the two dates instead, clamped to [0, 1].`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at := nowFunc()
			if len(args) == 1 {
				parsed, err := dateutil.ParseDate(args[0])
				if err != nil {
					return err
				}
				at = parsed
			}

			var fraction float64
			if since != "" {
				start, err := dateutil.ParseDate(since)
				if err != nil {
					return fmt.Errorf("invalid --since: %w", err)
				}
				fraction = dateutil.FractionBetween(start, at)
			} else {
				fraction = dateutil.YearFractionElapsed(at)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %.6f\n", at.Format(dateutil.DateLayout), fraction)
			return nil
		},
	}
	cmd.Flags().StringVar(&since, "since", "", "Measure from this date instead of January 1 (YYYY-MM-DD)")
	return cmd
}
