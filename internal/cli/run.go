package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/bench"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/validation"
	"github.com/kbukum/seqkit/version"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type runFlags struct {
	configFile string
	count      int
	scale      float64
	seed       uint64
	duration   time.Duration
	maxRuns    int
	runID      string
	scenarios  []string
	logLevel   string
	output     string
}

// Run returns the run subcommand.
func Run() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run [flags]",
		Short: "Run the configured scenarios and print their timings",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "path to config.yml")
	cmd.Flags().IntVar(&f.count, "count", 0, "number of elements per scenario")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "values are floor(scale * x) for x in [0, 1)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed of the pseudo-random source")
	cmd.Flags().DurationVarP(&f.duration, "duration", "d", 0, "time budget per scenario")
	cmd.Flags().IntVar(&f.maxRuns, "max-runs", 0, "cap on runs per scenario (0 for no cap)")
	cmd.Flags().StringVar(&f.runID, "run-id", "", "UUID tagging logs, spans and reports")
	cmd.Flags().StringSliceVarP(&f.scenarios, "scenario", "s", nil, "scenarios to run (repeatable)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level override")
	cmd.Flags().StringVarP(&f.output, "output", "o", outputText, "report format: text or json")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if err := validation.New().OneOf("output", f.output, []string{outputText, outputJSON}).Validate(); err != nil {
			return err
		}
		cmd.SilenceUsage = true
		ctx := cmd.Context()

		cfg, err := resolveConfig(cmd, &f)
		if err != nil {
			return err
		}
		runnerCfg, err := cfg.Bench.RunnerConfig()
		if err != nil {
			return err
		}

		logger.Init(cfg.Logging)
		logger.RegisterDefaults("bench", "cli")
		log := logger.Get("cli")

		shutdown, err := observability.Setup(ctx, cfg.Observability, cfg.Name, version.Version, cfg.Environment)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.WithError(err).Warn("telemetry shutdown failed")
			}
		}()

		metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
		if err != nil {
			return err
		}

		entries, err := bench.Entries(cfg.Bench)
		if err != nil {
			return err
		}

		log.Info("starting", logger.Fields(
			"scenarios", cfg.Bench.Scenarios,
			"count", cfg.Bench.Count,
			"seed", cfg.Bench.Seed,
			logger.FieldDuration, cfg.Bench.Duration.Milliseconds(),
		))

		runner := bench.NewRunner(runnerCfg,
			bench.WithLogger(logger.Get("bench")),
			bench.WithMetrics(metrics),
		)
		reports, runErr := runner.Run(ctx, entries...)
		if err := writeReports(cmd.OutOrStdout(), f.output, reports); err != nil {
			return err
		}
		return runErr
	}
	return cmd
}

// resolveConfig loads config.yml and the environment, fills unset values with
// defaults, then copies explicitly set flags on top. Flags come last so an
// explicit zero such as --count 0 survives.
func resolveConfig(cmd *cobra.Command, f *runFlags) (*Config, error) {
	cfg, err := loadConfig(f.configFile)
	if err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyFlags(cmd, f, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, f *runFlags, cfg *Config) {
	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Bench.Count = f.count
	}
	if flags.Changed("scale") {
		cfg.Bench.Scale = f.scale
	}
	if flags.Changed("seed") {
		cfg.Bench.Seed = f.seed
	}
	if flags.Changed("duration") {
		cfg.Bench.Duration = f.duration
	}
	if flags.Changed("max-runs") {
		cfg.Bench.MaxRuns = f.maxRuns
	}
	if flags.Changed("run-id") {
		cfg.Bench.RunID = f.runID
	}
	if flags.Changed("scenario") {
		cfg.Bench.Scenarios = f.scenarios
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
}

type reportJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Runs        int       `json:"runs"`
	DurationsMs []float64 `json:"durations_ms"`
	MinMs       float64   `json:"min_ms"`
	MeanMs      float64   `json:"mean_ms"`
	MaxMs       float64   `json:"max_ms"`
	Elements    int       `json:"elements"`
	Error       string    `json:"error,omitempty"`
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

func writeReports(w io.Writer, format string, reports []bench.Report) error {
	if format == outputJSON {
		out := make([]reportJSON, 0, len(reports))
		for _, r := range reports {
			rj := reportJSON{
				ID:          r.ID.String(),
				Name:        r.Name,
				Runs:        r.Runs,
				DurationsMs: make([]float64, 0, len(r.Durations)),
				MinMs:       millis(r.Min),
				MeanMs:      millis(r.Mean),
				MaxMs:       millis(r.Max),
				Elements:    r.Elements,
			}
			for _, d := range r.Durations {
				rj.DurationsMs = append(rj.DurationsMs, millis(d))
			}
			if r.Err != nil {
				rj.Error = r.Err.Error()
			}
			out = append(out, rj)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, r := range reports {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}
