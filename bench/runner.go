package bench

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
)

// Entry is a named unit of work timed by the Runner. Run returns the number
// of elements it produced.
type Entry struct {
	Name string
	Run  func(ctx context.Context) (int, error)
}

// Report summarizes the runs of one entry.
type Report struct {
	ID        uuid.UUID
	Name      string
	Runs      int
	Durations []time.Duration
	Min       time.Duration
	Max       time.Duration
	Mean      time.Duration
	Elements  int
	Err       error

	total time.Duration
}

// Failed reports whether the entry stopped on an error.
func (r *Report) Failed() bool { return r.Err != nil }

// String renders the per-run timings the way the harness prints them.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n ", r.Name)
	for _, d := range r.Durations {
		fmt.Fprintf(&b, " %dms", d.Milliseconds())
	}
	if r.Runs > 0 {
		fmt.Fprintf(&b, "\n  runs=%d min=%s mean=%s max=%s elements=%d", r.Runs, r.Min, r.Mean, r.Max, r.Elements)
	}
	if r.Err != nil {
		fmt.Fprintf(&b, "\n  FAILED: %v", r.Err)
	}
	return b.String()
}

func (r *Report) add(d time.Duration, elements int) {
	r.Durations = append(r.Durations, d)
	r.Runs++
	r.Elements = elements
	if r.Runs == 1 || d < r.Min {
		r.Min = d
	}
	if d > r.Max {
		r.Max = d
	}
	r.total += d
	r.Mean = r.total / time.Duration(r.Runs)
}

// RunnerConfig bounds how long each entry is repeated.
type RunnerConfig struct {
	// Duration is the time budget per entry. Every entry runs at least once.
	Duration time.Duration
	// MaxRuns caps the runs per entry; 0 means no cap.
	MaxRuns int
	// RunID tags every report; a random ID is used when it is uuid.Nil.
	RunID uuid.UUID
}

// Runner repeatedly times entries.
type Runner struct {
	cfg     RunnerConfig
	log     *logger.Logger
	metrics *observability.Metrics
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used for per-run output.
func WithLogger(l *logger.Logger) RunnerOption {
	return func(r *Runner) { r.log = l }
}

// WithMetrics records run metrics on m.
func WithMetrics(m *observability.Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// NewRunner creates a runner. Without WithLogger it logs through the
// "bench" component logger.
func NewRunner(cfg RunnerConfig, opts ...RunnerOption) *Runner {
	r := &Runner{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.Get("bench")
	}
	return r
}

// Run times every entry in order. An entry stops at its first failing run;
// the remaining entries still run. The returned error joins every entry
// failure, and reports are returned for all entries either way. A canceled
// ctx stops the whole run.
func (r *Runner) Run(ctx context.Context, entries ...Entry) ([]Report, error) {
	if len(entries) == 0 {
		return nil, errors.InvalidInput("entries", "at least one entry is required")
	}

	runID := r.cfg.RunID
	if runID == uuid.Nil {
		runID = uuid.New()
	}
	ctx = logger.ContextWithRunID(ctx, runID.String())
	log := r.log.WithContext(ctx)

	reports := make([]Report, 0, len(entries))
	var failures []error
	for _, entry := range entries {
		report := r.runEntry(ctx, log, runID, entry)
		reports = append(reports, report)
		if report.Err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", entry.Name, report.Err))
			if errors.HasCode(report.Err, errors.ErrCodeCanceled) {
				break
			}
		}
	}
	return reports, stderrors.Join(failures...)
}

func (r *Runner) runEntry(ctx context.Context, log *logger.Logger, runID uuid.UUID, entry Entry) Report {
	report := Report{ID: runID, Name: entry.Name}
	log = log.WithFields(logger.Fields(logger.FieldScenario, entry.Name))
	start := time.Now()

	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			report.Err = errors.Canceled(err)
			break
		}

		rc := observability.NewRunContext(entry.Name, runID.String(), i, r.metrics)
		runCtx, span := rc.Start(ctx)
		n, err := entry.Run(runCtx)
		elapsed := rc.End(runCtx, span, n, err)

		if err != nil {
			log.WithError(err).Error("run failed", logger.Fields(logger.FieldRun, i))
			report.Err = err
			break
		}
		report.add(elapsed, n)
		log.Debug("run finished", logger.RunFields(i, n, elapsed))

		if r.cfg.MaxRuns > 0 && report.Runs >= r.cfg.MaxRuns {
			break
		}
		if time.Since(start) >= r.cfg.Duration {
			break
		}
	}

	log.Info("entry finished", logger.Fields(
		"runs", report.Runs,
		"min_ms", float64(report.Min.Microseconds())/1000,
		"mean_ms", float64(report.Mean.Microseconds())/1000,
		"max_ms", float64(report.Max.Microseconds())/1000,
		logger.FieldElements, report.Elements,
	))
	return report
}
