package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Houeta/dsm44-seeder/internal/config"
	"github.com/Houeta/dsm44-seeder/internal/fixtures"
	"github.com/Houeta/dsm44-seeder/internal/lib/logger/sl"
	"github.com/Houeta/dsm44-seeder/internal/metrics"
	"github.com/Houeta/dsm44-seeder/internal/models"
	"github.com/Houeta/dsm44-seeder/internal/repository"
	"github.com/Houeta/dsm44-seeder/internal/services/records"
)

var (
	ErrAPIUnreachable = errors.New("api is unreachable")
	ErrNoEmployees    = errors.New("no employees were created")
)

// ProbeFunc checks that the API answers at all and returns the status it answered with.
type ProbeFunc func(ctx context.Context) (int, error)

type EmployeeSeeder interface {
	Seed(ctx context.Context, total int) []int
}

type RecordSeeder interface {
	Register(ctx context.Context, date string, employeeID int) (records.Outcome, error)
}

// Summary is what a run reports at the end.
type Summary struct {
	RunID            string
	EmployeesCreated int
	DatesProcessed   int
	RecordsAttempted int
}

// Runner drives one seeding run: probe, employees, records, summary. Phases never go back.
type Runner struct {
	log       *slog.Logger
	cfg       config.SeedConfig
	apiURL    string
	probe     ProbeFunc
	employees EmployeeSeeder
	records   RecordSeeder
	runs      repository.RunRepoIface
	metrics   *metrics.Metrics
	pause     func(ctx context.Context, d time.Duration)
	now       func() time.Time
}

// New builds a Runner. runs may be nil, in which case no journal is kept.
func New(
	log *slog.Logger,
	cfg config.SeedConfig,
	apiURL string,
	probe ProbeFunc,
	employees EmployeeSeeder,
	records RecordSeeder,
	runs repository.RunRepoIface,
	metrics *metrics.Metrics,
) *Runner {
	return &Runner{
		log:       log,
		cfg:       cfg,
		apiURL:    apiURL,
		probe:     probe,
		employees: employees,
		records:   records,
		runs:      runs,
		metrics:   metrics,
		pause:     pauseContext,
		now:       time.Now,
	}
}

func (r *Runner) initLogger(opn string) *slog.Logger {
	return r.log.With(
		slog.String("op", opn),
		slog.String("division", "runner"),
	)
}

// Run executes every phase in order and stops at the first fatal condition.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	const opn = "Runner.Run"
	summary := Summary{RunID: uuid.NewString()}
	log := r.initLogger(opn).With(slog.String("run_id", summary.RunID))

	startedAt := r.now()
	r.logLastRun(ctx, log)

	err := r.run(ctx, log, &summary)
	r.finish(ctx, log, summary, startedAt, err)

	return summary, err
}

func (r *Runner) run(ctx context.Context, log *slog.Logger, summary *Summary) error {
	// 1. Connectivity
	log.InfoContext(ctx, "Starting data population", "api", r.apiURL)
	status, err := r.probe(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Cannot connect to the API, make sure the server is running", "api", r.apiURL, sl.Err(err))
		return fmt.Errorf("%w: %w", ErrAPIUnreachable, err)
	}
	log.InfoContext(ctx, "API connected", "status_code", status)

	// 2. Employees
	log.InfoContext(ctx, "Creating employees", "total", r.cfg.TotalEmployees)
	employeeIDs := r.employees.Seed(ctx, r.cfg.TotalEmployees)
	summary.EmployeesCreated = len(employeeIDs)
	if len(employeeIDs) == 0 {
		log.ErrorContext(ctx, "No employees were created, stopping")
		return ErrNoEmployees
	}
	log.InfoContext(ctx, "Employees created", "count", len(employeeIDs))

	// 3. Attendance and production
	dates := fixtures.YearDates(r.cfg.Year)
	if r.cfg.Days < len(dates) {
		dates = dates[:r.cfg.Days]
	}
	summary.DatesProcessed = len(dates)

	total := len(dates) * len(employeeIDs)
	log.InfoContext(ctx, "Registering attendance and production",
		"days", len(dates), "employees", len(employeeIDs), "total", total)

	for _, date := range dates {
		log.InfoContext(ctx, "Processing date", "fecha", date)

		for _, employeeID := range employeeIDs {
			if ctx.Err() != nil {
				return fmt.Errorf("run interrupted: %w", ctx.Err())
			}

			summary.RecordsAttempted++
			log.InfoContext(ctx, fmt.Sprintf("[%d/%d] Registering", summary.RecordsAttempted, total),
				"fecha", date, "empleado", employeeID)

			if _, regErr := r.records.Register(ctx, date, employeeID); regErr != nil {
				log.ErrorContext(ctx, "Failed to register records", "fecha", date, "empleado", employeeID, sl.Err(regErr))
			}

			r.pause(ctx, r.cfg.RecordPause)
		}
	}

	// 4. Summary
	log.InfoContext(ctx, "Population completed",
		"employees_created", summary.EmployeesCreated,
		"dates_processed", summary.DatesProcessed,
		"records_attempted", summary.RecordsAttempted,
	)

	return nil
}

func (r *Runner) finish(ctx context.Context, log *slog.Logger, summary Summary, startedAt time.Time, runErr error) {
	finishedAt := r.now()
	status := models.RunStatusSuccess
	if runErr != nil {
		status = models.RunStatusFailure
	}

	r.metrics.Runs.WithLabelValues(status).Inc()
	r.metrics.RunDuration.Observe(finishedAt.Sub(startedAt).Seconds())
	if runErr == nil {
		r.metrics.LastSuccessfulRun.Set(float64(finishedAt.Unix()))
	}

	if r.runs == nil {
		return
	}

	run := models.SeedRun{
		ID:               summary.RunID,
		Status:           status,
		EmployeesCreated: summary.EmployeesCreated,
		DatesProcessed:   summary.DatesProcessed,
		RecordsAttempted: summary.RecordsAttempted,
		StartedAt:        startedAt,
		FinishedAt:       finishedAt,
	}
	// the run context may already be cancelled, the journal entry is still wanted
	if err := r.runs.SaveRun(context.WithoutCancel(ctx), run); err != nil {
		log.WarnContext(ctx, "Failed to save run to journal", sl.Err(err))
	}
}

func (r *Runner) logLastRun(ctx context.Context, log *slog.Logger) {
	if r.runs == nil {
		return
	}

	last, err := r.runs.GetLastRun(ctx)
	if err != nil {
		log.DebugContext(ctx, "No previous run found", sl.Err(err))
		return
	}

	log.InfoContext(ctx, "Previous run",
		"run_id", last.ID,
		"status", last.Status,
		"finished_at", last.FinishedAt,
		"employees_created", last.EmployeesCreated,
		"records_attempted", last.RecordsAttempted,
	)
}

func pauseContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
