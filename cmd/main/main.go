package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Houeta/dsm44-seeder/internal/client"
	"github.com/Houeta/dsm44-seeder/internal/config"
	"github.com/Houeta/dsm44-seeder/internal/fixtures"
	"github.com/Houeta/dsm44-seeder/internal/lib/logger/sl"
	"github.com/Houeta/dsm44-seeder/internal/metrics"
	"github.com/Houeta/dsm44-seeder/internal/repository"
	"github.com/Houeta/dsm44-seeder/internal/runner"
	"github.com/Houeta/dsm44-seeder/internal/server"
	"github.com/Houeta/dsm44-seeder/internal/services/employees"
	"github.com/Houeta/dsm44-seeder/internal/services/records"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	os.Exit(run())
}

func run() int {
	var wgr sync.WaitGroup

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	runRepo, pinger, closeJournal := openJournal(ctx, logger, cfg.Postgres, appMetrics)
	defer closeJournal()

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	if cfg.Monitoring.Port != 0 {
		wgr.Add(1)
		go func() {
			defer wgr.Done()
			server.StartMonitoringServer(monitorCtx, logger, reg, pinger, cfg.Monitoring.Port, cfg.API.BaseURL)
		}()
	}
	defer func() {
		stopMonitor()
		wgr.Wait()
	}()

	httpClient := client.CreateHTTPClient(logger, cfg.API.RequestTimeout)
	submitter := client.NewSubmitter(logger, httpClient, appMetrics, client.RetryPolicy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		Delay:       cfg.Retry.Delay,
	})

	gen := fixtures.NewGenerator(fixtures.DefaultPools(), newRand(cfg.Seed.Seed))

	employeeSeeder := employees.NewSeeder(logger, submitter, gen, appMetrics, cfg.API.EmployeesURL())
	recordSeeder := records.NewSeeder(logger, submitter, gen, appMetrics, records.Endpoints{
		Attendance: cfg.API.AttendanceURL(),
		Production: cfg.API.ProductionURL(),
	})
	probe := func(ctx context.Context) (int, error) {
		return client.Probe(ctx, httpClient, cfg.API.EmployeesURL(), cfg.API.ProbeTimeout)
	}

	seedRunner := runner.New(logger, cfg.Seed, cfg.API.BaseURL, probe, employeeSeeder, recordSeeder, runRepo, appMetrics)

	summary, err := seedRunner.Run(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Seeding run failed", sl.Err(err))
		return 1
	}

	printSummary(os.Stdout, summary)

	return 0
}

// printSummary writes the run summary regardless of the configured log level.
func printSummary(w io.Writer, summary runner.Summary) {
	_, _ = fmt.Fprintf(w,
		"Population completed (run %s)\n  employees created: %d\n  dates processed:   %d\n  records attempted: %d\n",
		summary.RunID, summary.EmployeesCreated, summary.DatesProcessed, summary.RecordsAttempted)
}

// openJournal connects to the run journal when one is configured.
// An unreachable database only disables the journal, the run goes on without it.
func openJournal(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.PostgresConfig,
	appMetrics *metrics.Metrics,
) (repository.RunRepoIface, server.DBPinger, func()) {
	if cfg.Host == "" {
		return nil, nil, func() {}
	}

	dtb, err := repository.NewDatabase(cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Dbname)
	if err != nil {
		logger.WarnContext(ctx, "Failed to connect to DB, run journal disabled", sl.Err(err))
		return nil, nil, func() {}
	}

	return repository.NewRunRepository(dtb, appMetrics), dtb, dtb.Close
}

// newRand returns a reproducible source for a non-zero seed and a random one otherwise.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // fixtures, not secrets
	}

	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // fixtures, not secrets
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{Key: "", Value: slog.Value{}}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}
