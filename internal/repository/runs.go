package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Houeta/dsm44-seeder/internal/models"
)

// SaveRun stores a finished run. Saving the same run id twice keeps the latest counts.
func (r *Repository) SaveRun(ctx context.Context, run models.SeedRun) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("save_run").Observe(duration)
	}()
	query := `
		INSERT INTO seed_runs (run_id, status, employees_created, dates_processed, records_attempted, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (run_id) DO UPDATE SET
			status = $2, employees_created = $3, dates_processed = $4, records_attempted = $5, finished_at = $7;
	`

	_, err := r.db.Exec(ctx, query, run.ID, run.Status, run.EmployeesCreated, run.DatesProcessed,
		run.RecordsAttempted, run.StartedAt, run.FinishedAt)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	return nil
}

// GetLastRun returns the most recently finished run.
func (r *Repository) GetLastRun(ctx context.Context) (models.SeedRun, error) {
	var result models.SeedRun

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_last_run").Observe(duration)
	}()
	query := `SELECT run_id::text, status, employees_created, dates_processed, records_attempted, started_at, finished_at
		FROM seed_runs ORDER BY finished_at DESC LIMIT 1`

	err := r.db.QueryRow(ctx, query).Scan(&result.ID, &result.Status, &result.EmployeesCreated,
		&result.DatesProcessed, &result.RecordsAttempted, &result.StartedAt, &result.FinishedAt)
	if err != nil {
		return models.SeedRun{}, fmt.Errorf("failed to get last run: %w", err)
	}

	return result, nil
}
