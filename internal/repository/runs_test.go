package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/Houeta/dsm44-seeder/internal/metrics"
	"github.com/Houeta/dsm44-seeder/internal/models"
	"github.com/Houeta/dsm44-seeder/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const saveRunQuery = `
		INSERT INTO seed_runs (run_id, status, employees_created, dates_processed, records_attempted, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (run_id) DO UPDATE SET
			status = $2, employees_created = $3, dates_processed = $4, records_attempted = $5, finished_at = $7;
	`

const getLastRunQuery = `SELECT run_id::text, status, employees_created, dates_processed, records_attempted, started_at, finished_at
		FROM seed_runs ORDER BY finished_at DESC LIMIT 1`

func testRun() models.SeedRun {
	started := time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)

	return models.SeedRun{
		ID:               "5b0c7b8e-7f3a-4f0e-9d0a-2c7f5a6b1e11",
		Status:           models.RunStatusSuccess,
		EmployeesCreated: 2,
		DatesProcessed:   1,
		RecordsAttempted: 2,
		StartedAt:        started,
		FinishedAt:       started.Add(3 * time.Second),
	}
}

func newTestMetrics() *metrics.Metrics {
	return metrics.NewMetrics(prometheus.NewRegistry())
}

func TestSaveRun_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	run := testRun()
	mock.ExpectExec(regexp.QuoteMeta(saveRunQuery)).
		WithArgs(run.ID, run.Status, run.EmployeesCreated, run.DatesProcessed, run.RecordsAttempted,
			run.StartedAt, run.FinishedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := repository.NewRunRepository(mock, newTestMetrics())
	err = repo.SaveRun(context.Background(), run)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_QueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	run := testRun()
	mock.ExpectExec(regexp.QuoteMeta(saveRunQuery)).
		WithArgs(run.ID, run.Status, run.EmployeesCreated, run.DatesProcessed, run.RecordsAttempted,
			run.StartedAt, run.FinishedAt).
		WillReturnError(assert.AnError)

	repo := repository.NewRunRepository(mock, newTestMetrics())
	err = repo.SaveRun(context.Background(), run)

	require.Error(t, err)
	assert.Equal(t, "failed to save run: "+assert.AnError.Error(), err.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLastRun_Success(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	expRun := testRun()
	rows := pgxmock.NewRows([]string{
		"run_id", "status", "employees_created", "dates_processed", "records_attempted", "started_at", "finished_at",
	}).AddRow(expRun.ID, expRun.Status, expRun.EmployeesCreated, expRun.DatesProcessed, expRun.RecordsAttempted,
		expRun.StartedAt, expRun.FinishedAt)

	mock.ExpectQuery(regexp.QuoteMeta(getLastRunQuery)).WillReturnRows(rows)

	repo := repository.NewRunRepository(mock, newTestMetrics())
	actualRun, err := repo.GetLastRun(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expRun, actualRun)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLastRun_QueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(getLastRunQuery)).WillReturnError(assert.AnError)

	repo := repository.NewRunRepository(mock, newTestMetrics())
	actualRun, err := repo.GetLastRun(context.Background())

	require.EqualError(t, err, "failed to get last run: "+assert.AnError.Error())
	assert.Equal(t, models.SeedRun{}, actualRun)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewDatabase_InvalidConfig(t *testing.T) {
	t.Parallel()

	dbpool, err := repository.NewDatabase("localhost", "not-a-port", "user", "pass", "seeder")

	require.ErrorContains(t, err, "failed to parse database config")
	assert.Nil(t, dbpool)
}
