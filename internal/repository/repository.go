package repository

import (
	"context"

	"github.com/Houeta/dsm44-seeder/internal/metrics"
	"github.com/Houeta/dsm44-seeder/internal/models"
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// RunRepoIface represents the interface for the journal of seeding runs.
type RunRepoIface interface {
	SaveRun(ctx context.Context, run models.SeedRun) error
	GetLastRun(ctx context.Context) (models.SeedRun, error)
}

func NewRunRepository(db Database, metrics *metrics.Metrics) RunRepoIface {
	return &Repository{db: db, metrics: metrics}
}
