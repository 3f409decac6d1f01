package employees

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Houeta/dsm44-seeder/internal/client"
	"github.com/Houeta/dsm44-seeder/internal/fixtures"
	"github.com/Houeta/dsm44-seeder/internal/lib/logger/sl"
	"github.com/Houeta/dsm44-seeder/internal/metrics"
	"github.com/Houeta/dsm44-seeder/internal/models"
)

const recordType = "employee"

var (
	ErrNoResult      = errors.New("no result after retries")
	ErrUnexpectedRsp = errors.New("unexpected response status")
	ErrMissingID     = errors.New("response has no employee id")
)

// Seeder creates synthetic employees through the API.
type Seeder struct {
	log       *slog.Logger
	submitter client.SubmitterIface
	gen       *fixtures.Generator
	metrics   *metrics.Metrics
	createURL string
}

func NewSeeder(
	log *slog.Logger,
	submitter client.SubmitterIface,
	gen *fixtures.Generator,
	metrics *metrics.Metrics,
	createURL string,
) *Seeder {
	return &Seeder{log: log, submitter: submitter, gen: gen, metrics: metrics, createURL: createURL}
}

func (s *Seeder) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// BuildPayload draws a fresh active employee.
func (s *Seeder) BuildPayload() models.Employee {
	return models.Employee{
		FullName:      s.gen.FullName(),
		Area:          s.gen.Area(),
		Turno:         s.gen.Shift(),
		SalarioDiario: s.gen.DailyWage(),
		Activo:        true,
	}
}

// Seed creates total employees one after another and returns the ids the API assigned, in creation order.
// A failed creation is logged and skipped.
func (s *Seeder) Seed(ctx context.Context, total int) []int {
	const opn = "Employee.Seed"
	log := s.initLogger(opn)

	ids := make([]int, 0, total)

	for index := 1; index <= total; index++ {
		if ctx.Err() != nil {
			log.WarnContext(ctx, "Seeding interrupted", "created", len(ids), sl.Err(ctx.Err()))
			break
		}

		payload := s.BuildPayload()
		log.InfoContext(ctx, "Creating employee",
			"index", index, "of", total, "nombre", payload.Nombre, "apellido_p", payload.ApellidoP)

		employeeID, err := s.create(ctx, payload)
		if err != nil {
			log.WarnContext(ctx, "Employee was not created", "index", index, sl.Err(err))
			s.metrics.RecordsSubmitted.WithLabelValues(recordType, "failure").Inc()
			continue
		}

		log.InfoContext(ctx, "Employee created", "id", employeeID)
		s.metrics.RecordsSubmitted.WithLabelValues(recordType, "success").Inc()
		ids = append(ids, employeeID)
	}

	return ids
}

func (s *Seeder) create(ctx context.Context, payload models.Employee) (int, error) {
	resp := s.submitter.Submit(ctx, s.createURL, payload)

	return ExtractID(resp)
}

// ExtractID accepts only 200/201 responses carrying a non-zero id_empleado.
func ExtractID(resp *client.Response) (int, error) {
	if resp == nil {
		return 0, ErrNoResult
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedRsp, resp.StatusCode)
	}

	var created models.EmployeeCreated
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return 0, fmt.Errorf("failed to decode employee response: %w", err)
	}

	if created.ID == 0 {
		return 0, ErrMissingID
	}

	return created.ID, nil
}
