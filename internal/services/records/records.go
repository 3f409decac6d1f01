package records

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Houeta/dsm44-seeder/internal/client"
	"github.com/Houeta/dsm44-seeder/internal/fixtures"
	"github.com/Houeta/dsm44-seeder/internal/lib/logger/sl"
	"github.com/Houeta/dsm44-seeder/internal/metrics"
	"github.com/Houeta/dsm44-seeder/internal/models"
)

const (
	entryHour = 8
	exitHour  = 17

	typeAttendance = "attendance"
	typeProduction = "production"
)

// Endpoints are the absolute URLs records are posted to.
type Endpoints struct {
	Attendance string
	Production string
}

// Outcome carries both raw results of Register. A nil field means that record was not accepted.
type Outcome struct {
	Attendance *client.Response
	Production *client.Response
}

// Seeder registers attendance and production for one employee and date at a time.
type Seeder struct {
	log       *slog.Logger
	submitter client.SubmitterIface
	gen       *fixtures.Generator
	metrics   *metrics.Metrics
	endpoints Endpoints
}

func NewSeeder(
	log *slog.Logger,
	submitter client.SubmitterIface,
	gen *fixtures.Generator,
	metrics *metrics.Metrics,
	endpoints Endpoints,
) *Seeder {
	return &Seeder{log: log, submitter: submitter, gen: gen, metrics: metrics, endpoints: endpoints}
}

func (s *Seeder) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "records"),
	)
}

// BuildAttendance returns a 08:00-17:00 attendance for the date.
func (s *Seeder) BuildAttendance(date string, employeeID int) (models.Attendance, error) {
	entry, err := fixtures.ToTimestamp(date, entryHour, 0)
	if err != nil {
		return models.Attendance{}, fmt.Errorf("failed to build entry time: %w", err)
	}

	exit, err := fixtures.ToTimestamp(date, exitHour, 0)
	if err != nil {
		return models.Attendance{}, fmt.Errorf("failed to build exit time: %w", err)
	}

	hours, err := WorkedHours(entry, exit)
	if err != nil {
		return models.Attendance{}, err
	}

	return models.Attendance{
		Fecha:           date,
		HoraEntrada:     entry,
		HoraSalida:      exit,
		Entrada:         entry,
		Salida:          exit,
		Status:          s.gen.AttendanceStatus(),
		Empleado:        employeeID,
		HorasTrabajadas: hours,
	}, nil
}

func (s *Seeder) BuildProduction(date string, employeeID int) models.Production {
	return models.Production{
		Fecha:              date,
		Turno:              s.gen.Shift(),
		UnidadesProducidas: s.gen.UnitsProduced(),
		Empleado:           employeeID,
	}
}

// Register submits attendance and production independently, a failure of one never blocks the other.
// The error is reserved for a date that cannot be turned into timestamps.
func (s *Seeder) Register(ctx context.Context, date string, employeeID int) (Outcome, error) {
	const opn = "Records.Register"
	log := s.initLogger(opn).With("empleado", employeeID, "fecha", date)

	attendance, err := s.BuildAttendance(date, employeeID)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to prepare attendance for employee %d: %w", employeeID, err)
	}
	production := s.BuildProduction(date, employeeID)

	log.DebugContext(ctx, "Registering attendance and production")

	outcome := Outcome{
		Attendance: s.submitter.Submit(ctx, s.endpoints.Attendance, attendance),
		Production: s.submitter.Submit(ctx, s.endpoints.Production, production),
	}

	s.observe(typeAttendance, outcome.Attendance)
	s.observe(typeProduction, outcome.Production)

	if outcome.Attendance != nil && outcome.Production != nil {
		logCreated(ctx, log, outcome)
		return outcome, nil
	}

	if outcome.Attendance == nil {
		log.WarnContext(ctx, "Attendance was not registered")
	}
	if outcome.Production == nil {
		log.WarnContext(ctx, "Production was not registered")
	}

	return outcome, nil
}

func (s *Seeder) observe(recordType string, resp *client.Response) {
	status := "success"
	if resp == nil {
		status = "failure"
	}
	s.metrics.RecordsSubmitted.WithLabelValues(recordType, status).Inc()
}

func logCreated(ctx context.Context, log *slog.Logger, outcome Outcome) {
	var attendance models.AttendanceCreated
	var production models.ProductionCreated

	if err := json.Unmarshal(outcome.Attendance.Body, &attendance); err != nil {
		log.WarnContext(ctx, "Failed to parse attendance response", sl.Err(err))
		return
	}
	if err := json.Unmarshal(outcome.Production.Body, &production); err != nil {
		log.WarnContext(ctx, "Failed to parse production response", sl.Err(err))
		return
	}

	log.InfoContext(ctx, "Attendance and production created",
		"id_reg_a", idOrNA(attendance.ID), "id_reg_p", idOrNA(production.ID))
}

func idOrNA(id *int) any {
	if id == nil {
		return "N/A"
	}

	return *id
}

// WorkedHours is exit minus entry in fractional hours.
func WorkedHours(entry, exit string) (float64, error) {
	from, err := time.Parse(fixtures.TimestampLayout, entry)
	if err != nil {
		return 0, fmt.Errorf("failed to parse entry '%s': %w", entry, err)
	}

	to, err := time.Parse(fixtures.TimestampLayout, exit)
	if err != nil {
		return 0, fmt.Errorf("failed to parse exit '%s': %w", exit, err)
	}

	return to.Sub(from).Hours(), nil
}
