package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/chemba/waste-platform/internal/api/metrics"
	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
)

const maxReportListLimit = 100

// AuditSink receives report status-change events for asynchronous persistence.
type AuditSink interface {
	Enqueue(ev domain.ReportAuditEvent)
}

// WasteService implements waste reporting, the report queue and pickup scheduling.
type WasteService struct {
	reports   ports.ReportRepository
	schedules ports.ScheduleRepository
	users     ports.UserRepository
	audit     AuditSink
	log       zerolog.Logger
}

func NewWasteService(
	reports ports.ReportRepository,
	schedules ports.ScheduleRepository,
	users ports.UserRepository,
	audit AuditSink,
	log zerolog.Logger,
) *WasteService {
	return &WasteService{
		reports:   reports,
		schedules: schedules,
		users:     users,
		audit:     audit,
		log:       log,
	}
}

// Report files a waste report and credits the reporter's point balance.
func (s *WasteService) Report(ctx context.Context, in ports.ReportWasteInput) (*domain.WasteReport, error) {
	report := &domain.WasteReport{
		UserID:       in.UserID,
		Description:  in.Description,
		WasteType:    in.WasteType,
		Location:     in.Location,
		QuantityKg:   in.QuantityKg,
		Status:       domain.ReportPending,
		PointsEarned: domain.ReportPointsEarned,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.reports.Create(ctx, report)
	if err != nil {
		return nil, err
	}

	if err := s.users.AddPoints(ctx, in.UserID, domain.ReportPointsEarned); err != nil {
		// The report stands; the reporter just lost their credit. Loud log, no rollback.
		s.log.Error().Err(err).Str("user_id", in.UserID).Str("report_id", created.ID).Msg("failed to credit report points")
	} else {
		metrics.PointsEarnedTotal.Add(float64(domain.ReportPointsEarned))
	}

	metrics.ReportsCreatedTotal.WithLabelValues(string(in.WasteType)).Inc()
	s.log.Info().Str("report_id", created.ID).Str("user_id", in.UserID).Str("waste_type", string(in.WasteType)).Msg("waste report filed")

	return created, nil
}

// MyReports returns the user's own reports, newest first.
func (s *WasteService) MyReports(ctx context.Context, userID string) ([]domain.WasteReport, error) {
	return s.reports.ListByUser(ctx, userID)
}

// ListReports returns the handling queue, optionally filtered by status.
func (s *WasteService) ListReports(ctx context.Context, filter ports.ReportFilter) ([]domain.WasteReport, error) {
	if filter.Limit <= 0 || filter.Limit > maxReportListLimit {
		filter.Limit = maxReportListLimit
	}
	return s.reports.List(ctx, filter)
}

// UpdateReportStatus validates the state-machine transition, applies it, and
// enqueues an audit event for asynchronous persistence.
func (s *WasteService) UpdateReportStatus(ctx context.Context, in ports.UpdateReportStatusInput) (*domain.WasteReport, error) {
	report, err := s.reports.FindByID(ctx, in.ReportID)
	if err != nil {
		return nil, err
	}

	if !report.Status.CanTransitionTo(in.Status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, report.Status, in.Status)
	}

	if err := s.reports.UpdateStatus(ctx, in.ReportID, in.Status, in.Notes); err != nil {
		return nil, err
	}

	s.audit.Enqueue(domain.ReportAuditEvent{
		ReportID:  in.ReportID,
		From:      report.Status,
		To:        in.Status,
		ActorID:   in.ActorID,
		Notes:     in.Notes,
		Timestamp: time.Now().UTC(),
	})

	report.Status = in.Status
	report.Notes = in.Notes

	s.log.Info().Str("report_id", in.ReportID).Str("status", string(in.Status)).Str("actor_id", in.ActorID).Msg("report status updated")
	return report, nil
}

// SchedulePickup books a collector visit paid with reward points. Balance
// check, deduction and schedule insertion are atomic: the repository runs
// them in a single database transaction and aborts on any failure.
func (s *WasteService) SchedulePickup(ctx context.Context, in ports.SchedulePickupInput) (*domain.WasteSchedule, error) {
	collector, err := s.users.FindByID(ctx, in.CollectorID)
	if err != nil {
		return nil, err
	}
	if collector.Role != domain.RoleCollector {
		return nil, domain.ErrForbidden
	}

	schedule, err := s.schedules.SchedulePickup(ctx, ports.SchedulePickupParams{
		UserID:      in.UserID,
		CollectorID: in.CollectorID,
		Date:        in.Date,
		PointsUsed:  in.PointsUsed,
	})
	if err != nil {
		return nil, err
	}

	metrics.PickupsScheduledTotal.Inc()
	metrics.PointsSpentTotal.Add(float64(in.PointsUsed))
	s.log.Info().
		Str("schedule_id", schedule.ID).
		Str("user_id", in.UserID).
		Str("collector_id", in.CollectorID).
		Int("points_used", in.PointsUsed).
		Msg("pickup scheduled")

	return schedule, nil
}
