package ports

import (
	"context"
	"time"

	"github.com/chemba/waste-platform/internal/core/domain"
)

// ReportFilter carries query parameters for the report queue.
type ReportFilter struct {
	Status domain.ReportStatus // optional: filter by handling state
	Limit  int                 // max rows (capped at 100 by the service)
}

// ReportRepository defines persistence operations for waste reports.
type ReportRepository interface {
	Create(ctx context.Context, r *domain.WasteReport) (*domain.WasteReport, error)
	FindByID(ctx context.Context, id string) (*domain.WasteReport, error)
	// ListByUser returns the user's reports, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.WasteReport, error)
	List(ctx context.Context, filter ReportFilter) ([]domain.WasteReport, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReportStatus, notes string) error
}

// SchedulePickupParams carries the data for a transactional pickup booking.
type SchedulePickupParams struct {
	UserID      string
	CollectorID string
	Date        time.Time
	PointsUsed  int
}

// ScheduleRepository defines persistence operations for pickup schedules.
type ScheduleRepository interface {
	// SchedulePickup atomically checks the user's balance, deducts PointsUsed
	// and inserts the schedule. On insufficient balance it returns
	// domain.ErrInsufficientPoints and leaves no partial state behind.
	SchedulePickup(ctx context.Context, params SchedulePickupParams) (*domain.WasteSchedule, error)
}

// AuditRepository persists report status-change audit events.
type AuditRepository interface {
	InsertAuditEvent(ctx context.Context, ev *domain.ReportAuditEvent) error
}
