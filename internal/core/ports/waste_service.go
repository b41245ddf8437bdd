package ports

import (
	"context"
	"time"

	"github.com/chemba/waste-platform/internal/core/domain"
)

// ReportWasteInput carries all data needed to file a waste report.
type ReportWasteInput struct {
	UserID      string
	Description string
	WasteType   domain.WasteType
	Location    domain.Coordinates
	QuantityKg  float64
}

// UpdateReportStatusInput carries a handling-state transition request.
type UpdateReportStatusInput struct {
	ReportID string
	ActorID  string
	Status   domain.ReportStatus
	Notes    string
}

// SchedulePickupInput carries a pickup booking request.
type SchedulePickupInput struct {
	UserID      string
	CollectorID string
	Date        time.Time
	PointsUsed  int
}

// WasteService defines use-case operations for reports and pickups.
type WasteService interface {
	Report(ctx context.Context, in ReportWasteInput) (*domain.WasteReport, error)
	MyReports(ctx context.Context, userID string) ([]domain.WasteReport, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]domain.WasteReport, error)
	UpdateReportStatus(ctx context.Context, in UpdateReportStatusInput) (*domain.WasteReport, error)
	SchedulePickup(ctx context.Context, in SchedulePickupInput) (*domain.WasteSchedule, error)
}
