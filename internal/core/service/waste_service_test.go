package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
)

type stubReportRepo struct {
	reports map[string]*domain.WasteReport
	nextID  int
}

func newStubReportRepo() *stubReportRepo {
	return &stubReportRepo{reports: make(map[string]*domain.WasteReport)}
}

func (r *stubReportRepo) Create(_ context.Context, report *domain.WasteReport) (*domain.WasteReport, error) {
	r.nextID++
	copy := *report
	copy.ID = "report-" + strconv.Itoa(r.nextID)
	stored := copy
	r.reports[copy.ID] = &stored
	return &copy, nil
}

func (r *stubReportRepo) FindByID(_ context.Context, id string) (*domain.WasteReport, error) {
	report, ok := r.reports[id]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	copy := *report
	return &copy, nil
}

func (r *stubReportRepo) ListByUser(_ context.Context, userID string) ([]domain.WasteReport, error) {
	var out []domain.WasteReport
	for _, report := range r.reports {
		if report.UserID == userID {
			out = append(out, *report)
		}
	}
	return out, nil
}

func (r *stubReportRepo) List(_ context.Context, filter ports.ReportFilter) ([]domain.WasteReport, error) {
	var out []domain.WasteReport
	for _, report := range r.reports {
		if filter.Status != "" && report.Status != filter.Status {
			continue
		}
		if len(out) >= filter.Limit {
			break
		}
		out = append(out, *report)
	}
	return out, nil
}

func (r *stubReportRepo) UpdateStatus(_ context.Context, id string, status domain.ReportStatus, notes string) error {
	report, ok := r.reports[id]
	if !ok {
		return domain.ErrReportNotFound
	}
	report.Status = status
	report.Notes = notes
	return nil
}

type stubScheduleRepo struct {
	users  *stubUserRepo
	nextID int
	err    error
}

// SchedulePickup mimics the transactional repository: check, deduct, insert,
// all-or-nothing.
func (r *stubScheduleRepo) SchedulePickup(_ context.Context, params ports.SchedulePickupParams) (*domain.WasteSchedule, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users.users[params.UserID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if user.Points < params.PointsUsed {
		return nil, domain.ErrInsufficientPoints
	}
	user.Points -= params.PointsUsed
	r.nextID++
	return &domain.WasteSchedule{
		ID:          "schedule-" + strconv.Itoa(r.nextID),
		UserID:      params.UserID,
		CollectorID: params.CollectorID,
		Date:        params.Date,
		PointsUsed:  params.PointsUsed,
		Status:      domain.ScheduleScheduled,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

type stubAuditSink struct {
	events []domain.ReportAuditEvent
}

func (s *stubAuditSink) Enqueue(ev domain.ReportAuditEvent) {
	s.events = append(s.events, ev)
}

func newTestWasteService() (*WasteService, *stubReportRepo, *stubUserRepo, *stubScheduleRepo, *stubAuditSink) {
	reports := newStubReportRepo()
	users := newStubUserRepo()
	schedules := &stubScheduleRepo{users: users}
	audit := &stubAuditSink{}
	svc := NewWasteService(reports, schedules, users, audit, zerolog.Nop())
	return svc, reports, users, schedules, audit
}

func seedUser(users *stubUserRepo, id string, role domain.Role, points int) {
	users.users[id] = &domain.User{
		ID:     id,
		Role:   role,
		Points: points,
		Status: domain.UserActive,
	}
}

func TestWasteService_Report_CreditsPoints(t *testing.T) {
	svc, _, users, _, _ := newTestWasteService()
	seedUser(users, "u1", domain.RoleUser, 0)

	report, err := svc.Report(context.Background(), ports.ReportWasteInput{
		UserID:      "u1",
		Description: "Overflowing bins at the market entrance",
		WasteType:   domain.WastePlastic,
		Location:    domain.Coordinates{Lng: -99.13, Lat: 19.43},
		QuantityKg:  4.5,
	})
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if report.ID == "" {
		t.Fatalf("expected report id")
	}
	if report.Status != domain.ReportPending {
		t.Fatalf("expected pending status, got %s", report.Status)
	}
	if report.PointsEarned != domain.ReportPointsEarned {
		t.Fatalf("expected %d points earned, got %d", domain.ReportPointsEarned, report.PointsEarned)
	}
	if users.users["u1"].Points != domain.ReportPointsEarned {
		t.Fatalf("expected balance %d, got %d", domain.ReportPointsEarned, users.users["u1"].Points)
	}
}

func TestWasteService_Report_SurvivesCreditFailure(t *testing.T) {
	svc, reports, users, _, _ := newTestWasteService()
	seedUser(users, "u1", domain.RoleUser, 0)
	users.pointsErr = errors.New("write concern failed")

	report, err := svc.Report(context.Background(), ports.ReportWasteInput{
		UserID:      "u1",
		Description: "Dumped electronics by the river bank",
		WasteType:   domain.WasteElectronic,
	})
	if err != nil {
		t.Fatalf("report should stand despite credit failure: %v", err)
	}
	if _, ok := reports.reports[report.ID]; !ok {
		t.Fatalf("report not persisted")
	}
	if users.users["u1"].Points != 0 {
		t.Fatalf("points should not change on credit failure")
	}
}

func TestWasteService_ListReports_CapsLimit(t *testing.T) {
	svc, reports, _, _, _ := newTestWasteService()
	for i := 0; i < 150; i++ {
		_, _ = reports.Create(context.Background(), &domain.WasteReport{
			UserID: "u1",
			Status: domain.ReportPending,
		})
	}

	out, err := svc.ListReports(context.Background(), ports.ReportFilter{Limit: 100000})
	if err != nil {
		t.Fatalf("ListReports returned error: %v", err)
	}
	if len(out) > maxReportListLimit {
		t.Fatalf("expected at most %d rows, got %d", maxReportListLimit, len(out))
	}
}

func TestWasteService_UpdateReportStatus_ValidTransition(t *testing.T) {
	svc, reports, _, _, audit := newTestWasteService()
	created, _ := reports.Create(context.Background(), &domain.WasteReport{
		UserID: "u1",
		Status: domain.ReportPending,
	})

	updated, err := svc.UpdateReportStatus(context.Background(), ports.UpdateReportStatusInput{
		ReportID: created.ID,
		ActorID:  "collector-1",
		Status:   domain.ReportInProgress,
		Notes:    "crew dispatched",
	})
	if err != nil {
		t.Fatalf("UpdateReportStatus returned error: %v", err)
	}
	if updated.Status != domain.ReportInProgress {
		t.Fatalf("expected in_progress, got %s", updated.Status)
	}
	if len(audit.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(audit.events))
	}
	ev := audit.events[0]
	if ev.From != domain.ReportPending || ev.To != domain.ReportInProgress || ev.ActorID != "collector-1" {
		t.Fatalf("unexpected audit event: %+v", ev)
	}
}

func TestWasteService_UpdateReportStatus_InvalidTransition(t *testing.T) {
	svc, reports, _, _, audit := newTestWasteService()
	created, _ := reports.Create(context.Background(), &domain.WasteReport{
		UserID: "u1",
		Status: domain.ReportPending,
	})

	_, err := svc.UpdateReportStatus(context.Background(), ports.UpdateReportStatusInput{
		ReportID: created.ID,
		Status:   domain.ReportCompleted,
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if len(audit.events) != 0 {
		t.Fatalf("no audit event expected on rejected transition")
	}
	if reports.reports[created.ID].Status != domain.ReportPending {
		t.Fatalf("status should be unchanged")
	}
}

func TestWasteService_UpdateReportStatus_TerminalState(t *testing.T) {
	svc, reports, _, _, _ := newTestWasteService()
	created, _ := reports.Create(context.Background(), &domain.WasteReport{
		UserID: "u1",
		Status: domain.ReportCompleted,
	})

	_, err := svc.UpdateReportStatus(context.Background(), ports.UpdateReportStatusInput{
		ReportID: created.ID,
		Status:   domain.ReportInProgress,
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from terminal state, got %v", err)
	}
}

func TestWasteService_SchedulePickup_Success(t *testing.T) {
	svc, _, users, _, _ := newTestWasteService()
	seedUser(users, "u1", domain.RoleUser, 100)
	seedUser(users, "c1", domain.RoleCollector, 0)

	schedule, err := svc.SchedulePickup(context.Background(), ports.SchedulePickupInput{
		UserID:      "u1",
		CollectorID: "c1",
		Date:        time.Now().Add(48 * time.Hour),
		PointsUsed:  30,
	})
	if err != nil {
		t.Fatalf("SchedulePickup returned error: %v", err)
	}
	if schedule.Status != domain.ScheduleScheduled {
		t.Fatalf("expected scheduled status, got %s", schedule.Status)
	}
	if users.users["u1"].Points != 70 {
		t.Fatalf("expected 70 points remaining, got %d", users.users["u1"].Points)
	}
}

func TestWasteService_SchedulePickup_NotACollector(t *testing.T) {
	svc, _, users, _, _ := newTestWasteService()
	seedUser(users, "u1", domain.RoleUser, 100)
	seedUser(users, "u2", domain.RoleUser, 0)

	_, err := svc.SchedulePickup(context.Background(), ports.SchedulePickupInput{
		UserID:      "u1",
		CollectorID: "u2",
		PointsUsed:  10,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if users.users["u1"].Points != 100 {
		t.Fatalf("no points should move, got %d", users.users["u1"].Points)
	}
}

func TestWasteService_SchedulePickup_InsufficientPoints(t *testing.T) {
	svc, _, users, _, _ := newTestWasteService()
	seedUser(users, "u1", domain.RoleUser, 5)
	seedUser(users, "c1", domain.RoleCollector, 0)

	_, err := svc.SchedulePickup(context.Background(), ports.SchedulePickupInput{
		UserID:      "u1",
		CollectorID: "c1",
		PointsUsed:  30,
	})
	if !errors.Is(err, domain.ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints, got %v", err)
	}
	if users.users["u1"].Points != 5 {
		t.Fatalf("balance must be untouched, got %d", users.users["u1"].Points)
	}
}
