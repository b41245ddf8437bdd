package domain

import "testing"

func TestReportStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct{ from, to ReportStatus }{
		{ReportPending, ReportInProgress},
		{ReportPending, ReportRejected},
		{ReportInProgress, ReportCompleted},
		{ReportInProgress, ReportRejected},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to ReportStatus }{
		{ReportPending, ReportCompleted},
		{ReportCompleted, ReportInProgress},
		{ReportRejected, ReportPending},
		{ReportCompleted, ReportRejected},
		{ReportPending, ReportPending},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range Roles {
		if !r.Valid() {
			t.Fatalf("expected %s to be valid", r)
		}
	}
	if Role("admin").Valid() {
		t.Fatalf("unknown role accepted")
	}
}
