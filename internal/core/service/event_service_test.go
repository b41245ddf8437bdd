package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
)

type stubEventRepo struct {
	events []domain.Event
}

func (r *stubEventRepo) Create(_ context.Context, ev *domain.Event) (*domain.Event, error) {
	copy := *ev
	copy.ID = "event-" + strconv.Itoa(len(r.events)+1)
	r.events = append(r.events, copy)
	return &copy, nil
}

func (r *stubEventRepo) List(_ context.Context) ([]ports.EventWithOrganizer, error) {
	out := make([]ports.EventWithOrganizer, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ports.EventWithOrganizer{
			Event:     ev,
			Organizer: domain.EventOrganizer{ID: ev.OrganizerID, Name: "Org", Role: domain.RoleGovernment},
		})
	}
	return out, nil
}

func TestEventService_Create(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewEventService(repo, zerolog.Nop())

	ev, err := svc.Create(context.Background(), ports.CreateEventInput{
		Title:       "River cleanup",
		Description: "Community cleanup along the south bank",
		Date:        time.Now().Add(72 * time.Hour),
		Location:    "South riverbank",
		Image:       &domain.EventImage{PublicID: "img-1", URL: "https://cdn.example.com/img-1"},
		OrganizerID: "gov-1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if ev.ID == "" {
		t.Fatalf("expected event id")
	}
	if ev.OrganizerID != "gov-1" {
		t.Fatalf("unexpected organizer: %s", ev.OrganizerID)
	}
	if ev.CreatedAt.IsZero() {
		t.Fatalf("expected created-at to be stamped")
	}
}

func TestEventService_List(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewEventService(repo, zerolog.Nop())

	_, _ = svc.Create(context.Background(), ports.CreateEventInput{Title: "A", OrganizerID: "gov-1"})
	_, _ = svc.Create(context.Background(), ports.CreateEventInput{Title: "B", OrganizerID: "gov-1"})

	events, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Organizer.ID != "gov-1" {
		t.Fatalf("expected organizer join, got %+v", events[0].Organizer)
	}
}
