package ports

import (
	"context"

	"github.com/chemba/waste-platform/internal/core/domain"
)

// EventWithOrganizer is an event joined with its organizer's public profile.
type EventWithOrganizer struct {
	domain.Event
	Organizer domain.EventOrganizer `json:"organizer"`
}

// EventRepository defines persistence operations for community events.
type EventRepository interface {
	Create(ctx context.Context, ev *domain.Event) (*domain.Event, error)
	// List returns all events, most recent date first, with organizer data.
	List(ctx context.Context) ([]EventWithOrganizer, error)
}
