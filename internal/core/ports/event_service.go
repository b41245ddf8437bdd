package ports

import (
	"context"
	"time"

	"github.com/chemba/waste-platform/internal/core/domain"
)

// CreateEventInput carries all data needed to post a community event.
// Image metadata references an upload already performed against the external
// media store; this service never handles image bytes.
type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	Image       *domain.EventImage
	OrganizerID string
}

// EventService defines use-case operations for community events.
type EventService interface {
	Create(ctx context.Context, in CreateEventInput) (*domain.Event, error)
	List(ctx context.Context) ([]EventWithOrganizer, error)
}
