package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
)

// EventService implements community event posting and listing.
type EventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

func NewEventService(repo ports.EventRepository, log zerolog.Logger) *EventService {
	return &EventService{repo: repo, log: log}
}

func (s *EventService) Create(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	ev := &domain.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		Image:       in.Image,
		OrganizerID: in.OrganizerID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, ev)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("event_id", created.ID).Str("organizer_id", in.OrganizerID).Msg("event created")
	return created, nil
}

func (s *EventService) List(ctx context.Context) ([]ports.EventWithOrganizer, error) {
	return s.repo.List(ctx)
}
