package domain

import "time"

// EventImage references an already-uploaded image in the external media store.
type EventImage struct {
	PublicID string `json:"public_id" bson:"public_id"`
	URL      string `json:"url" bson:"url"`
}

// Event is a community event posted by an organizer.
type Event struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Title       string      `json:"title" bson:"title"`
	Description string      `json:"description" bson:"description"`
	Date        time.Time   `json:"date" bson:"date"`
	Location    string      `json:"location" bson:"location"`
	Image       *EventImage `json:"image,omitempty" bson:"image,omitempty"`
	OrganizerID string      `json:"organizer_id" bson:"organizer_id"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}

// EventOrganizer is the subset of organizer profile data embedded in listings.
type EventOrganizer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}
