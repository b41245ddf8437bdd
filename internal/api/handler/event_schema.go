package handler

import "time"

type eventImageRequest struct {
	PublicID string `json:"public_id" validate:"required"`
	URL      string `json:"url"       validate:"required,url"`
}

type createEventRequest struct {
	Title       string             `json:"title"       validate:"required,max=100"`
	Description string             `json:"description" validate:"required,max=2000"`
	Date        time.Time          `json:"date"        validate:"required"`
	Location    string             `json:"location"    validate:"required,max=200"`
	Image       *eventImageRequest `json:"image"       validate:"omitempty"`
}
