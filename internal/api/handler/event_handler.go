package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
)

// EventHandler handles community event posting and listing.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// Create posts a community event. Image metadata references an upload already
// performed against the external media store.
//
// @Summary      Create a community event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      createEventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		OrganizerID: user.ID,
	}
	if req.Image != nil {
		in.Image = &domain.EventImage{PublicID: req.Image.PublicID, URL: req.Image.URL}
	}

	event, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, event)
}

// List returns all community events, most recent date first.
//
// @Summary      List community events
// @Tags         events
// @Produce      json
// @Success      200  {array}  ports.EventWithOrganizer
// @Router       /events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
