package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chemba/waste-platform/internal/core/domain"
	"github.com/chemba/waste-platform/internal/core/ports"
)

// WasteHandler handles waste report and pickup scheduling requests.
type WasteHandler struct {
	service ports.WasteService
}

func NewWasteHandler(service ports.WasteService) *WasteHandler {
	return &WasteHandler{service: service}
}

// Report files a waste incident and credits the reporter's points.
//
// @Summary      Report a waste incident
// @Tags         waste
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      reportWasteRequest  true  "Report details"
// @Success      201   {object}  domain.WasteReport
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /waste/report [post]
func (h *WasteHandler) Report(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req reportWasteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.service.Report(c.Request().Context(), ports.ReportWasteInput{
		UserID:      user.ID,
		Description: req.Description,
		WasteType:   domain.WasteType(req.WasteType),
		Location: domain.Coordinates{
			Lng: req.Location.Coordinates[0],
			Lat: req.Location.Coordinates[1],
		},
		QuantityKg: req.QuantityKg,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, report)
}

// MyReports lists the caller's own reports, newest first.
//
// @Summary      List own waste reports
// @Tags         waste
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}   domain.WasteReport
// @Failure      401  {object}  map[string]string
// @Router       /waste/my-reports [get]
func (h *WasteHandler) MyReports(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	reports, err := h.service.MyReports(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reports)
}

// ListReports returns the handling queue for collectors and government staff.
//
// @Summary      List the report queue
// @Tags         waste
// @Produce      json
// @Security     ApiKeyAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        limit   query     int     false  "Max rows (1-100)"
// @Success      200     {array}   domain.WasteReport
// @Failure      403     {object}  map[string]string
// @Router       /waste/reports [get]
func (h *WasteHandler) ListReports(c echo.Context) error {
	var q listReportsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	reports, err := h.service.ListReports(c.Request().Context(), ports.ReportFilter{
		Status: domain.ReportStatus(q.Status),
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reports)
}

// UpdateStatus transitions a report's handling state.
//
// @Summary      Update a report's status
// @Tags         waste
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id    path      string                     true  "Report id"
// @Param        body  body      updateReportStatusRequest  true  "New status"
// @Success      200   {object}  domain.WasteReport
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /waste/reports/{id}/status [patch]
func (h *WasteHandler) UpdateStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if !objectIDPattern.MatchString(c.Param("id")) {
		return &ValidationError{Details: []FieldError{{
			Field:   "id",
			Value:   c.Param("id"),
			Message: "id must be a valid object id",
			Type:    "mongoid",
		}}}
	}

	var req updateReportStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.service.UpdateReportStatus(c.Request().Context(), ports.UpdateReportStatusInput{
		ReportID: c.Param("id"),
		ActorID:  user.ID,
		Status:   domain.ReportStatus(req.Status),
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}

// SchedulePickup books a collector visit paid with reward points.
//
// @Summary      Schedule a pickup
// @Tags         waste
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      schedulePickupRequest  true  "Pickup details"
// @Success      201   {object}  domain.WasteSchedule
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /waste/schedule [post]
func (h *WasteHandler) SchedulePickup(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req schedulePickupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	schedule, err := h.service.SchedulePickup(c.Request().Context(), ports.SchedulePickupInput{
		UserID:      user.ID,
		CollectorID: req.CollectorID,
		Date:        req.ScheduledDate,
		PointsUsed:  req.PointsUsed,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, schedule)
}
