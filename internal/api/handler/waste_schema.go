package handler

import "time"

// locationRequest carries a GeoJSON-style coordinate pair: [lng, lat].
type locationRequest struct {
	Coordinates []float64 `json:"coordinates" validate:"required,len=2"`
}

type reportWasteRequest struct {
	Description string          `json:"description" validate:"required,min=10,max=1000"`
	WasteType   string          `json:"waste_type"  validate:"required,oneof=plastic metal organic glass electronic other"`
	Location    locationRequest `json:"location"    validate:"required"`
	QuantityKg  float64         `json:"quantity_kg" validate:"omitempty,gte=0.1,lte=1000"`
}

type schedulePickupRequest struct {
	CollectorID   string    `json:"collector_id"   validate:"required,mongoid"`
	ScheduledDate time.Time `json:"scheduled_date" validate:"required,futuredate"`
	PointsUsed    int       `json:"points_used"    validate:"required,gte=1,lte=1000"`
}

type updateReportStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed rejected"`
	Notes  string `json:"notes"  validate:"omitempty,max=500"`
}

type listReportsQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=pending in_progress completed rejected"`
	Limit  int    `query:"limit"  validate:"omitempty,gte=1,lte=100"`
}
