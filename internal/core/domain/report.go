package domain

import "time"

// WasteType categorizes what was found at an incident site.
type WasteType string

const (
	WastePlastic    WasteType = "plastic"
	WasteMetal      WasteType = "metal"
	WasteOrganic    WasteType = "organic"
	WasteGlass      WasteType = "glass"
	WasteElectronic WasteType = "electronic"
	WasteOther      WasteType = "other"
)

// WasteTypes lists every valid waste category.
var WasteTypes = []WasteType{WastePlastic, WasteMetal, WasteOrganic, WasteGlass, WasteElectronic, WasteOther}

// ReportStatus represents the handling state of a waste report.
type ReportStatus string

const (
	ReportPending    ReportStatus = "pending"
	ReportInProgress ReportStatus = "in_progress"
	ReportCompleted  ReportStatus = "completed"
	ReportRejected   ReportStatus = "rejected"
)

// ReportStatuses lists every valid report status.
var ReportStatuses = []ReportStatus{ReportPending, ReportInProgress, ReportCompleted, ReportRejected}

// validReportTransitions defines the allowed handling-state transitions.
// Completed and rejected are terminal.
var validReportTransitions = map[ReportStatus][]ReportStatus{
	ReportPending:    {ReportInProgress, ReportRejected},
	ReportInProgress: {ReportCompleted, ReportRejected},
}

// CanTransitionTo reports whether moving from s to next is valid.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	for _, allowed := range validReportTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Coordinates is a geographic point, stored [lng, lat] on the wire like GeoJSON.
type Coordinates struct {
	Lng float64 `json:"lng" bson:"lng"`
	Lat float64 `json:"lat" bson:"lat"`
}

// ReportPointsEarned is credited to the reporter when a report is filed.
const ReportPointsEarned = 10

// WasteReport is a geolocated waste incident filed by a user.
type WasteReport struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	UserID       string       `json:"user_id" bson:"user_id"`
	Description  string       `json:"description" bson:"description"`
	WasteType    WasteType    `json:"waste_type" bson:"waste_type"`
	Location     Coordinates  `json:"location" bson:"location"`
	QuantityKg   float64      `json:"quantity_kg,omitempty" bson:"quantity_kg,omitempty"`
	Status       ReportStatus `json:"status" bson:"status"`
	PointsEarned int          `json:"points_earned" bson:"points_earned"`
	Notes        string       `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
}

// ReportAuditEvent records a single status transition on a report.
type ReportAuditEvent struct {
	ReportID  string       `json:"report_id"`
	From      ReportStatus `json:"from"`
	To        ReportStatus `json:"to"`
	ActorID   string       `json:"actor_id"`
	Notes     string       `json:"notes,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}
