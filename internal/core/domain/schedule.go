package domain

import "time"

// ScheduleStatus represents the state of a pickup appointment.
type ScheduleStatus string

const (
	ScheduleScheduled ScheduleStatus = "scheduled"
	ScheduleCompleted ScheduleStatus = "completed"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

// WasteSchedule is a pickup appointment between a user and a collector,
// paid for with reward points.
type WasteSchedule struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	UserID      string         `json:"user_id" bson:"user_id"`
	CollectorID string         `json:"collector_id" bson:"collector_id"`
	Date        time.Time      `json:"date" bson:"date"`
	Status      ScheduleStatus `json:"status" bson:"status"`
	PointsUsed  int            `json:"points_used" bson:"points_used"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
}
