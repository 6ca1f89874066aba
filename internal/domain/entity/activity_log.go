package entity

import "time"

// ActivityLog is append-only.
type ActivityLog struct {
	ID        string    `json:"_id" bson:"_id"`
	Action    string    `json:"action" bson:"action" validate:"notblank"`
	User      string    `json:"user" bson:"user" validate:"notblank"`
	Details   string    `json:"details" bson:"details"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// SystemActor attributes log entries written outside an authenticated session.
const SystemActor = "system"
