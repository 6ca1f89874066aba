package entity

import "time"

// ModerationReport is a flag raised against content or a user, queued for review.
type ModerationReport struct {
	ID            string         `json:"_id" bson:"_id"`
	Type          string         `json:"type" bson:"type" validate:"notblank"`
	TargetContent string         `json:"targetContent" bson:"targetContent" validate:"notblank"`
	Reporter      string         `json:"reporter" bson:"reporter" validate:"notblank"`
	Status        ReportStatus   `json:"status" bson:"status" validate:"enum"`
	Severity      ReportSeverity `json:"severity" bson:"severity" validate:"enum"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt" bson:"updatedAt"`
}
