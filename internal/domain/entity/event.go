package entity

import "time"

type Event struct {
	ID        string      `json:"_id" bson:"_id"`
	Title     string      `json:"title" bson:"title" validate:"notblank"`
	Organizer string      `json:"organizer" bson:"organizer" validate:"notblank"`
	Date      time.Time   `json:"date" bson:"date" validate:"required"`
	Location  string      `json:"location" bson:"location" validate:"notblank"`
	Category  string      `json:"category" bson:"category" validate:"notblank"`
	Status    EventStatus `json:"status" bson:"status" validate:"enum"`
	Type      EventType   `json:"type" bson:"type" validate:"enum"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt" bson:"updatedAt"`
}
