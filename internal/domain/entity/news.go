package entity

import "time"

// DefaultNewsAuthor is used when an article is submitted without an author.
const DefaultNewsAuthor = "Admin"

type News struct {
	ID        string       `json:"_id" bson:"_id"`
	Title     string       `json:"title" bson:"title" validate:"notblank"`
	Content   string       `json:"content" bson:"content" validate:"notblank"`
	Author    string       `json:"author" bson:"author" validate:"notblank"`
	Category  NewsCategory `json:"category" bson:"category" validate:"enum"`
	Status    NewsStatus   `json:"status" bson:"status" validate:"enum"`
	Image     string       `json:"image" bson:"image"`
	Date      time.Time    `json:"date" bson:"date"`
	CreatedAt time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt" bson:"updatedAt"`
}
