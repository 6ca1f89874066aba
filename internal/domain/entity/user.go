package entity

import "time"

// User represents a user in the system
type User struct {
	ID              string     `json:"_id" bson:"_id"`
	FullName        string     `json:"fullName" bson:"fullName" validate:"notblank"`
	Email           string     `json:"email" bson:"email" validate:"required,email"`
	PasswordHash    string     `json:"-" bson:"password" validate:"required"`
	Phone           string     `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,phone10"`
	ProfilePicture  string     `json:"profilePicture" bson:"profilePicture"`
	Headline        string     `json:"headline,omitempty" bson:"headline,omitempty"`
	Position        string     `json:"position,omitempty" bson:"position,omitempty"`
	Education       string     `json:"education,omitempty" bson:"education,omitempty"`
	Experience      string     `json:"experience,omitempty" bson:"experience,omitempty"`
	Address         string     `json:"address,omitempty" bson:"address,omitempty"`
	Bio             string     `json:"bio,omitempty" bson:"bio,omitempty"`
	ArticlesCount   int        `json:"articlesCount" bson:"articlesCount"`
	Role            UserRole   `json:"role" bson:"role" validate:"enum"`
	Status          UserStatus `json:"status" bson:"status" validate:"enum"`
	ResetOTP        string     `json:"-" bson:"resetOTP,omitempty"`
	ResetOTPExpires *time.Time `json:"-" bson:"resetOTPExpires,omitempty"`
	CreatedAt       time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// MemberSummary is the projection of a user embedded in community listings.
type MemberSummary struct {
	ID       string   `json:"_id" bson:"_id"`
	FullName string   `json:"fullName" bson:"fullName"`
	Role     UserRole `json:"role" bson:"role"`
	Email    string   `json:"email" bson:"email"`
}
