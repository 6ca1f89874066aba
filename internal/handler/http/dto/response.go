package dto

import (
	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type UserStatusResponse struct {
	Message string       `json:"message"`
	User    *entity.User `json:"user"`
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors. Errors lists rejected fields on validation failures.
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  []entity.FieldError `json:"errors,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
