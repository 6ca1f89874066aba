package dto

import (
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// RegisterRequest carries the registration form. Role and status are optional.
type RegisterRequest struct {
	FullName       string `json:"fullName" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password" binding:"required"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	ProfilePicture string `json:"profilePicture"`
	Headline       string `json:"headline"`
	Position       string `json:"position"`
	Education      string `json:"education"`
	Experience     string `json:"experience"`
	Address        string `json:"address"`
	Bio            string `json:"bio"`
}

func (r RegisterRequest) ToInput() usecasecontract.RegisterInput {
	return usecasecontract.RegisterInput{
		FullName:       r.FullName,
		Email:          r.Email,
		Password:       r.Password,
		Phone:          r.Phone,
		Role:           r.Role,
		Status:         r.Status,
		ProfilePicture: r.ProfilePicture,
		Headline:       r.Headline,
		Position:       r.Position,
		Education:      r.Education,
		Experience:     r.Experience,
		Address:        r.Address,
		Bio:            r.Bio,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StatusRequest is shared by every status transition endpoint.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// ResetPasswordRequest accepts the new password as either password or newPassword.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

func (r ResetPasswordRequest) NewPasswordValue() string {
	if r.NewPassword != "" {
		return r.NewPassword
	}
	return r.Password
}
