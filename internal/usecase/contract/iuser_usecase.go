package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	FullName       string
	Email          string
	Password       string
	Phone          string
	Role           string
	Status         string
	ProfilePicture string
	Headline       string
	Position       string
	Education      string
	Experience     string
	Address        string
	Bio            string
}

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.Session, error)
	GetUsers(ctx context.Context) ([]*entity.User, error)
	GetReporters(ctx context.Context) ([]*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	UpdateUserStatus(ctx context.Context, userID, status string) (*entity.User, error)
	DeleteUser(ctx context.Context, userID string) error

	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
}
