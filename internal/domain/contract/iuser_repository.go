package contract

import (
	"context"
	"time"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser validates and stores a new user. A duplicate email yields entity.ErrConflict.
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUsers(ctx context.Context) ([]*entity.User, error)
	GetUsersByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error)
	// UpdateUserStatus writes only the status field and returns the updated user.
	UpdateUserStatus(ctx context.Context, id string, status entity.UserStatus) (*entity.User, error)
	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error

	// Password reset
	SetResetOTP(ctx context.Context, id, otpHash string, expiresAt time.Time) error
	ClearResetOTP(ctx context.Context, id string) error
	// FindByValidOTP returns the user whose stored code hash matches and has not expired at now.
	FindByValidOTP(ctx context.Context, email, otpHash string, now time.Time) (*entity.User, error)
	// ConsumeResetOTP sets the password and unsets the code in one conditional update.
	// It fails with entity.ErrInvalidOTP when no unexpired matching code exists.
	ConsumeResetOTP(ctx context.Context, email, otpHash, hashedPassword string, now time.Time) error

	CountUsers(ctx context.Context) (int64, error)
	CountUsersByRole(ctx context.Context, role entity.UserRole) (int64, error)
}
