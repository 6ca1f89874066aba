package mocks

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailCreateUser     bool
	ShouldFailLogin          bool
	ShouldFailGetByID        bool
	ShouldFailUpdateStatus   bool
	ShouldFailDeleteUser     bool
	ShouldFailForgotPassword bool
	ShouldFailEmail          bool
	ShouldFailVerifyOTP      bool
	ShouldFailResetPassword  bool
	ShouldFailAuthenticate   bool
	ShouldBanUser            bool

	// Return values
	MockUser        entity.User
	MockAccessToken string
	MockSession     entity.Session

	// Captured arguments
	LastRegisterInput usecasecontract.RegisterInput
	LastStatus        string
	LastNewPassword   string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			FullName: "Test User",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
			Status:   entity.UserStatusActive,
		},
		MockAccessToken: "mock_access_token",
		MockSession:     entity.Session{UserID: "mock-admin-id", Role: entity.UserRoleAdmin, FullName: "Mock Admin"},
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput) (*entity.User, error) {
	m.LastRegisterInput = in
	if m.ShouldFailCreateUser {
		return nil, fmt.Errorf("user with email %s: %w", in.Email, entity.ErrConflict)
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", entity.ErrInvalidCredentials
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.Session, error) {
	if m.ShouldBanUser {
		return nil, fmt.Errorf("account is banned: %w", entity.ErrForbidden)
	}
	if m.ShouldFailAuthenticate || accessToken != m.MockAccessToken {
		return nil, fmt.Errorf("invalid access token: %w", entity.ErrUnauthorized)
	}
	s := m.MockSession
	return &s, nil
}

func (m *MockUserUsecase) GetUsers(ctx context.Context) ([]*entity.User, error) {
	return []*entity.User{&m.MockUser}, nil
}

func (m *MockUserUsecase) GetReporters(ctx context.Context) ([]*entity.User, error) {
	return []*entity.User{}, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, entity.ErrNotFound
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) UpdateUserStatus(ctx context.Context, userID, status string) (*entity.User, error) {
	m.LastStatus = status
	if m.ShouldFailUpdateStatus {
		return nil, entity.ErrNotFound
	}
	parsed, err := entity.ParseUserStatus(status)
	if err != nil {
		return nil, err
	}
	user := m.MockUser
	user.Status = parsed
	return &user, nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID string) error {
	if m.ShouldFailDeleteUser {
		return entity.ErrNotFound
	}
	return nil
}

func (m *MockUserUsecase) ForgotPassword(ctx context.Context, email string) error {
	if m.ShouldFailForgotPassword {
		return entity.ErrNotFound
	}
	if m.ShouldFailEmail {
		return fmt.Errorf("smtp: %w", entity.ErrEmailDelivery)
	}
	return nil
}

func (m *MockUserUsecase) VerifyOTP(ctx context.Context, email, otp string) error {
	if m.ShouldFailVerifyOTP {
		return entity.ErrInvalidOTP
	}
	return nil
}

func (m *MockUserUsecase) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	m.LastNewPassword = newPassword
	if newPassword == "" {
		return entity.NewValidationError("password", "Password is required")
	}
	if m.ShouldFailResetPassword {
		return entity.ErrInvalidOTP
	}
	return nil
}
