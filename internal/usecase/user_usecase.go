package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

const (
	otpDigits            = 6
	passwordResetSubject = "Your Password Reset OTP"
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo        contract.IUserRepository
	hasher          contract.IHasher
	jwtService      JWTService
	mailService     contract.IEmailService
	mailTemplates   contract.IMailTemplates
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	validator       usecasecontract.IValidator
	uuidGenerator   contract.IUUIDGenerator
	randomGenerator contract.IRandomGenerator
	hooks           writeHooks
	now             func() time.Time
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	mailService contract.IEmailService,
	mailTemplates contract.IMailTemplates,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	randomgen contract.IRandomGenerator,
	activity usecasecontract.IActivityRecorder,
	analytics cacheInvalidator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:        userRepo,
		hasher:          hasher,
		jwtService:      jwtService,
		mailService:     mailService,
		mailTemplates:   mailTemplates,
		logger:          logger,
		config:          cfg,
		validator:       validator,
		uuidGenerator:   uuidGenerator,
		randomGenerator: randomgen,
		hooks:           writeHooks{activity: activity, analytics: analytics},
		now:             time.Now,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register handles user registration. Only an admin session may create another admin.
func (uc *UserUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput) (*entity.User, error) {
	email := normalizeEmail(in.Email)
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := uc.validator.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	role := entity.DefaultRole()
	if in.Role != "" {
		parsed, err := entity.ParseEnum("role", in.Role, entity.UserRoles)
		if err != nil {
			return nil, err
		}
		role = parsed
	}
	if role == entity.UserRoleAdmin {
		if s, ok := entity.SessionFromContext(ctx); !ok || !s.IsAdmin() {
			return nil, fmt.Errorf("only admins can create admin accounts: %w", entity.ErrForbidden)
		}
	}
	status := entity.UserStatusPending
	if in.Status != "" {
		parsed, err := entity.ParseUserStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	// Check if user with same email already exists
	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user with email %s: %w", email, entity.ErrConflict)
	}

	hashedPassword, err := uc.hasher.HashPassword(in.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	now := uc.now()
	user := &entity.User{
		ID:             uc.uuidGenerator.NewUUID(),
		FullName:       strings.TrimSpace(in.FullName),
		Email:          email,
		PasswordHash:   hashedPassword,
		Phone:          strings.TrimSpace(in.Phone),
		ProfilePicture: in.ProfilePicture,
		Headline:       in.Headline,
		Position:       in.Position,
		Education:      in.Education,
		Experience:     in.Experience,
		Address:        in.Address,
		Bio:            in.Bio,
		Role:           role,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Save user to database
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if !errors.Is(err, entity.ErrValidation) && !errors.Is(err, entity.ErrConflict) {
			uc.logger.Errorf("failed to create user: %v", err)
		}
		return nil, err
	}

	uc.hooks.done(ctx, "User Registered", fmt.Sprintf("%s registered as %s", user.FullName, user.Role))
	return user, nil
}

// Login checks credentials and issues an access token. Unknown email and wrong password
// fail with the same error.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", entity.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", err
	}

	// Verify password
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, accessToken, nil
}

// Authenticate resolves a bearer token into a session for the token's user.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.Session, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %v: %w", err, entity.ErrUnauthorized)
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("token user no longer exists: %w", entity.ErrUnauthorized)
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, err
	}
	if user.Status == entity.UserStatusBanned {
		return nil, fmt.Errorf("account is banned: %w", entity.ErrForbidden)
	}

	return &entity.Session{UserID: user.ID, Role: user.Role, FullName: user.FullName}, nil
}

func (uc *UserUsecase) GetUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.GetUsers(ctx)
}

func (uc *UserUsecase) GetReporters(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.GetUsersByRole(ctx, entity.UserRoleReporter)
}

func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

func (uc *UserUsecase) UpdateUserStatus(ctx context.Context, userID, status string) (*entity.User, error) {
	target, err := entity.ParseUserStatus(status)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.UpdateUserStatus(ctx, userID, target)
	if err != nil {
		return nil, err
	}
	uc.hooks.done(ctx, "User Status Updated", fmt.Sprintf("%s set to %s", user.FullName, user.Status))
	return user, nil
}

func (uc *UserUsecase) DeleteUser(ctx context.Context, userID string) error {
	if err := uc.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}
	uc.hooks.done(ctx, "User Deleted", fmt.Sprintf("user %s removed", userID))
	return nil
}

// BootstrapAdmin creates an active Admin account for a fresh install. It is a no-op
// when the email already belongs to an Admin and a conflict when it belongs to anyone else.
func (uc *UserUsecase) BootstrapAdmin(ctx context.Context, fullName, email, password string) (*entity.User, bool, error) {
	existing, err := uc.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	switch {
	case err == nil && existing.Role == entity.UserRoleAdmin:
		return existing, false, nil
	case err == nil:
		return nil, false, fmt.Errorf("user with email %s is a %s: %w", existing.Email, existing.Role, entity.ErrConflict)
	case !errors.Is(err, entity.ErrNotFound):
		return nil, false, err
	}

	ctx = entity.WithSession(ctx, entity.Session{Role: entity.UserRoleAdmin, FullName: entity.SystemActor})
	user, err := uc.Register(ctx, usecasecontract.RegisterInput{
		FullName: fullName,
		Email:    email,
		Password: password,
		Role:     string(entity.UserRoleAdmin),
		Status:   string(entity.UserStatusActive),
	})
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// ForgotPassword stores the digest of a fresh code and mails the code. The code is
// cleared again when the mail cannot be delivered.
func (uc *UserUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}

	otp, err := uc.randomGenerator.GenerateDigits(otpDigits)
	if err != nil {
		uc.logger.Errorf("failed to generate reset code: %v", err)
		return fmt.Errorf("failed to initiate password reset: %w", err)
	}

	ttl := uc.config.GetPasswordResetOTPExpiry()
	if err := uc.userRepo.SetResetOTP(ctx, user.ID, uc.hasher.HashString(otp), uc.now().Add(ttl)); err != nil {
		uc.logger.Errorf("failed to store reset code for user %s: %v", user.ID, err)
		return err
	}

	body, err := uc.mailTemplates.PasswordResetOTP(user.FullName, otp, int(ttl.Minutes()))
	if err == nil {
		err = uc.mailService.SendEmail(ctx, user.Email, passwordResetSubject, body)
	}
	if err != nil {
		uc.logger.Errorf("failed to send password reset email to %s: %v", user.Email, err)
		// The caller may have gone away; the undelivered code must still be cleared.
		if clearErr := uc.userRepo.ClearResetOTP(context.WithoutCancel(ctx), user.ID); clearErr != nil {
			uc.logger.Errorf("failed to roll back reset code for user %s: %v", user.ID, clearErr)
		}
		return fmt.Errorf("%v: %w", err, entity.ErrEmailDelivery)
	}

	return nil
}

// VerifyOTP only checks the code; it changes nothing. ResetPassword checks again.
func (uc *UserUsecase) VerifyOTP(ctx context.Context, email, otp string) error {
	if strings.TrimSpace(otp) == "" {
		return entity.ErrInvalidOTP
	}
	_, err := uc.userRepo.FindByValidOTP(ctx, normalizeEmail(email), uc.hasher.HashString(otp), uc.now())
	return err
}

// ResetPassword consumes the code and stores the new password in one conditional write.
func (uc *UserUsecase) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	if newPassword == "" {
		return entity.NewValidationError("password", "Password is required")
	}
	if err := uc.validator.ValidatePassword(newPassword); err != nil {
		return err
	}
	if strings.TrimSpace(otp) == "" {
		return entity.ErrInvalidOTP
	}

	hashedPassword, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		uc.logger.Errorf("failed to hash new password: %v", err)
		return fmt.Errorf("failed to process password: %w", err)
	}

	normalized := normalizeEmail(email)
	if err := uc.userRepo.ConsumeResetOTP(ctx, normalized, uc.hasher.HashString(otp), hashedPassword, uc.now()); err != nil {
		return err
	}

	uc.hooks.done(ctx, "Password Reset", fmt.Sprintf("password reset for %s", normalized))
	return nil
}
