package contract

import "context"

// IHasher hashes passwords and one-time codes.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hash string) error
	// HashString is a fast deterministic digest used for lookups by hash.
	HashString(s string) string
}

type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

// IMailTemplates renders outgoing email bodies.
type IMailTemplates interface {
	PasswordResetOTP(fullName, otp string, expiryMinutes int) (string, error)
}

type IRandomGenerator interface {
	// GenerateDigits returns n uniformly random decimal digits.
	GenerateDigits(n int) (string, error)
}

type IUUIDGenerator interface {
	NewUUID() string
}
