package usecasecontract

import "time"

// IAppLogger is the leveled logger used by usecases.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes application settings.
type IConfigProvider interface {
	GetMongoURI() string
	GetMongoDBName() string
	GetServerPort() string
	GetJWTSecret() string
	GetAccessTokenExpiry() time.Duration
	GetPasswordResetOTPExpiry() time.Duration
	GetEmailHost() string
	GetEmailPort() int
	GetEmailUsername() string
	GetEmailAppPassword() string
	GetEmailFrom() string
	GetAppName() string
	GetAppBaseURL() string
	GetRedisURL() string
	GetAnalyticsCacheTTL() time.Duration
	GetRateLimitPerSecond() float64
	GetLogLevel() string
	GetCORSAllowOrigins() []string
	GetAdminName() string
	GetAdminEmail() string
	GetAdminPassword() string
}

type IValidator interface {
	ValidateEmail(email string) error
	ValidatePassword(password string) error
	// ValidateEntity enforces the struct's validate tags and returns *entity.ValidationError.
	ValidateEntity(v interface{}) error
}
