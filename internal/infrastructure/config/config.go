package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	MongoURI               string
	MongoDBName            string
	ServerPort             string
	JWTSecret              string
	AccessTokenExpiry      time.Duration
	PasswordResetOTPExpiry time.Duration
	EmailHost              string
	EmailPort              int
	EmailUsername          string
	EmailAppPassword       string
	EmailFrom              string
	AppName                string
	AppBaseURL             string
	RedisURL               string
	AnalyticsCacheTTL      time.Duration
	RateLimitPerSecond     float64
	LogLevel               string
	CORSAllowOrigins       []string
	AdminName              string
	AdminEmail             string
	AdminPassword          string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		MongoURI:               getEnv("MONGODB_URI", ""),
		MongoDBName:            getEnv("MONGODB_DB_NAME", "news_portal"),
		ServerPort:             getEnv("PORT", "5000"),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		AccessTokenExpiry:      time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 60)),
		PasswordResetOTPExpiry: time.Minute * time.Duration(getEnvAsInt("PASSWORD_RESET_OTP_EXPIRY_MINUTES", 10)),
		EmailHost:              getEnv("EMAIL_HOST", ""),
		EmailPort:              getEnvAsInt("EMAIL_PORT", 587),
		EmailUsername:          getEnv("EMAIL_USERNAME", ""),
		EmailAppPassword:       getEnv("EMAIL_APP_PASSWORD", ""),
		EmailFrom:              getEnv("EMAIL_FROM", ""),
		AppName:                getEnv("APP_NAME", "News Portal"),
		AppBaseURL:             getEnv("APP_BASE_URL", "http://localhost:5173"),
		RedisURL:               getEnv("REDIS_URL", ""),
		AnalyticsCacheTTL:      time.Second * time.Duration(getEnvAsInt("ANALYTICS_CACHE_TTL_SECONDS", 60)),
		RateLimitPerSecond:     getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		LogLevel:               getEnv("LOG_LEVEL", "INFO"),
		CORSAllowOrigins:       getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
		AdminName:              getEnv("ADMIN_NAME", "Admin"),
		AdminEmail:             getEnv("ADMIN_EMAIL", ""),
		AdminPassword:          getEnv("ADMIN_PASSWORD", ""),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

func (c *Config) GetMongoURI() string    { return c.MongoURI }
func (c *Config) GetMongoDBName() string { return c.MongoDBName }
func (c *Config) GetServerPort() string  { return c.ServerPort }
func (c *Config) GetJWTSecret() string   { return c.JWTSecret }

// GetAccessTokenExpiry returns the lifetime of issued access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetPasswordResetOTPExpiry returns how long a reset code stays valid.
func (c *Config) GetPasswordResetOTPExpiry() time.Duration {
	return c.PasswordResetOTPExpiry
}

func (c *Config) GetEmailHost() string        { return c.EmailHost }
func (c *Config) GetEmailPort() int           { return c.EmailPort }
func (c *Config) GetEmailUsername() string    { return c.EmailUsername }
func (c *Config) GetEmailAppPassword() string { return c.EmailAppPassword }

// GetEmailFrom returns the sender address, falling back to the SMTP username.
func (c *Config) GetEmailFrom() string {
	if c.EmailFrom == "" {
		return c.EmailUsername
	}
	return c.EmailFrom
}

func (c *Config) GetAppName() string    { return c.AppName }
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }

// GetRedisURL returns the redis connection url. Empty disables the analytics cache.
func (c *Config) GetRedisURL() string { return c.RedisURL }

func (c *Config) GetAnalyticsCacheTTL() time.Duration { return c.AnalyticsCacheTTL }
func (c *Config) GetRateLimitPerSecond() float64      { return c.RateLimitPerSecond }
func (c *Config) GetLogLevel() string                 { return c.LogLevel }
func (c *Config) GetCORSAllowOrigins() []string       { return c.CORSAllowOrigins }

// Bootstrap admin account, created by the seed and create-admin commands.
func (c *Config) GetAdminName() string     { return c.AdminName }
func (c *Config) GetAdminEmail() string    { return c.AdminEmail }
func (c *Config) GetAdminPassword() string { return c.AdminPassword }

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil && value > 0 {
		return value
	}
	return fallback
}

// comma separated
func getEnvAsList(name string, fallback []string) []string {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
