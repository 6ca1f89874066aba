package usecase

import (
	"context"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateAccessToken(userID string, role entity.UserRole) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}

// cacheInvalidator drops derived read models after a write.
type cacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// writeHooks runs the side effects every successful mutation shares.
type writeHooks struct {
	activity  usecasecontract.IActivityRecorder
	analytics cacheInvalidator
}

func (h writeHooks) done(ctx context.Context, action, details string) {
	if h.analytics != nil {
		h.analytics.Invalidate(ctx)
	}
	if h.activity != nil {
		h.activity.Record(ctx, action, details)
	}
}
