package contract

import (
	"context"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

// IAnalyticsCache caches computed chart payloads per generation.
type IAnalyticsCache interface {
	// Generation returns the current cache generation. Payloads are read and
	// written under an explicit generation.
	Generation(ctx context.Context) (int64, error)

	GetDashboard(ctx context.Context, gen int64) (*entity.DashboardCharts, bool, error)
	SetDashboard(ctx context.Context, gen int64, charts *entity.DashboardCharts) error

	GetReports(ctx context.Context, gen int64) (*entity.ReportCharts, bool, error)
	SetReports(ctx context.Context, gen int64, charts *entity.ReportCharts) error

	GetStatusBreakdown(ctx context.Context, gen int64) (*entity.StatusBreakdown, bool, error)
	SetStatusBreakdown(ctx context.Context, gen int64, breakdown *entity.StatusBreakdown) error

	// Invalidate starts a new generation, orphaning every cached payload.
	Invalidate(ctx context.Context) error
}
