package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

// IActivityRecorder appends audit entries. Failures are never returned to the caller.
type IActivityRecorder interface {
	Record(ctx context.Context, action, details string)
}

type IActivityUseCase interface {
	IActivityRecorder
	GetLogs(ctx context.Context) ([]*entity.ActivityLog, error)
	GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error)
}

type IAnalyticsUseCase interface {
	GetDashboard(ctx context.Context) (*entity.DashboardCharts, error)
	GetReports(ctx context.Context) (*entity.ReportCharts, error)
	GetStatusBreakdown(ctx context.Context) (*entity.StatusBreakdown, error)
	// Invalidate discards cached results after a write.
	Invalidate(ctx context.Context)
}
