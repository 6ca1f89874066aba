package contract

import (
	"context"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

type IModerationRepository interface {
	CreateReport(ctx context.Context, report *entity.ModerationReport) error
	GetReports(ctx context.Context) ([]*entity.ModerationReport, error)
	UpdateReportStatus(ctx context.Context, id string, status entity.ReportStatus) (*entity.ModerationReport, error)
	CountReportsByStatus(ctx context.Context, status entity.ReportStatus) (int64, error)
	CountGroupedByStatus(ctx context.Context) ([]entity.PiePoint, error)
}

type IActivityLogRepository interface {
	AppendLog(ctx context.Context, log *entity.ActivityLog) error
	// GetRecentLogs returns at most limit entries, newest first.
	GetRecentLogs(ctx context.Context, limit int64) ([]*entity.ActivityLog, error)
}
