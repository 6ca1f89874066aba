package usecase

import (
	"context"
	"time"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

const (
	recentLogsLimit  = 50
	pendingNewsLimit = 5
)

// ActivityUseCase writes the audit trail and serves the overview counters.
type ActivityUseCase struct {
	logRepo       contract.IActivityLogRepository
	newsRepo      contract.INewsRepository
	userRepo      contract.IUserRepository
	reportRepo    contract.IModerationRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	now           func() time.Time
}

func NewActivityUseCase(
	logRepo contract.IActivityLogRepository,
	newsRepo contract.INewsRepository,
	userRepo contract.IUserRepository,
	reportRepo contract.IModerationRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *ActivityUseCase {
	return &ActivityUseCase{
		logRepo:       logRepo,
		newsRepo:      newsRepo,
		userRepo:      userRepo,
		reportRepo:    reportRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
		now:           time.Now,
	}
}

var _ usecasecontract.IActivityUseCase = (*ActivityUseCase)(nil)

// Record appends an entry attributed to the session user. Write failures are logged and dropped.
func (uc *ActivityUseCase) Record(ctx context.Context, action, details string) {
	log := &entity.ActivityLog{
		ID:        uc.uuidGenerator.NewUUID(),
		Action:    action,
		User:      entity.ActorFromContext(ctx),
		Details:   details,
		Timestamp: uc.now(),
	}
	if err := uc.logRepo.AppendLog(ctx, log); err != nil {
		uc.logger.Warnf("activity log dropped (%s): %v", action, err)
	}
}

func (uc *ActivityUseCase) GetLogs(ctx context.Context) ([]*entity.ActivityLog, error) {
	return uc.logRepo.GetRecentLogs(ctx, recentLogsLimit)
}

func (uc *ActivityUseCase) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	totalNews, err := uc.newsRepo.CountNews(ctx)
	if err != nil {
		return nil, err
	}
	pendingNews, err := uc.newsRepo.CountNewsByStatus(ctx, entity.NewsStatusPending)
	if err != nil {
		return nil, err
	}
	publishedNews, err := uc.newsRepo.CountNewsByStatus(ctx, entity.NewsStatusPublished)
	if err != nil {
		return nil, err
	}
	reportedNews, err := uc.reportRepo.CountReportsByStatus(ctx, entity.ReportStatusPending)
	if err != nil {
		return nil, err
	}
	totalUsers, err := uc.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	reporters, err := uc.userRepo.CountUsersByRole(ctx, entity.UserRoleReporter)
	if err != nil {
		return nil, err
	}
	pending, err := uc.newsRepo.GetNewsByStatus(ctx, entity.NewsStatusPending, pendingNewsLimit)
	if err != nil {
		return nil, err
	}

	pendingList := make([]entity.News, 0, len(pending))
	for _, n := range pending {
		pendingList = append(pendingList, *n)
	}

	return &entity.DashboardStats{
		Stats: []entity.DashboardStat{
			{Label: "Total News", Value: totalNews, Change: "+0%", Icon: "Newspaper"},
			{Label: "Pending News", Value: pendingNews, Change: "+0", Icon: "Clock"},
			{Label: "Published News", Value: publishedNews, Change: "+0", Icon: "CheckCircle2"},
			{Label: "Reported News", Value: reportedNews, Change: "+0", Icon: "AlertCircle"},
			{Label: "Total Users", Value: totalUsers, Change: "+0%", Icon: "Users"},
			{Label: "Reporters", Value: reporters, Change: "+0", Icon: "UserCheck"},
		},
		PendingNews: pendingList,
	}, nil
}
