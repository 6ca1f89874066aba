package usecase

import (
	"context"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// AnalyticsUseCase computes chart series. Every series it returns has at least one point.
type AnalyticsUseCase struct {
	newsRepo      contract.INewsRepository
	communityRepo contract.ICommunityRepository
	postRepo      contract.IPostRepository
	eventRepo     contract.IEventRepository
	reportRepo    contract.IModerationRepository
	logger        usecasecontract.IAppLogger
	cache         contract.IAnalyticsCache
}

func NewAnalyticsUseCase(
	newsRepo contract.INewsRepository,
	communityRepo contract.ICommunityRepository,
	postRepo contract.IPostRepository,
	eventRepo contract.IEventRepository,
	reportRepo contract.IModerationRepository,
	logger usecasecontract.IAppLogger,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		newsRepo:      newsRepo,
		communityRepo: communityRepo,
		postRepo:      postRepo,
		eventRepo:     eventRepo,
		reportRepo:    reportRepo,
		logger:        logger,
	}
}

var _ usecasecontract.IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

// SetCache enables caching of computed payloads.
func (uc *AnalyticsUseCase) SetCache(cache contract.IAnalyticsCache) {
	uc.cache = cache
}

func (uc *AnalyticsUseCase) GetDashboard(ctx context.Context) (*entity.DashboardCharts, error) {
	if uc.cache == nil {
		return uc.computeDashboard(ctx)
	}
	return cachedPayload(ctx, uc.cache, uc.logger, "dashboard", uc.cache.GetDashboard, uc.cache.SetDashboard, uc.computeDashboard)
}

func (uc *AnalyticsUseCase) GetReports(ctx context.Context) (*entity.ReportCharts, error) {
	if uc.cache == nil {
		return uc.computeReports(ctx)
	}
	return cachedPayload(ctx, uc.cache, uc.logger, "reports", uc.cache.GetReports, uc.cache.SetReports, uc.computeReports)
}

func (uc *AnalyticsUseCase) GetStatusBreakdown(ctx context.Context) (*entity.StatusBreakdown, error) {
	if uc.cache == nil {
		return uc.computeStatusBreakdown(ctx)
	}
	return cachedPayload(ctx, uc.cache, uc.logger, "status", uc.cache.GetStatusBreakdown, uc.cache.SetStatusBreakdown, uc.computeStatusBreakdown)
}

// cachedPayload reads and fills the cache generation that was current when the call
// started. A write that invalidates mid-computation bumps the generation, so the late
// fill lands under a key no reader asks for.
func cachedPayload[T any](
	ctx context.Context,
	cache contract.IAnalyticsCache,
	logger usecasecontract.IAppLogger,
	name string,
	get func(context.Context, int64) (*T, bool, error),
	set func(context.Context, int64, *T) error,
	compute func(context.Context) (*T, error),
) (*T, error) {
	gen, err := cache.Generation(ctx)
	if err != nil {
		logger.Warnf("%s cache read failed: %v", name, err)
		return compute(ctx)
	}
	if v, ok, err := get(ctx, gen); err != nil {
		logger.Warnf("%s cache read failed: %v", name, err)
	} else if ok {
		return v, nil
	}

	v, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	if err := set(ctx, gen, v); err != nil {
		logger.Warnf("%s cache write failed: %v", name, err)
	}
	return v, nil
}

func (uc *AnalyticsUseCase) computeDashboard(ctx context.Context) (*entity.DashboardCharts, error) {
	wave, err := uc.newsRepo.CountByDay(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.newsRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	dot, err := uc.communityRepo.Engagement(ctx)
	if err != nil {
		return nil, err
	}

	bar := make([]entity.BarPoint, 0, len(categories))
	for _, c := range categories {
		bar = append(bar, entity.BarPoint{Name: c.Name, Val: c.Value})
	}

	return &entity.DashboardCharts{
		Wave: orPlaceholder(wave, entity.PlaceholderWave),
		Bar:  orPlaceholder(bar, entity.PlaceholderBar),
		Pie:  orPlaceholder(categories, entity.PlaceholderPie),
		Dot:  orPlaceholder(dot, entity.PlaceholderDot),
	}, nil
}

func (uc *AnalyticsUseCase) computeReports(ctx context.Context) (*entity.ReportCharts, error) {
	trends, err := uc.postRepo.EngagementByDay(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.newsRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	return &entity.ReportCharts{
		EngagementTrends:     orPlaceholder(trends, entity.PlaceholderEngagement),
		CategoryDistribution: orPlaceholder(categories, entity.PlaceholderPie),
	}, nil
}

func (uc *AnalyticsUseCase) computeStatusBreakdown(ctx context.Context) (*entity.StatusBreakdown, error) {
	news, err := uc.newsRepo.CountGroupedByStatus(ctx)
	if err != nil {
		return nil, err
	}
	communities, err := uc.communityRepo.CountGroupedByStatus(ctx)
	if err != nil {
		return nil, err
	}
	events, err := uc.eventRepo.CountGroupedByStatus(ctx)
	if err != nil {
		return nil, err
	}
	reports, err := uc.reportRepo.CountGroupedByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &entity.StatusBreakdown{
		News:        orPlaceholder(news, entity.PlaceholderPie),
		Communities: orPlaceholder(communities, entity.PlaceholderPie),
		Events:      orPlaceholder(events, entity.PlaceholderPie),
		Reports:     orPlaceholder(reports, entity.PlaceholderPie),
	}, nil
}

// Invalidate is safe to call without a cache.
func (uc *AnalyticsUseCase) Invalidate(ctx context.Context) {
	if uc == nil || uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warnf("analytics cache invalidation failed: %v", err)
	}
}

func orPlaceholder[T any](series []T, placeholder func() []T) []T {
	if len(series) == 0 {
		return placeholder()
	}
	return series
}
