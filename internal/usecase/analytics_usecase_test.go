package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

type analyticsFixture struct {
	uc        *AnalyticsUseCase
	news      *MockNewsRepo
	community *MockCommunityRepo
	posts     *MockPostRepo
	events    *MockEventRepo
	reports   *MockModerationRepo
}

func setupAnalyticsUseCase() *analyticsFixture {
	f := &analyticsFixture{
		news:      new(MockNewsRepo),
		community: new(MockCommunityRepo),
		posts:     new(MockPostRepo),
		events:    new(MockEventRepo),
		reports:   new(MockModerationRepo),
	}
	f.uc = NewAnalyticsUseCase(f.news, f.community, f.posts, f.events, f.reports, nopLogger{})
	return f
}

func TestAnalyticsUseCase_EmptyStoreYieldsPlaceholders(t *testing.T) {
	ctx := context.Background()
	f := setupAnalyticsUseCase()
	f.news.On("CountByDay", ctx).Return([]entity.WavePoint{}, nil)
	f.news.On("CountByCategory", ctx).Return([]entity.PiePoint{}, nil)
	f.news.On("CountGroupedByStatus", ctx).Return([]entity.PiePoint{}, nil)
	f.community.On("Engagement", ctx).Return([]entity.DotPoint{}, nil)
	f.community.On("CountGroupedByStatus", ctx).Return([]entity.PiePoint{}, nil)
	f.posts.On("EngagementByDay", ctx).Return([]entity.EngagementPoint{}, nil)
	f.events.On("CountGroupedByStatus", ctx).Return([]entity.PiePoint{}, nil)
	f.reports.On("CountGroupedByStatus", ctx).Return([]entity.PiePoint{}, nil)

	dashboard, err := f.uc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.WavePoint{{Name: "Today", Val: 0}}, dashboard.Wave)
	assert.Equal(t, []entity.BarPoint{{Name: "None", Val: 0}}, dashboard.Bar)
	assert.Equal(t, []entity.PiePoint{{Name: "None", Value: 0}}, dashboard.Pie)
	assert.Equal(t, []entity.DotPoint{{X: 0, Y: 0}}, dashboard.Dot)

	reports, err := f.uc.GetReports(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.EngagementPoint{{Name: "Empty"}}, reports.EngagementTrends)
	assert.Equal(t, entity.PlaceholderPie(), reports.CategoryDistribution)

	breakdown, err := f.uc.GetStatusBreakdown(ctx)
	require.NoError(t, err)
	for _, series := range [][]entity.PiePoint{breakdown.News, breakdown.Communities, breakdown.Events, breakdown.Reports} {
		assert.Equal(t, entity.PlaceholderPie(), series)
	}
}

func TestAnalyticsUseCase_Dashboard(t *testing.T) {
	ctx := context.Background()
	f := setupAnalyticsUseCase()
	f.news.On("CountByDay", ctx).Return([]entity.WavePoint{{Name: "2026-10-01", Val: 2}, {Name: "2026-10-02", Val: 1}}, nil)
	f.news.On("CountByCategory", ctx).Return([]entity.PiePoint{{Name: "Local", Value: 2}, {Name: "Sports", Value: 1}}, nil)
	f.community.On("Engagement", ctx).Return([]entity.DotPoint{{ID: "c1", X: 3, Y: 3}}, nil)

	dashboard, err := f.uc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Len(t, dashboard.Wave, 2)
	assert.Equal(t, []entity.BarPoint{{Name: "Local", Val: 2}, {Name: "Sports", Val: 1}}, dashboard.Bar)
	assert.Equal(t, dashboard.Pie[0].Value, dashboard.Bar[0].Val)
	assert.Equal(t, int64(3), dashboard.Dot[0].X)
}

func TestAnalyticsUseCase_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("hit skips the store", func(t *testing.T) {
		f := setupAnalyticsUseCase()
		cache := new(MockAnalyticsCache)
		f.uc.SetCache(cache)
		cached := &entity.DashboardCharts{Wave: entity.PlaceholderWave()}
		cache.On("Generation", ctx).Return(int64(3), nil)
		cache.On("GetDashboard", ctx, int64(3)).Return(cached, true, nil)

		dashboard, err := f.uc.GetDashboard(ctx)
		require.NoError(t, err)
		assert.Same(t, cached, dashboard)
		f.news.AssertNotCalled(t, "CountByDay", mock.Anything)
	})

	t.Run("miss computes and stores", func(t *testing.T) {
		f := setupAnalyticsUseCase()
		cache := new(MockAnalyticsCache)
		f.uc.SetCache(cache)
		cache.On("Generation", ctx).Return(int64(0), nil)
		cache.On("GetReports", ctx, int64(0)).Return(nil, false, nil)
		cache.On("SetReports", ctx, int64(0), mock.Anything).Return(nil)
		f.posts.On("EngagementByDay", ctx).Return([]entity.EngagementPoint{{Name: "10-01", Posts: 2, Likes: 9}}, nil)
		f.news.On("CountByCategory", ctx).Return([]entity.PiePoint{{Name: "Local", Value: 1}}, nil)

		reports, err := f.uc.GetReports(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(9), reports.EngagementTrends[0].Likes)
		cache.AssertCalled(t, "SetReports", ctx, int64(0), reports)
	})

	t.Run("broken cache falls through", func(t *testing.T) {
		f := setupAnalyticsUseCase()
		cache := new(MockAnalyticsCache)
		f.uc.SetCache(cache)
		cache.On("Generation", ctx).Return(int64(1), nil)
		cache.On("GetStatusBreakdown", ctx, int64(1)).Return(nil, false, errors.New("connection refused"))
		cache.On("SetStatusBreakdown", ctx, int64(1), mock.Anything).Return(errors.New("connection refused"))
		f.news.On("CountGroupedByStatus", ctx).Return([]entity.PiePoint{{Name: "Pending", Value: 4}}, nil)
		f.community.On("CountGroupedByStatus", ctx).Return([]entity.PiePoint{}, nil)
		f.events.On("CountGroupedByStatus", ctx).Return([]entity.PiePoint{}, nil)
		f.reports.On("CountGroupedByStatus", ctx).Return([]entity.PiePoint{}, nil)

		breakdown, err := f.uc.GetStatusBreakdown(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), breakdown.News[0].Value)
	})

	t.Run("unreachable cache computes without storing", func(t *testing.T) {
		f := setupAnalyticsUseCase()
		cache := new(MockAnalyticsCache)
		f.uc.SetCache(cache)
		cache.On("Generation", ctx).Return(int64(0), errors.New("connection refused"))
		f.posts.On("EngagementByDay", ctx).Return([]entity.EngagementPoint{}, nil)
		f.news.On("CountByCategory", ctx).Return([]entity.PiePoint{}, nil)

		_, err := f.uc.GetReports(ctx)
		require.NoError(t, err)
		cache.AssertNotCalled(t, "SetReports", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalidate", func(t *testing.T) {
		f := setupAnalyticsUseCase()
		f.uc.Invalidate(ctx)

		cache := new(MockAnalyticsCache)
		cache.On("Invalidate", ctx).Return(nil)
		f.uc.SetCache(cache)
		f.uc.Invalidate(ctx)
		cache.AssertNumberOfCalls(t, "Invalidate", 1)

		var nilUC *AnalyticsUseCase
		assert.NotPanics(t, func() { nilUC.Invalidate(ctx) })
	})
}

func TestAnalyticsUseCase_StoreErrorPropagates(t *testing.T) {
	ctx := context.Background()
	f := setupAnalyticsUseCase()
	f.news.On("CountByDay", ctx).Return([]entity.WavePoint(nil), errors.New("timeout"))

	_, err := f.uc.GetDashboard(ctx)
	assert.Error(t, err)
}

// genCache is an in-memory cache with the same generation semantics as the redis store.
type genCache struct {
	contract.IAnalyticsCache
	gen       int64
	dashboard map[int64]*entity.DashboardCharts
}

func (c *genCache) Generation(context.Context) (int64, error) { return c.gen, nil }

func (c *genCache) GetDashboard(_ context.Context, gen int64) (*entity.DashboardCharts, bool, error) {
	charts, ok := c.dashboard[gen]
	return charts, ok, nil
}

func (c *genCache) SetDashboard(_ context.Context, gen int64, charts *entity.DashboardCharts) error {
	c.dashboard[gen] = charts
	return nil
}

func (c *genCache) Invalidate(context.Context) error {
	c.gen++
	return nil
}

func TestAnalyticsUseCase_WriteDuringComputeIsNotMasked(t *testing.T) {
	ctx := context.Background()
	f := setupAnalyticsUseCase()
	cache := &genCache{dashboard: map[int64]*entity.DashboardCharts{}}
	f.uc.SetCache(cache)

	// A news write lands while the first read is still aggregating.
	f.news.On("CountByDay", ctx).Run(func(mock.Arguments) { f.uc.Invalidate(ctx) }).
		Return([]entity.WavePoint{{Name: "2026-10-01", Val: 1}}, nil).Once()
	f.news.On("CountByDay", ctx).Return([]entity.WavePoint{{Name: "2026-10-01", Val: 2}}, nil).Once()
	f.news.On("CountByCategory", ctx).Return([]entity.PiePoint{}, nil)
	f.community.On("Engagement", ctx).Return([]entity.DotPoint{}, nil)

	stale, err := f.uc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stale.Wave[0].Val)

	fresh, err := f.uc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fresh.Wave[0].Val)
	f.news.AssertNumberOfCalls(t, "CountByDay", 2)

	cached, err := f.uc.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Same(t, fresh, cached)
}
