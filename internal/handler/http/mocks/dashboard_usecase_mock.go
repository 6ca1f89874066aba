package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

type MockActivityUsecase struct {
	ShouldFailLogs bool
	Recorded       []string
}

var _ usecasecontract.IActivityUseCase = (*MockActivityUsecase)(nil)

func (m *MockActivityUsecase) Record(ctx context.Context, action, details string) {
	m.Recorded = append(m.Recorded, action)
}

func (m *MockActivityUsecase) GetLogs(ctx context.Context) ([]*entity.ActivityLog, error) {
	if m.ShouldFailLogs {
		return nil, errors.New("connection reset")
	}
	return []*entity.ActivityLog{{ID: "log-1", Action: "News Published", User: "Mock Admin"}}, nil
}

func (m *MockActivityUsecase) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	return &entity.DashboardStats{
		Stats:       []entity.DashboardStat{{Label: "Total News", Value: 0, Change: "+0%", Icon: "Newspaper"}},
		PendingNews: []entity.News{},
	}, nil
}

// MockAnalyticsUsecase answers every chart with its empty-store placeholder.
type MockAnalyticsUsecase struct {
	Invalidations int
}

var _ usecasecontract.IAnalyticsUseCase = (*MockAnalyticsUsecase)(nil)

func (m *MockAnalyticsUsecase) GetDashboard(ctx context.Context) (*entity.DashboardCharts, error) {
	return &entity.DashboardCharts{
		Wave: entity.PlaceholderWave(),
		Bar:  entity.PlaceholderBar(),
		Pie:  entity.PlaceholderPie(),
		Dot:  entity.PlaceholderDot(),
	}, nil
}

func (m *MockAnalyticsUsecase) GetReports(ctx context.Context) (*entity.ReportCharts, error) {
	return &entity.ReportCharts{
		EngagementTrends:     entity.PlaceholderEngagement(),
		CategoryDistribution: entity.PlaceholderPie(),
	}, nil
}

func (m *MockAnalyticsUsecase) GetStatusBreakdown(ctx context.Context) (*entity.StatusBreakdown, error) {
	return &entity.StatusBreakdown{
		News:        entity.PlaceholderPie(),
		Communities: entity.PlaceholderPie(),
		Events:      entity.PlaceholderPie(),
		Reports:     entity.PlaceholderPie(),
	}, nil
}

func (m *MockAnalyticsUsecase) Invalidate(ctx context.Context) {
	m.Invalidations++
}
