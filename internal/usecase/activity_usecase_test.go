package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

func setupActivityUseCase() (*ActivityUseCase, *MockActivityLogRepo, *MockNewsRepo, *MockUserRepo, *MockModerationRepo) {
	logs := new(MockActivityLogRepo)
	news := new(MockNewsRepo)
	users := new(MockUserRepo)
	reports := new(MockModerationRepo)
	return NewActivityUseCase(logs, news, users, reports, fixedUUID{id: "log-1"}, nopLogger{}), logs, news, users, reports
}

func TestActivityUseCase_Record(t *testing.T) {
	t.Run("attributes the session user", func(t *testing.T) {
		uc, logs, _, _, _ := setupActivityUseCase()
		ctx := adminCtx()
		logs.On("AppendLog", ctx, mock.MatchedBy(func(l *entity.ActivityLog) bool {
			return l.User == "Root Admin" && l.Action == "News Published" && !l.Timestamp.IsZero()
		})).Return(nil)

		uc.Record(ctx, "News Published", "Flood set to Published")
		logs.AssertExpectations(t)
	})

	t.Run("falls back to system", func(t *testing.T) {
		uc, logs, _, _, _ := setupActivityUseCase()
		ctx := context.Background()
		logs.On("AppendLog", ctx, mock.MatchedBy(func(l *entity.ActivityLog) bool {
			return l.User == entity.SystemActor
		})).Return(nil)

		uc.Record(ctx, "Password Reset", "")
		logs.AssertExpectations(t)
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		uc, logs, _, _, _ := setupActivityUseCase()
		logs.On("AppendLog", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		assert.NotPanics(t, func() { uc.Record(context.Background(), "News Created", "x") })
	})
}

func TestActivityUseCase_GetLogs(t *testing.T) {
	uc, logs, _, _, _ := setupActivityUseCase()
	ctx := context.Background()
	logs.On("GetRecentLogs", ctx, int64(50)).Return([]*entity.ActivityLog{{ID: "l1"}}, nil)

	got, err := uc.GetLogs(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestActivityUseCase_GetDashboardStats(t *testing.T) {
	uc, _, news, users, reports := setupActivityUseCase()
	ctx := context.Background()
	news.On("CountNews", ctx).Return(int64(10), nil)
	news.On("CountNewsByStatus", ctx, entity.NewsStatusPending).Return(int64(3), nil)
	news.On("CountNewsByStatus", ctx, entity.NewsStatusPublished).Return(int64(6), nil)
	reports.On("CountReportsByStatus", ctx, entity.ReportStatusPending).Return(int64(2), nil)
	users.On("CountUsers", ctx).Return(int64(8), nil)
	users.On("CountUsersByRole", ctx, entity.UserRoleReporter).Return(int64(2), nil)
	news.On("GetNewsByStatus", ctx, entity.NewsStatusPending, int64(5)).Return([]*entity.News{{ID: "n1"}, {ID: "n2"}}, nil)

	stats, err := uc.GetDashboardStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.Stats, 6)

	labels := make([]string, 0, len(stats.Stats))
	for _, s := range stats.Stats {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"Total News", "Pending News", "Published News", "Reported News", "Total Users", "Reporters"}, labels)
	assert.Equal(t, int64(3), stats.Stats[1].Value)
	assert.Equal(t, "Newspaper", stats.Stats[0].Icon)
	assert.Len(t, stats.PendingNews, 2)
}
