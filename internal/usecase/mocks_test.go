package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}
func (m *MockUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}
func (m *MockUserRepo) GetUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.User), args.Error(1)
}
func (m *MockUserRepo) GetUsersByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]*entity.User), args.Error(1)
}
func (m *MockUserRepo) UpdateUserStatus(ctx context.Context, id string, status entity.UserStatus) (*entity.User, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}
func (m *MockUserRepo) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUserRepo) SetResetOTP(ctx context.Context, id, otpHash string, expiresAt time.Time) error {
	return m.Called(ctx, id, otpHash, expiresAt).Error(0)
}
func (m *MockUserRepo) ClearResetOTP(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUserRepo) FindByValidOTP(ctx context.Context, email, otpHash string, now time.Time) (*entity.User, error) {
	args := m.Called(ctx, email, otpHash, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}
func (m *MockUserRepo) ConsumeResetOTP(ctx context.Context, email, otpHash, hashedPassword string, now time.Time) error {
	return m.Called(ctx, email, otpHash, hashedPassword, now).Error(0)
}
func (m *MockUserRepo) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserRepo) CountUsersByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

// MockNewsRepo
type MockNewsRepo struct {
	mock.Mock
}

func (m *MockNewsRepo) CreateNews(ctx context.Context, news *entity.News) error {
	return m.Called(ctx, news).Error(0)
}
func (m *MockNewsRepo) GetNewsByID(ctx context.Context, id string) (*entity.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.News), args.Error(1)
}
func (m *MockNewsRepo) GetNews(ctx context.Context) ([]*entity.News, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.News), args.Error(1)
}
func (m *MockNewsRepo) GetNewsByStatus(ctx context.Context, status entity.NewsStatus, limit int64) ([]*entity.News, error) {
	args := m.Called(ctx, status, limit)
	return args.Get(0).([]*entity.News), args.Error(1)
}
func (m *MockNewsRepo) UpdateNewsStatus(ctx context.Context, id string, status entity.NewsStatus) (*entity.News, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.News), args.Error(1)
}
func (m *MockNewsRepo) DeleteNews(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockNewsRepo) CountNews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockNewsRepo) CountNewsByStatus(ctx context.Context, status entity.NewsStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockNewsRepo) CountByCategory(ctx context.Context) ([]entity.PiePoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.PiePoint), args.Error(1)
}
func (m *MockNewsRepo) CountByDay(ctx context.Context) ([]entity.WavePoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.WavePoint), args.Error(1)
}
func (m *MockNewsRepo) CountGroupedByStatus(ctx context.Context) ([]entity.PiePoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.PiePoint), args.Error(1)
}

// MockCommunityRepo
type MockCommunityRepo struct {
	mock.Mock
}

func (m *MockCommunityRepo) CreateCommunity(ctx context.Context, community *entity.Community) error {
	return m.Called(ctx, community).Error(0)
}
func (m *MockCommunityRepo) GetCommunityByID(ctx context.Context, id string) (*entity.Community, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Community), args.Error(1)
}
func (m *MockCommunityRepo) GetCommunities(ctx context.Context) ([]*entity.CommunityWithMembers, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.CommunityWithMembers), args.Error(1)
}
func (m *MockCommunityRepo) UpdateCommunityStatus(ctx context.Context, id string, status entity.CommunityStatus) (*entity.Community, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Community), args.Error(1)
}
func (m *MockCommunityRepo) DeleteCommunity(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCommunityRepo) AddMember(ctx context.Context, id, userID string) (*entity.Community, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Community), args.Error(1)
}
func (m *MockCommunityRepo) RemoveMember(ctx context.Context, id, userID string) (*entity.Community, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Community), args.Error(1)
}
func (m *MockCommunityRepo) Engagement(ctx context.Context) ([]entity.DotPoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.DotPoint), args.Error(1)
}
func (m *MockCommunityRepo) CountGroupedByStatus(ctx context.Context) ([]entity.PiePoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.PiePoint), args.Error(1)
}

// MockPostRepo
type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) CreatePost(ctx context.Context, post *entity.Post) error {
	return m.Called(ctx, post).Error(0)
}
func (m *MockPostRepo) GetPosts(ctx context.Context) ([]*entity.Post, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Post), args.Error(1)
}
func (m *MockPostRepo) EngagementByDay(ctx context.Context) ([]entity.EngagementPoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.EngagementPoint), args.Error(1)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) CreateEvent(ctx context.Context, event *entity.Event) error {
	return m.Called(ctx, event).Error(0)
}
func (m *MockEventRepo) GetEvents(ctx context.Context, eventType *entity.EventType) ([]*entity.Event, error) {
	args := m.Called(ctx, eventType)
	return args.Get(0).([]*entity.Event), args.Error(1)
}
func (m *MockEventRepo) UpdateEventStatus(ctx context.Context, id string, status entity.EventStatus) (*entity.Event, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Event), args.Error(1)
}
func (m *MockEventRepo) CountGroupedByStatus(ctx context.Context) ([]entity.PiePoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.PiePoint), args.Error(1)
}

// MockModerationRepo
type MockModerationRepo struct {
	mock.Mock
}

func (m *MockModerationRepo) CreateReport(ctx context.Context, report *entity.ModerationReport) error {
	return m.Called(ctx, report).Error(0)
}
func (m *MockModerationRepo) GetReports(ctx context.Context) ([]*entity.ModerationReport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.ModerationReport), args.Error(1)
}
func (m *MockModerationRepo) UpdateReportStatus(ctx context.Context, id string, status entity.ReportStatus) (*entity.ModerationReport, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ModerationReport), args.Error(1)
}
func (m *MockModerationRepo) CountReportsByStatus(ctx context.Context, status entity.ReportStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockModerationRepo) CountGroupedByStatus(ctx context.Context) ([]entity.PiePoint, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.PiePoint), args.Error(1)
}

// MockActivityLogRepo
type MockActivityLogRepo struct {
	mock.Mock
}

func (m *MockActivityLogRepo) AppendLog(ctx context.Context, log *entity.ActivityLog) error {
	return m.Called(ctx, log).Error(0)
}
func (m *MockActivityLogRepo) GetRecentLogs(ctx context.Context, limit int64) ([]*entity.ActivityLog, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*entity.ActivityLog), args.Error(1)
}

// MockAnalyticsCache
type MockAnalyticsCache struct {
	mock.Mock
}

func (m *MockAnalyticsCache) Generation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAnalyticsCache) GetDashboard(ctx context.Context, gen int64) (*entity.DashboardCharts, bool, error) {
	args := m.Called(ctx, gen)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.DashboardCharts), args.Bool(1), args.Error(2)
}
func (m *MockAnalyticsCache) SetDashboard(ctx context.Context, gen int64, charts *entity.DashboardCharts) error {
	return m.Called(ctx, gen, charts).Error(0)
}
func (m *MockAnalyticsCache) GetReports(ctx context.Context, gen int64) (*entity.ReportCharts, bool, error) {
	args := m.Called(ctx, gen)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.ReportCharts), args.Bool(1), args.Error(2)
}
func (m *MockAnalyticsCache) SetReports(ctx context.Context, gen int64, charts *entity.ReportCharts) error {
	return m.Called(ctx, gen, charts).Error(0)
}
func (m *MockAnalyticsCache) GetStatusBreakdown(ctx context.Context, gen int64) (*entity.StatusBreakdown, bool, error) {
	args := m.Called(ctx, gen)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.StatusBreakdown), args.Bool(1), args.Error(2)
}
func (m *MockAnalyticsCache) SetStatusBreakdown(ctx context.Context, gen int64, breakdown *entity.StatusBreakdown) error {
	return m.Called(ctx, gen, breakdown).Error(0)
}
func (m *MockAnalyticsCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	return m.Called(ctx, to, subject, htmlBody).Error(0)
}

// MockJWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}
func (m *MockJWTService) ParseAccessToken(token string) (*entity.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Claims), args.Error(1)
}

// recorder collects activity entries in memory.
type recorder struct {
	actions []string
	actors  []string
}

func (r *recorder) Record(ctx context.Context, action, details string) {
	r.actions = append(r.actions, action)
	r.actors = append(r.actors, entity.ActorFromContext(ctx))
}

type invalidationCounter struct{ calls int }

func (c *invalidationCounter) Invalidate(context.Context) { c.calls++ }

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warnf(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}
func (nopLogger) Fatalf(string, ...interface{})   {}

// otpConfig only answers the reset code lifetime.
type otpConfig struct {
	usecasecontract.IConfigProvider
	ttl time.Duration
}

func (c otpConfig) GetPasswordResetOTPExpiry() time.Duration { return c.ttl }

type fixedUUID struct{ id string }

func (f fixedUUID) NewUUID() string { return f.id }

type fixedDigits struct{ code string }

func (f fixedDigits) GenerateDigits(int) (string, error) { return f.code, nil }

type stubTemplates struct{ err error }

func (s stubTemplates) PasswordResetOTP(fullName, otp string, expiryMinutes int) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "<p>" + otp + "</p>", nil
}

func adminCtx() context.Context {
	return entity.WithSession(context.Background(), entity.Session{UserID: "admin-1", Role: entity.UserRoleAdmin, FullName: "Root Admin"})
}
