package mocks

import (
	"context"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// MockNewsUsecase keeps created articles in memory.
type MockNewsUsecase struct {
	ShouldFailCreate bool
	ShouldFailGet    bool
	ShouldFailDelete bool

	News        map[string]*entity.News
	LastSession *entity.Session
}

var _ usecasecontract.INewsUseCase = (*MockNewsUsecase)(nil)

func NewMockNewsUsecase() *MockNewsUsecase {
	return &MockNewsUsecase{News: map[string]*entity.News{}}
}

func (m *MockNewsUsecase) CreateNews(ctx context.Context, in usecasecontract.CreateNewsInput) (*entity.News, error) {
	if s, ok := entity.SessionFromContext(ctx); ok {
		m.LastSession = &s
	}
	if m.ShouldFailCreate {
		return nil, entity.NewValidationError("category", "`"+in.Category+"` is not a valid enum value for path `category`.")
	}
	category := entity.NewsCategory(in.Category)
	if category == "" {
		category = entity.NewsCategoryLocal
	}
	n := &entity.News{
		ID:       "news-1",
		Title:    in.Title,
		Content:  in.Content,
		Author:   entity.DefaultNewsAuthor,
		Category: category,
		Status:   entity.NewsStatusPending,
	}
	m.News[n.ID] = n
	return n, nil
}

func (m *MockNewsUsecase) GetNews(ctx context.Context) ([]*entity.News, error) {
	out := make([]*entity.News, 0, len(m.News))
	for _, n := range m.News {
		out = append(out, n)
	}
	return out, nil
}

func (m *MockNewsUsecase) GetNewsByID(ctx context.Context, id string) (*entity.News, error) {
	n, ok := m.News[id]
	if !ok || m.ShouldFailGet {
		return nil, entity.ErrNotFound
	}
	return n, nil
}

func (m *MockNewsUsecase) UpdateNewsStatus(ctx context.Context, id, status string) (*entity.News, error) {
	target, err := entity.ParseNewsStatus(status)
	if err != nil {
		return nil, err
	}
	n, ok := m.News[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	updated := *n
	updated.Status = target
	m.News[id] = &updated
	return &updated, nil
}

func (m *MockNewsUsecase) DeleteNews(ctx context.Context, id string) error {
	if _, ok := m.News[id]; !ok || m.ShouldFailDelete {
		return entity.ErrNotFound
	}
	delete(m.News, id)
	return nil
}

type MockCommunityUsecase struct {
	ShouldFailCreate    bool
	ShouldFailAddMember bool

	Community entity.Community
	Posts     []*entity.Post
}

var _ usecasecontract.ICommunityUseCase = (*MockCommunityUsecase)(nil)

func NewMockCommunityUsecase() *MockCommunityUsecase {
	return &MockCommunityUsecase{
		Community: entity.Community{
			ID:           "community-1",
			Name:         "Tech Enthusiasts",
			Type:         entity.CommunityTypePublic,
			Status:       entity.CommunityStatusActive,
			Members:      []string{"u1"},
			MembersCount: 1,
		},
	}
}

func (m *MockCommunityUsecase) CreateCommunity(ctx context.Context, in usecasecontract.CreateCommunityInput) (*entity.Community, error) {
	if m.ShouldFailCreate {
		return nil, entity.ErrConflict
	}
	c := m.Community
	c.Name = in.Name
	c.Members = in.Members
	c.MembersCount = len(in.Members)
	return &c, nil
}

func (m *MockCommunityUsecase) GetCommunities(ctx context.Context) ([]*entity.CommunityWithMembers, error) {
	return []*entity.CommunityWithMembers{{
		Community:     m.Community,
		MemberDetails: []entity.MemberSummary{{ID: "u1", FullName: "Alice Johnson", Role: entity.UserRoleUser, Email: "alice@example.com"}},
	}}, nil
}

func (m *MockCommunityUsecase) UpdateCommunityStatus(ctx context.Context, id, status string) (*entity.Community, error) {
	target, err := entity.ParseCommunityStatus(status)
	if err != nil {
		return nil, err
	}
	if id != m.Community.ID {
		return nil, entity.ErrNotFound
	}
	c := m.Community
	c.Status = target
	return &c, nil
}

func (m *MockCommunityUsecase) DeleteCommunity(ctx context.Context, id string) error {
	if id != m.Community.ID {
		return entity.ErrNotFound
	}
	return nil
}

func (m *MockCommunityUsecase) AddMember(ctx context.Context, id, userID string) (*entity.Community, error) {
	if m.ShouldFailAddMember || id != m.Community.ID {
		return nil, entity.ErrNotFound
	}
	c := m.Community
	c.Members = append(append([]string{}, c.Members...), userID)
	c.MembersCount = len(c.Members)
	return &c, nil
}

func (m *MockCommunityUsecase) RemoveMember(ctx context.Context, id, userID string) (*entity.Community, error) {
	if id != m.Community.ID {
		return nil, entity.ErrNotFound
	}
	c := m.Community
	c.Members = []string{}
	c.MembersCount = 0
	return &c, nil
}

func (m *MockCommunityUsecase) CreatePost(ctx context.Context, in usecasecontract.CreatePostInput) (*entity.Post, error) {
	p := &entity.Post{ID: "post-1", Author: in.Author, AuthorName: in.AuthorName, Content: in.Content, Community: entity.DefaultPostCommunity, Type: entity.PostTypePublic}
	m.Posts = append(m.Posts, p)
	return p, nil
}

func (m *MockCommunityUsecase) GetPosts(ctx context.Context) ([]*entity.Post, error) {
	return m.Posts, nil
}

type MockEventUsecase struct {
	LastType string
	Events   []*entity.Event
}

var _ usecasecontract.IEventUseCase = (*MockEventUsecase)(nil)

func NewMockEventUsecase() *MockEventUsecase {
	return &MockEventUsecase{}
}

func (m *MockEventUsecase) CreateEvent(ctx context.Context, in usecasecontract.CreateEventInput) (*entity.Event, error) {
	eventType, err := entity.ParseEventType(in.Type)
	if err != nil {
		return nil, err
	}
	e := &entity.Event{ID: "event-1", Title: in.Title, Organizer: in.Organizer, Status: entity.EventStatusUpcoming, Type: eventType}
	m.Events = append(m.Events, e)
	return e, nil
}

func (m *MockEventUsecase) GetEvents(ctx context.Context, eventType string) ([]*entity.Event, error) {
	m.LastType = eventType
	return m.Events, nil
}

func (m *MockEventUsecase) UpdateEventStatus(ctx context.Context, id, status string) (*entity.Event, error) {
	target, err := entity.ParseEventStatus(status)
	if err != nil {
		return nil, err
	}
	for _, e := range m.Events {
		if e.ID == id {
			e.Status = target
			return e, nil
		}
	}
	return nil, entity.ErrNotFound
}

type MockModerationUsecase struct {
	Reports []*entity.ModerationReport
}

var _ usecasecontract.IModerationUseCase = (*MockModerationUsecase)(nil)

func NewMockModerationUsecase() *MockModerationUsecase {
	return &MockModerationUsecase{}
}

func (m *MockModerationUsecase) CreateReport(ctx context.Context, in usecasecontract.CreateReportInput) (*entity.ModerationReport, error) {
	r := &entity.ModerationReport{ID: "report-1", Type: in.Type, TargetContent: in.TargetContent, Reporter: entity.ActorFromContext(ctx), Status: entity.ReportStatusPending, Severity: entity.ReportSeverityLow}
	m.Reports = append(m.Reports, r)
	return r, nil
}

func (m *MockModerationUsecase) GetReports(ctx context.Context) ([]*entity.ModerationReport, error) {
	return m.Reports, nil
}

func (m *MockModerationUsecase) UpdateReportStatus(ctx context.Context, id, status string) (*entity.ModerationReport, error) {
	target, err := entity.ParseReportStatus(status)
	if err != nil {
		return nil, err
	}
	for _, r := range m.Reports {
		if r.ID == id {
			r.Status = target
			return r, nil
		}
	}
	return nil, entity.ErrNotFound
}
