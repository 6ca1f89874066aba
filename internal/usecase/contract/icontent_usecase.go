package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

type CreateNewsInput struct {
	Title    string
	Content  string
	Author   string
	Category string
	Status   string
	Image    string
}

type INewsUseCase interface {
	CreateNews(ctx context.Context, in CreateNewsInput) (*entity.News, error)
	GetNews(ctx context.Context) ([]*entity.News, error)
	GetNewsByID(ctx context.Context, id string) (*entity.News, error)
	UpdateNewsStatus(ctx context.Context, id, status string) (*entity.News, error)
	DeleteNews(ctx context.Context, id string) error
}

type CreateCommunityInput struct {
	Name        string
	Description string
	Type        string
	Status      string
	Members     []string
}

type CreatePostInput struct {
	Author     string
	AuthorName string
	Community  string
	Content    string
	Type       string
	Likes      int
	Comments   int
	IsFollowed bool
	IsJoined   bool
}

type ICommunityUseCase interface {
	CreateCommunity(ctx context.Context, in CreateCommunityInput) (*entity.Community, error)
	GetCommunities(ctx context.Context) ([]*entity.CommunityWithMembers, error)
	UpdateCommunityStatus(ctx context.Context, id, status string) (*entity.Community, error)
	DeleteCommunity(ctx context.Context, id string) error
	AddMember(ctx context.Context, id, userID string) (*entity.Community, error)
	RemoveMember(ctx context.Context, id, userID string) (*entity.Community, error)

	CreatePost(ctx context.Context, in CreatePostInput) (*entity.Post, error)
	GetPosts(ctx context.Context) ([]*entity.Post, error)
}

type CreateEventInput struct {
	Title     string
	Organizer string
	Date      string
	Location  string
	Category  string
	Status    string
	Type      string
}

type IEventUseCase interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (*entity.Event, error)
	// GetEvents lists events, filtered by type when eventType is non-empty.
	GetEvents(ctx context.Context, eventType string) ([]*entity.Event, error)
	UpdateEventStatus(ctx context.Context, id, status string) (*entity.Event, error)
}

type CreateReportInput struct {
	Type          string
	TargetContent string
	Reporter      string
	Status        string
	Severity      string
}

type IModerationUseCase interface {
	CreateReport(ctx context.Context, in CreateReportInput) (*entity.ModerationReport, error)
	GetReports(ctx context.Context) ([]*entity.ModerationReport, error)
	UpdateReportStatus(ctx context.Context, id, status string) (*entity.ModerationReport, error)
}
