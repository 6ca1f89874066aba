package contract

import (
	"context"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

type ICommunityRepository interface {
	CreateCommunity(ctx context.Context, community *entity.Community) error
	GetCommunityByID(ctx context.Context, id string) (*entity.Community, error)
	// GetCommunities lists communities with members resolved to user summaries.
	GetCommunities(ctx context.Context) ([]*entity.CommunityWithMembers, error)
	UpdateCommunityStatus(ctx context.Context, id string, status entity.CommunityStatus) (*entity.Community, error)
	DeleteCommunity(ctx context.Context, id string) error

	// AddMember and RemoveMember rewrite membersCount in the same update.
	AddMember(ctx context.Context, id, userID string) (*entity.Community, error)
	RemoveMember(ctx context.Context, id, userID string) (*entity.Community, error)

	// Engagement projects every community to x = membersCount, y = len(members).
	Engagement(ctx context.Context) ([]entity.DotPoint, error)
	CountGroupedByStatus(ctx context.Context) ([]entity.PiePoint, error)
}

type IPostRepository interface {
	CreatePost(ctx context.Context, post *entity.Post) error
	GetPosts(ctx context.Context) ([]*entity.Post, error)
	// EngagementByDay groups posts by "MM-DD" with post count and summed likes.
	EngagementByDay(ctx context.Context) ([]entity.EngagementPoint, error)
}
