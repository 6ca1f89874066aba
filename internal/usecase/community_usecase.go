package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// CommunityUseCase manages communities, their membership and their posts.
type CommunityUseCase struct {
	communityRepo contract.ICommunityRepository
	postRepo      contract.IPostRepository
	userRepo      contract.IUserRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	hooks         writeHooks
	now           func() time.Time
}

func NewCommunityUseCase(
	communityRepo contract.ICommunityRepository,
	postRepo contract.IPostRepository,
	userRepo contract.IUserRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	activity usecasecontract.IActivityRecorder,
	analytics cacheInvalidator,
) *CommunityUseCase {
	return &CommunityUseCase{
		communityRepo: communityRepo,
		postRepo:      postRepo,
		userRepo:      userRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
		hooks:         writeHooks{activity: activity, analytics: analytics},
		now:           time.Now,
	}
}

var _ usecasecontract.ICommunityUseCase = (*CommunityUseCase)(nil)

// uniqueMembers drops blanks and duplicates, keeping first-seen order.
func uniqueMembers(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (uc *CommunityUseCase) CreateCommunity(ctx context.Context, in usecasecontract.CreateCommunityInput) (*entity.Community, error) {
	communityType := entity.CommunityTypePublic
	if in.Type != "" {
		parsed, err := entity.ParseEnum("type", in.Type, entity.CommunityTypes)
		if err != nil {
			return nil, err
		}
		communityType = parsed
	}
	status := entity.CommunityStatusActive
	if in.Status != "" {
		parsed, err := entity.ParseCommunityStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	members := uniqueMembers(in.Members)
	now := uc.now()
	community := &entity.Community{
		ID:           uc.uuidGenerator.NewUUID(),
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Type:         communityType,
		Status:       status,
		Members:      members,
		MembersCount: len(members),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.communityRepo.CreateCommunity(ctx, community); err != nil {
		return nil, err
	}

	uc.hooks.done(ctx, "Community Created", fmt.Sprintf("%s created with %d members", community.Name, community.MembersCount))
	return community, nil
}

func (uc *CommunityUseCase) GetCommunities(ctx context.Context) ([]*entity.CommunityWithMembers, error) {
	return uc.communityRepo.GetCommunities(ctx)
}

func (uc *CommunityUseCase) UpdateCommunityStatus(ctx context.Context, id, status string) (*entity.Community, error) {
	target, err := entity.ParseCommunityStatus(status)
	if err != nil {
		return nil, err
	}
	community, err := uc.communityRepo.UpdateCommunityStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}
	uc.hooks.done(ctx, "Community Status Updated", fmt.Sprintf("%s set to %s", community.Name, community.Status))
	return community, nil
}

func (uc *CommunityUseCase) DeleteCommunity(ctx context.Context, id string) error {
	if err := uc.communityRepo.DeleteCommunity(ctx, id); err != nil {
		return err
	}
	uc.hooks.done(ctx, "Community Deleted", fmt.Sprintf("community %s removed", id))
	return nil
}

// AddMember requires the user to exist; references stay weak afterwards.
func (uc *CommunityUseCase) AddMember(ctx context.Context, id, userID string) (*entity.Community, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	community, err := uc.communityRepo.AddMember(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}
	uc.hooks.done(ctx, "Community Member Added", fmt.Sprintf("%s joined %s", user.FullName, community.Name))
	return community, nil
}

func (uc *CommunityUseCase) RemoveMember(ctx context.Context, id, userID string) (*entity.Community, error) {
	community, err := uc.communityRepo.RemoveMember(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	uc.hooks.done(ctx, "Community Member Removed", fmt.Sprintf("user %s left %s", userID, community.Name))
	return community, nil
}

func (uc *CommunityUseCase) CreatePost(ctx context.Context, in usecasecontract.CreatePostInput) (*entity.Post, error) {
	postType := entity.PostTypePublic
	if in.Type != "" {
		parsed, err := entity.ParseEnum("type", in.Type, entity.PostTypes)
		if err != nil {
			return nil, err
		}
		postType = parsed
	}
	author := strings.TrimSpace(in.Author)
	if author == "" {
		if s, ok := entity.SessionFromContext(ctx); ok {
			author = s.UserID
		}
	}
	authorName := strings.TrimSpace(in.AuthorName)
	if authorName == "" {
		if s, ok := entity.SessionFromContext(ctx); ok && s.UserID == author {
			authorName = s.FullName
		}
	}
	community := strings.TrimSpace(in.Community)
	if community == "" {
		community = entity.DefaultPostCommunity
	}

	now := uc.now()
	post := &entity.Post{
		ID:         uc.uuidGenerator.NewUUID(),
		Author:     author,
		AuthorName: authorName,
		Community:  community,
		Content:    in.Content,
		Type:       postType,
		Likes:      in.Likes,
		Comments:   in.Comments,
		IsFollowed: in.IsFollowed,
		IsJoined:   in.IsJoined,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	uc.hooks.done(ctx, "Post Created", fmt.Sprintf("%s posted in %s", post.AuthorName, post.Community))
	return post, nil
}

func (uc *CommunityUseCase) GetPosts(ctx context.Context) ([]*entity.Post, error) {
	return uc.postRepo.GetPosts(ctx)
}
