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

// NewsUseCase handles article submission and review.
type NewsUseCase struct {
	newsRepo      contract.INewsRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	hooks         writeHooks
	now           func() time.Time
}

func NewNewsUseCase(
	newsRepo contract.INewsRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	activity usecasecontract.IActivityRecorder,
	analytics cacheInvalidator,
) *NewsUseCase {
	return &NewsUseCase{
		newsRepo:      newsRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
		hooks:         writeHooks{activity: activity, analytics: analytics},
		now:           time.Now,
	}
}

var _ usecasecontract.INewsUseCase = (*NewsUseCase)(nil)

// CreateNews files a new article. Articles start Pending; only an admin session may
// submit one directly in another status.
func (uc *NewsUseCase) CreateNews(ctx context.Context, in usecasecontract.CreateNewsInput) (*entity.News, error) {
	category := entity.NewsCategoryLocal
	if in.Category != "" {
		parsed, err := entity.ParseEnum("category", in.Category, entity.NewsCategories)
		if err != nil {
			return nil, err
		}
		category = parsed
	}

	status := entity.NewsStatusPending
	if in.Status != "" {
		parsed, err := entity.ParseNewsStatus(in.Status)
		if err != nil {
			return nil, err
		}
		if s, ok := entity.SessionFromContext(ctx); ok && s.IsAdmin() {
			status = parsed
		}
	}

	author := strings.TrimSpace(in.Author)
	if author == "" {
		author = entity.DefaultNewsAuthor
	}

	now := uc.now()
	news := &entity.News{
		ID:        uc.uuidGenerator.NewUUID(),
		Title:     strings.TrimSpace(in.Title),
		Content:   in.Content,
		Author:    author,
		Category:  category,
		Status:    status,
		Image:     in.Image,
		Date:      now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.newsRepo.CreateNews(ctx, news); err != nil {
		return nil, err
	}

	uc.hooks.done(ctx, "News Created", fmt.Sprintf("%q filed under %s", news.Title, news.Category))
	return news, nil
}

func (uc *NewsUseCase) GetNews(ctx context.Context) ([]*entity.News, error) {
	return uc.newsRepo.GetNews(ctx)
}

func (uc *NewsUseCase) GetNewsByID(ctx context.Context, id string) (*entity.News, error) {
	return uc.newsRepo.GetNewsByID(ctx, id)
}

func (uc *NewsUseCase) UpdateNewsStatus(ctx context.Context, id, status string) (*entity.News, error) {
	target, err := entity.ParseNewsStatus(status)
	if err != nil {
		return nil, err
	}
	news, err := uc.newsRepo.UpdateNewsStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}
	uc.hooks.done(ctx, "News "+string(news.Status), fmt.Sprintf("%q set to %s", news.Title, news.Status))
	return news, nil
}

func (uc *NewsUseCase) DeleteNews(ctx context.Context, id string) error {
	if err := uc.newsRepo.DeleteNews(ctx, id); err != nil {
		return err
	}
	uc.hooks.done(ctx, "News Deleted", fmt.Sprintf("news %s removed", id))
	return nil
}
