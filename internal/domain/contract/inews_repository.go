package contract

import (
	"context"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

// INewsRepository provides methods for managing news articles in the database.
type INewsRepository interface {
	CreateNews(ctx context.Context, news *entity.News) error
	GetNewsByID(ctx context.Context, id string) (*entity.News, error)
	GetNews(ctx context.Context) ([]*entity.News, error)
	GetNewsByStatus(ctx context.Context, status entity.NewsStatus, limit int64) ([]*entity.News, error)
	UpdateNewsStatus(ctx context.Context, id string, status entity.NewsStatus) (*entity.News, error)
	DeleteNews(ctx context.Context, id string) error

	CountNews(ctx context.Context) (int64, error)
	CountNewsByStatus(ctx context.Context, status entity.NewsStatus) (int64, error)
	CountByCategory(ctx context.Context) ([]entity.PiePoint, error)
	// CountByDay groups articles by their publication date as "YYYY-MM-DD", oldest first.
	CountByDay(ctx context.Context) ([]entity.WavePoint, error)
	CountGroupedByStatus(ctx context.Context) ([]entity.PiePoint, error)
}
