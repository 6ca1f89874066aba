package contract

import (
	"context"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

type IEventRepository interface {
	CreateEvent(ctx context.Context, event *entity.Event) error
	// GetEvents returns events ordered by date ascending; a nil eventType lists all.
	GetEvents(ctx context.Context, eventType *entity.EventType) ([]*entity.Event, error)
	UpdateEventStatus(ctx context.Context, id string, status entity.EventStatus) (*entity.Event, error)
	CountGroupedByStatus(ctx context.Context) ([]entity.PiePoint, error)
}
