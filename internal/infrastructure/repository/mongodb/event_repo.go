package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

type EventRepository struct {
	collection *mongo.Collection
	validator  EntityValidator
}

func NewEventRepository(db *mongo.Database, validator EntityValidator) *EventRepository {
	return &EventRepository{collection: db.Collection("events"), validator: validator}
}

var _ contract.IEventRepository = (*EventRepository)(nil)

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	if err := r.validator.ValidateEntity(event); err != nil {
		return err
	}
	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *EventRepository) GetEvents(ctx context.Context, eventType *entity.EventType) ([]*entity.Event, error) {
	filter := bson.M{}
	if eventType != nil {
		if err := checkEnum("type", *eventType); err != nil {
			return nil, err
		}
		filter["type"] = *eventType
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []*entity.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) UpdateEventStatus(ctx context.Context, id string, status entity.EventStatus) (*entity.Event, error) {
	if err := checkEnum("status", status); err != nil {
		return nil, err
	}
	var event entity.Event
	if err := setField(ctx, r.collection, id, "status", status, &event); err != nil {
		return nil, fmt.Errorf("event %s: %w", id, err)
	}
	return &event, nil
}

func (r *EventRepository) CountGroupedByStatus(ctx context.Context) ([]entity.PiePoint, error) {
	return countGroupedBy(ctx, r.collection, "status")
}
