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

// NewsRepository represents the MongoDB implementation of the INewsRepository interface.
type NewsRepository struct {
	collection *mongo.Collection
	validator  EntityValidator
}

func NewNewsRepository(db *mongo.Database, validator EntityValidator) *NewsRepository {
	return &NewsRepository{collection: db.Collection("news"), validator: validator}
}

var _ contract.INewsRepository = (*NewsRepository)(nil)

func (r *NewsRepository) CreateNews(ctx context.Context, news *entity.News) error {
	if err := r.validator.ValidateEntity(news); err != nil {
		return err
	}
	if _, err := r.collection.InsertOne(ctx, news); err != nil {
		return fmt.Errorf("failed to create news: %w", err)
	}
	return nil
}

func (r *NewsRepository) GetNewsByID(ctx context.Context, id string) (*entity.News, error) {
	var news entity.News
	if err := findOneByID(ctx, r.collection, id, &news); err != nil {
		return nil, fmt.Errorf("news %s: %w", id, err)
	}
	return &news, nil
}

// GetNews lists every article, newest first.
func (r *NewsRepository) GetNews(ctx context.Context) ([]*entity.News, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *NewsRepository) GetNewsByStatus(ctx context.Context, status entity.NewsStatus, limit int64) ([]*entity.News, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return r.find(ctx, bson.M{"status": status}, opts)
}

func (r *NewsRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*entity.News, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve news: %w", err)
	}
	defer cursor.Close(ctx)

	news := []*entity.News{}
	if err := cursor.All(ctx, &news); err != nil {
		return nil, fmt.Errorf("failed to decode news: %w", err)
	}
	return news, nil
}

func (r *NewsRepository) UpdateNewsStatus(ctx context.Context, id string, status entity.NewsStatus) (*entity.News, error) {
	if err := checkEnum("status", status); err != nil {
		return nil, err
	}
	var news entity.News
	if err := setField(ctx, r.collection, id, "status", status, &news); err != nil {
		return nil, fmt.Errorf("news %s: %w", id, err)
	}
	return &news, nil
}

func (r *NewsRepository) DeleteNews(ctx context.Context, id string) error {
	if err := deleteByID(ctx, r.collection, id); err != nil {
		return fmt.Errorf("news %s: %w", id, err)
	}
	return nil
}

func (r *NewsRepository) CountNews(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *NewsRepository) CountNewsByStatus(ctx context.Context, status entity.NewsStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

func (r *NewsRepository) CountByCategory(ctx context.Context) ([]entity.PiePoint, error) {
	return countGroupedBy(ctx, r.collection, "category")
}

func (r *NewsRepository) CountGroupedByStatus(ctx context.Context) ([]entity.PiePoint, error) {
	return countGroupedBy(ctx, r.collection, "status")
}

func (r *NewsRepository) CountByDay(ctx context.Context) ([]entity.WavePoint, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$date"}},
			"val": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to group news by day: %w", err)
	}
	defer cursor.Close(ctx)

	points := []entity.WavePoint{}
	if err := cursor.All(ctx, &points); err != nil {
		return nil, fmt.Errorf("failed to decode news per day: %w", err)
	}
	return points, nil
}
