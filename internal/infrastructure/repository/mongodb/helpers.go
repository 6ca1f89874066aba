package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

// EntityValidator enforces entity schemas before writes.
type EntityValidator interface {
	ValidateEntity(v interface{}) error
}

// enum is implemented by every closed status domain.
type enum interface {
	~string
	IsValid() bool
}

// checkEnum rejects values outside the field's status domain before any write.
func checkEnum[T enum](field string, v T) error {
	if v.IsValid() {
		return nil
	}
	return entity.NewValidationError(field, fmt.Sprintf("`%s` is not a valid enum value for path `%s`.", string(v), field))
}

// setField writes one field of the document with the given id and decodes the updated
// document into out. An unknown id yields entity.ErrNotFound and writes nothing.
func setField(ctx context.Context, coll *mongo.Collection, id, field string, value interface{}, out interface{}) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{field: value}}, opts).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.ErrNotFound
		}
		return err
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func findOneByID(ctx context.Context, coll *mongo.Collection, id string, out interface{}) error {
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity.ErrNotFound
		}
		return err
	}
	return nil
}

// countGroupedBy counts documents per distinct value of field, ordered by value name.
func countGroupedBy(ctx context.Context, coll *mongo.Collection, field string) ([]entity.PiePoint, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$" + field,
			"value": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to group by %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	points := []entity.PiePoint{}
	if err := cursor.All(ctx, &points); err != nil {
		return nil, fmt.Errorf("failed to decode %s counts: %w", field, err)
	}
	return points, nil
}
