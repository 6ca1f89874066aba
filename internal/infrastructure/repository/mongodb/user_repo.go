package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// secret fields never leave the users collection in list queries
var userListProjection = bson.M{"password": 0, "resetOTP": 0, "resetOTPExpires": 0}

type MongoUserRepository struct {
	collection *mongo.Collection
	validator  EntityValidator
}

func NewMongoUserRepository(collection *mongo.Collection, validator EntityValidator) *MongoUserRepository {
	return &MongoUserRepository{collection: collection, validator: validator}
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	if err := r.validator.ValidateEntity(user); err != nil {
		return err
	}
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user %s: %w", user.Email, entity.ErrConflict)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := findOneByID(ctx, r.collection, id, &user); err != nil {
		return nil, fmt.Errorf("user %s: %w", id, err)
	}
	return &user, nil
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user %s: %w", email, entity.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) GetUsers(ctx context.Context) ([]*entity.User, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoUserRepository) GetUsersByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error) {
	if err := checkEnum("role", role); err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"role": role})
}

func (r *MongoUserRepository) find(ctx context.Context, filter bson.M) ([]*entity.User, error) {
	opts := options.Find().
		SetProjection(userListProjection).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []*entity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// UpdateUserStatus writes only the status field.
func (r *MongoUserRepository) UpdateUserStatus(ctx context.Context, id string, status entity.UserStatus) (*entity.User, error) {
	if err := checkEnum("status", status); err != nil {
		return nil, err
	}
	var user entity.User
	if err := setField(ctx, r.collection, id, "status", status, &user); err != nil {
		return nil, fmt.Errorf("user %s: %w", id, err)
	}
	return &user, nil
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	if err := deleteByID(ctx, r.collection, id); err != nil {
		return fmt.Errorf("user %s: %w", id, err)
	}
	return nil
}

func (r *MongoUserRepository) SetResetOTP(ctx context.Context, id, otpHash string, expiresAt time.Time) error {
	update := bson.M{"$set": bson.M{"resetOTP": otpHash, "resetOTPExpires": expiresAt}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", id, entity.ErrNotFound)
	}
	return nil
}

func (r *MongoUserRepository) ClearResetOTP(ctx context.Context, id string) error {
	update := bson.M{"$unset": bson.M{"resetOTP": "", "resetOTPExpires": ""}}
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("failed to clear reset code: %w", err)
	}
	return nil
}

func validOTPFilter(email, otpHash string, now time.Time) bson.M {
	return bson.M{
		"email":           email,
		"resetOTP":        otpHash,
		"resetOTPExpires": bson.M{"$gt": now},
	}
}

func (r *MongoUserRepository) FindByValidOTP(ctx context.Context, email, otpHash string, now time.Time) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, validOTPFilter(email, otpHash, now)).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrInvalidOTP
		}
		return nil, fmt.Errorf("failed to look up reset code: %w", err)
	}
	return &user, nil
}

// ConsumeResetOTP matches on the unexpired code so that concurrent resets with the same
// code cannot both succeed.
func (r *MongoUserRepository) ConsumeResetOTP(ctx context.Context, email, otpHash, hashedPassword string, now time.Time) error {
	if hashedPassword == "" {
		return entity.NewValidationError("password", "Password is required")
	}
	update := bson.M{
		"$set":   bson.M{"password": hashedPassword, "updatedAt": now},
		"$unset": bson.M{"resetOTP": "", "resetOTPExpires": ""},
	}
	res, err := r.collection.UpdateOne(ctx, validOTPFilter(email, otpHash, now), update)
	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	if res.MatchedCount == 0 {
		return entity.ErrInvalidOTP
	}
	return nil
}

func (r *MongoUserRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MongoUserRepository) CountUsersByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"role": role})
}
