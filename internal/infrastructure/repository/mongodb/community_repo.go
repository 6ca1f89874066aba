package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
)

// CommunityRepository stores communities and resolves their members against users.
type CommunityRepository struct {
	collection      *mongo.Collection
	usersCollection string
	validator       EntityValidator
}

func NewCommunityRepository(db *mongo.Database, validator EntityValidator) *CommunityRepository {
	return &CommunityRepository{
		collection:      db.Collection("communities"),
		usersCollection: "users",
		validator:       validator,
	}
}

var _ contract.ICommunityRepository = (*CommunityRepository)(nil)

func (r *CommunityRepository) CreateCommunity(ctx context.Context, community *entity.Community) error {
	if community.Members == nil {
		community.Members = []string{}
	}
	community.MembersCount = len(community.Members)
	if err := r.validator.ValidateEntity(community); err != nil {
		return err
	}
	if _, err := r.collection.InsertOne(ctx, community); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("community %s: %w", community.Name, entity.ErrConflict)
		}
		return fmt.Errorf("failed to create community: %w", err)
	}
	return nil
}

func (r *CommunityRepository) GetCommunityByID(ctx context.Context, id string) (*entity.Community, error) {
	var community entity.Community
	if err := findOneByID(ctx, r.collection, id, &community); err != nil {
		return nil, fmt.Errorf("community %s: %w", id, err)
	}
	return &community, nil
}

// GetCommunities lists communities newest first with members resolved to
// {_id, fullName, role, email}. Dangling member ids are dropped from the listing.
func (r *CommunityRepository) GetCommunities(ctx context.Context) ([]*entity.CommunityWithMembers, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         r.usersCollection,
			"localField":   "members",
			"foreignField": "_id",
			"as":           "memberDetails",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"fullName": 1, "role": 1, "email": 1}},
			},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve communities: %w", err)
	}
	defer cursor.Close(ctx)

	communities := []*entity.CommunityWithMembers{}
	if err := cursor.All(ctx, &communities); err != nil {
		return nil, fmt.Errorf("failed to decode communities: %w", err)
	}
	for _, c := range communities {
		if c.MemberDetails == nil {
			c.MemberDetails = []entity.MemberSummary{}
		}
	}
	return communities, nil
}

func (r *CommunityRepository) UpdateCommunityStatus(ctx context.Context, id string, status entity.CommunityStatus) (*entity.Community, error) {
	if err := checkEnum("status", status); err != nil {
		return nil, err
	}
	var community entity.Community
	if err := setField(ctx, r.collection, id, "status", status, &community); err != nil {
		return nil, fmt.Errorf("community %s: %w", id, err)
	}
	return &community, nil
}

func (r *CommunityRepository) DeleteCommunity(ctx context.Context, id string) error {
	if err := deleteByID(ctx, r.collection, id); err != nil {
		return fmt.Errorf("community %s: %w", id, err)
	}
	return nil
}

func (r *CommunityRepository) AddMember(ctx context.Context, id, userID string) (*entity.Community, error) {
	members := bson.M{"$setUnion": bson.A{bson.M{"$ifNull": bson.A{"$members", bson.A{}}}, bson.A{userID}}}
	return r.rewriteMembers(ctx, id, members)
}

func (r *CommunityRepository) RemoveMember(ctx context.Context, id, userID string) (*entity.Community, error) {
	members := bson.M{"$setDifference": bson.A{bson.M{"$ifNull": bson.A{"$members", bson.A{}}}, bson.A{userID}}}
	return r.rewriteMembers(ctx, id, members)
}

// rewriteMembers replaces members with the given expression and recomputes membersCount
// from the result in the same single-document update.
func (r *CommunityRepository) rewriteMembers(ctx context.Context, id string, members bson.M) (*entity.Community, error) {
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{"members": members, "updatedAt": "$$NOW"}}},
		bson.D{{Key: "$set", Value: bson.M{"membersCount": bson.M{"$size": "$members"}}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var community entity.Community
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&community)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("community %s: %w", id, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update members: %w", err)
	}
	return &community, nil
}

func (r *CommunityRepository) Engagement(ctx context.Context) ([]entity.DotPoint, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$project", Value: bson.M{
			"x": bson.M{"$ifNull": bson.A{"$membersCount", 0}},
			"y": bson.M{"$size": bson.M{"$ifNull": bson.A{"$members", bson.A{}}}},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to project community engagement: %w", err)
	}
	defer cursor.Close(ctx)

	points := []entity.DotPoint{}
	if err := cursor.All(ctx, &points); err != nil {
		return nil, fmt.Errorf("failed to decode community engagement: %w", err)
	}
	return points, nil
}

func (r *CommunityRepository) CountGroupedByStatus(ctx context.Context) ([]entity.PiePoint, error) {
	return countGroupedBy(ctx, r.collection, "status")
}

// PostRepository stores community posts.
type PostRepository struct {
	collection *mongo.Collection
	validator  EntityValidator
}

func NewPostRepository(db *mongo.Database, validator EntityValidator) *PostRepository {
	return &PostRepository{collection: db.Collection("posts"), validator: validator}
}

var _ contract.IPostRepository = (*PostRepository)(nil)

func (r *PostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	if err := r.validator.ValidateEntity(post); err != nil {
		return err
	}
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *PostRepository) GetPosts(ctx context.Context) ([]*entity.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []*entity.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) EngagementByDay(ctx context.Context) ([]entity.EngagementPoint, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%m-%d", "date": "$createdAt"}},
			"posts": bson.M{"$sum": 1},
			"likes": bson.M{"$sum": "$likes"},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to group posts by day: %w", err)
	}
	defer cursor.Close(ctx)

	points := []entity.EngagementPoint{}
	if err := cursor.All(ctx, &points); err != nil {
		return nil, fmt.Errorf("failed to decode post engagement: %w", err)
	}
	return points, nil
}
