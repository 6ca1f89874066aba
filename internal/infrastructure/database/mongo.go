package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	UsersCollection             = "users"
	NewsCollection              = "news"
	CommunitiesCollection       = "communities"
	PostsCollection             = "posts"
	EventsCollection            = "events"
	ModerationReportsCollection = "moderationreports"
	ActivityLogsCollection      = "activitylogs"
)

const connectTimeout = 10 * time.Second

// MongoDBClient wraps the driver client.
type MongoDBClient struct {
	Client *mongo.Client
}

// NewMongoDBClient connects to uri and pings the primary.
func NewMongoDBClient(uri string) (*MongoDBClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return &MongoDBClient{Client: client}, nil
}

// Disconnect closes the connection pool.
func (m *MongoDBClient) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

// EnsureIndexes creates the unique and sort indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		NewsCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		CommunitiesCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		PostsCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		EventsCollection: {
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "date", Value: 1}}},
		},
		ModerationReportsCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		ActivityLogsCollection: {
			{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		},
	}
	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// ResetContent removes every non-admin user along with all news, communities,
// posts, events and moderation reports. Activity logs are kept.
func ResetContent(ctx context.Context, db *mongo.Database, adminRole string) error {
	if _, err := db.Collection(UsersCollection).DeleteMany(ctx, bson.M{"role": bson.M{"$ne": adminRole}}); err != nil {
		return fmt.Errorf("failed to clear %s: %w", UsersCollection, err)
	}
	for _, name := range []string{
		NewsCollection,
		CommunitiesCollection,
		PostsCollection,
		EventsCollection,
		ModerationReportsCollection,
	} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to clear %s: %w", name, err)
		}
	}
	return nil
}
