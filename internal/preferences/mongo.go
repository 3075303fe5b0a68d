package preferences

import (
	"context"
	"fmt"
	"time"

	"placement_backend/internal/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStore делает upsert документа настроек по user_id
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewMongoStore(ctx context.Context, url, database string) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo unavailable: %w", err)
	}

	collection := client.Database(database).Collection(collectionName)

	_, err = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to create preference indexes: %w", err)
	}

	logger.Info("Preference store connected", "database", database, "collection", collectionName)
	return &MongoStore{client: client, collection: collection}, nil
}

func (s *MongoStore) Save(ctx context.Context, pref Preference) error {
	pref.UpdatedAt = time.Now().UTC()

	_, err := s.collection.UpdateOne(ctx,
		bson.D{{Key: "user_id", Value: pref.UserID}},
		bson.D{{Key: "$set", Value: pref}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert preferences for user %d: %w", pref.UserID, err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
