package bootstrap

import (
	"context"
	"fmt"

	"happy-thoughts-api/internal/models"
	"happy-thoughts-api/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ThoughtSchema is the collection-level validator for thoughts.
// It is kept apart from request validation so either side can change alone.
func ThoughtSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"message", "hearts", "createdAt", "userName"},
			"properties": bson.M{
				"message": bson.M{
					"bsonType":  "string",
					"minLength": models.MinMessageLength,
					"maxLength": models.MaxMessageLength,
				},
				"hearts": bson.M{
					"bsonType": bson.A{"int", "long"},
					"minimum":  0,
				},
				"createdAt": bson.M{"bsonType": "date"},
				"userName":  bson.M{"bsonType": "string"},
			},
		},
	}
}

// EnsureThoughtCollection creates the thoughts collection with its validator,
// or updates the validator in place, and ensures the feed index exists.
func EnsureThoughtCollection(ctx context.Context, db *mongo.Database) error {
	names, err := db.ListCollectionNames(ctx, bson.M{"name": repository.ThoughtsCollection})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	if len(names) == 0 {
		opts := options.CreateCollection().SetValidator(ThoughtSchema())
		if err := db.CreateCollection(ctx, repository.ThoughtsCollection, opts); err != nil {
			return fmt.Errorf("create %s collection: %w", repository.ThoughtsCollection, err)
		}
	} else {
		cmd := bson.D{
			{Key: "collMod", Value: repository.ThoughtsCollection},
			{Key: "validator", Value: ThoughtSchema()},
		}
		if err := db.RunCommand(ctx, cmd).Err(); err != nil {
			return fmt.Errorf("update %s validator: %w", repository.ThoughtsCollection, err)
		}
	}

	_, err = db.Collection(repository.ThoughtsCollection).Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "createdAt", Value: -1},
				{Key: "_id", Value: -1},
			},
			Options: options.Index().SetName("createdAt_desc"),
		},
	)
	if err != nil {
		return fmt.Errorf("create feed index: %w", err)
	}
	return nil
}
