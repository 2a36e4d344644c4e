package repository

import (
	"context"
	"errors"
	"fmt"

	"happy-thoughts-api/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const ThoughtsCollection = "thoughts"

// MongoDB server error code for a document rejected by the collection validator.
const documentValidationFailure = 121

type mongoThoughtRepository struct {
	col *mongo.Collection
}

func NewMongoThoughtRepository(db *mongo.Database) ThoughtRepository {
	return &mongoThoughtRepository{col: db.Collection(ThoughtsCollection)}
}

func (r *mongoThoughtRepository) Count(ctx context.Context) (int64, error) {
	return r.col.EstimatedDocumentCount(ctx)
}

func (r *mongoThoughtRepository) List(ctx context.Context, skip, limit int64) ([]models.Thought, error) {
	findOpt := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.D{}, findOpt)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]models.Thought, 0, limit)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoThoughtRepository) Insert(ctx context.Context, thought models.Thought) (models.Thought, error) {
	res, err := r.col.InsertOne(ctx, thought)
	if err != nil {
		if isDocumentValidationFailure(err) {
			return models.Thought{}, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
		}
		return models.Thought{}, err
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return models.Thought{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	thought.ID = id
	return thought, nil
}

func (r *mongoThoughtRepository) IncrementHearts(ctx context.Context, id string) (models.Thought, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.Thought{}, ErrInvalidID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Thought
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"hearts": 1}},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Thought{}, ErrNotFound
		}
		return models.Thought{}, err
	}
	return updated, nil
}

func isDocumentValidationFailure(err error) bool {
	var we mongo.WriteException
	if !errors.As(err, &we) {
		return false
	}
	for _, e := range we.WriteErrors {
		if e.Code == documentValidationFailure {
			return true
		}
	}
	return false
}
