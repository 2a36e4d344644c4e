package repository

import (
	"context"
	"slices"
	"sync"
	"unicode/utf8"

	"happy-thoughts-api/internal/models"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryThoughtRepository keeps thoughts in process memory.
// It enforces the same schema as the Mongo collection validator.
type MemoryThoughtRepository struct {
	mu       sync.RWMutex
	thoughts []models.Thought // insertion order
}

func NewMemoryThoughtRepository() *MemoryThoughtRepository {
	return &MemoryThoughtRepository{}
}

func (r *MemoryThoughtRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.thoughts)), nil
}

func (r *MemoryThoughtRepository) List(ctx context.Context, skip, limit int64) ([]models.Thought, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	sorted := slices.Clone(r.thoughts)
	r.mu.RUnlock()

	// newest insert first, then a stable sort keeps that order for equal timestamps
	slices.Reverse(sorted)
	slices.SortStableFunc(sorted, func(a, b models.Thought) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if skip < 0 || skip >= int64(len(sorted)) || limit <= 0 {
		return []models.Thought{}, nil
	}
	return lo.Subset(sorted, int(skip), uint(limit)), nil
}

func (r *MemoryThoughtRepository) Insert(ctx context.Context, thought models.Thought) (models.Thought, error) {
	if err := ctx.Err(); err != nil {
		return models.Thought{}, err
	}
	if n := utf8.RuneCountInString(thought.Message); n < models.MinMessageLength || n > models.MaxMessageLength {
		return models.Thought{}, ErrSchemaViolation
	}
	if thought.Hearts < 0 {
		return models.Thought{}, ErrSchemaViolation
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if thought.ID.IsZero() {
		thought.ID = bson.NewObjectID()
	}
	r.thoughts = append(r.thoughts, thought)
	return thought, nil
}

func (r *MemoryThoughtRepository) IncrementHearts(ctx context.Context, id string) (models.Thought, error) {
	if err := ctx.Err(); err != nil {
		return models.Thought{}, err
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.Thought{}, ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.thoughts {
		if r.thoughts[i].ID == oid {
			r.thoughts[i].Hearts++
			return r.thoughts[i], nil
		}
	}
	return models.Thought{}, ErrNotFound
}
