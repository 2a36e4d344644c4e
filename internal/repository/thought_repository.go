package repository

import (
	"context"
	"errors"

	"happy-thoughts-api/internal/models"
)

//go:generate mockgen -source=thought_repository.go -destination=mock_thought_repository.go -package=repository

var (
	ErrNotFound        = errors.New("thought not found")
	ErrInvalidID       = errors.New("invalid thought id")
	ErrSchemaViolation = errors.New("thought violates collection schema")
)

// ThoughtRepository is the persistence boundary for thoughts.
// IncrementHearts must be atomic with respect to concurrent callers.
type ThoughtRepository interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, skip, limit int64) ([]models.Thought, error)
	Insert(ctx context.Context, thought models.Thought) (models.Thought, error)
	IncrementHearts(ctx context.Context, id string) (models.Thought, error)
}
