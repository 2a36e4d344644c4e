package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"happy-thoughts-api/dto"
	"happy-thoughts-api/internal/models"
	repo "happy-thoughts-api/internal/repository"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	ErrValidation       = errors.New("thought message must be between 5 and 140 characters")
	ErrThoughtNotFound  = errors.New("thought not found")
	ErrInvalidThoughtID = errors.New("invalid thought id")
)

const DefaultStoreTimeout = 5 * time.Second

type ThoughtService struct {
	repo     repo.ThoughtRepository
	log      *zap.Logger
	validate *validator.Validate
	timeout  time.Duration
	now      func() time.Time
}

func NewThoughtService(r repo.ThoughtRepository, log *zap.Logger, timeout time.Duration) *ThoughtService {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &ThoughtService{
		repo:     r,
		log:      log,
		validate: validator.New(),
		timeout:  timeout,
		now:      time.Now,
	}
}

// List returns one page of the feed, newest first, together with the total count.
func (s *ThoughtService) List(ctx context.Context, page int) (dto.ThoughtPageResponse, error) {
	if page < 0 {
		page = 0
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	total, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error("count thoughts", zap.Error(err))
		return dto.ThoughtPageResponse{}, fmt.Errorf("count thoughts: %w", err)
	}

	skip := int64(page) * models.ThoughtsPerPage
	items, err := s.repo.List(ctx, skip, models.ThoughtsPerPage)
	if err != nil {
		s.log.Error("list thoughts", zap.Int("page", page), zap.Error(err))
		return dto.ThoughtPageResponse{}, fmt.Errorf("list thoughts: %w", err)
	}
	if items == nil {
		items = []models.Thought{}
	}

	return dto.ThoughtPageResponse{Thoughts: items, AmountOfThoughts: total}, nil
}

// Create validates the body, applies defaults and persists a new thought.
func (s *ThoughtService) Create(ctx context.Context, body dto.CreateThoughtDTO) (models.Thought, error) {
	if err := s.validate.Struct(body); err != nil {
		return models.Thought{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	userName := models.DefaultUserName
	if body.UserName != nil {
		userName = *body.UserName
	}

	// Mongo keeps millisecond precision; truncating keeps the response equal to what is stored.
	thought := models.Thought{
		Message:   body.Message,
		Hearts:    0,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
		UserName:  userName,
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	created, err := s.repo.Insert(ctx, thought)
	if err != nil {
		if errors.Is(err, repo.ErrSchemaViolation) {
			return models.Thought{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		s.log.Error("insert thought", zap.Error(err))
		return models.Thought{}, fmt.Errorf("insert thought: %w", err)
	}
	return created, nil
}

// Like adds one heart to the thought and returns it after the increment.
func (s *ThoughtService) Like(ctx context.Context, id string) (models.Thought, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	updated, err := s.repo.IncrementHearts(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return models.Thought{}, ErrThoughtNotFound
		case errors.Is(err, repo.ErrInvalidID):
			return models.Thought{}, ErrInvalidThoughtID
		default:
			s.log.Error("like thought", zap.String("id", id), zap.Error(err))
			return models.Thought{}, fmt.Errorf("like thought %s: %w", id, err)
		}
	}
	return updated, nil
}
