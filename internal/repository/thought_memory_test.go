package repository

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"happy-thoughts-api/internal/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func seedThoughts(t *testing.T, repo ThoughtRepository, n int, at time.Time) []models.Thought {
	t.Helper()
	seeded := make([]models.Thought, 0, n)
	for i := 0; i < n; i++ {
		th, err := repo.Insert(context.Background(), models.Thought{
			Message:   "thought number " + strings.Repeat("!", i+1),
			CreatedAt: at.Add(time.Duration(i) * time.Minute),
			UserName:  models.DefaultUserName,
		})
		require.NoError(t, err)
		seeded = append(seeded, th)
	}
	return seeded
}

func Test_Memory_Insert_Assigns_ID(t *testing.T) {
	req := require.New(t)
	repo := NewMemoryThoughtRepository()

	th, err := repo.Insert(context.Background(), models.Thought{Message: "Hello world", UserName: "Bob"})
	req.NoError(err)
	req.False(th.ID.IsZero())

	count, err := repo.Count(context.Background())
	req.NoError(err)
	req.EqualValues(1, count)
}

func Test_Memory_Insert_Enforces_Schema(t *testing.T) {
	req := require.New(t)
	repo := NewMemoryThoughtRepository()

	_, err := repo.Insert(context.Background(), models.Thought{Message: "hi"})
	req.ErrorIs(err, ErrSchemaViolation)
	_, err = repo.Insert(context.Background(), models.Thought{Message: strings.Repeat("a", 141)})
	req.ErrorIs(err, ErrSchemaViolation)
	_, err = repo.Insert(context.Background(), models.Thought{Message: "valid message", Hearts: -1})
	req.ErrorIs(err, ErrSchemaViolation)

	count, err := repo.Count(context.Background())
	req.NoError(err)
	req.Zero(count)
}

func Test_Memory_List_Sorted_And_Paged(t *testing.T) {
	req := require.New(t)
	repo := NewMemoryThoughtRepository()
	seeded := seedThoughts(t, repo, 12, time.Now().UTC())

	// When fetching the first page
	page0, err := repo.List(context.Background(), 0, 5)
	req.NoError(err)
	req.Len(page0, 5)
	for i, th := range page0 {
		req.Equal(seeded[11-i].ID, th.ID)
	}

	// Then the next page continues where the first stopped
	page1, err := repo.List(context.Background(), 5, 5)
	req.NoError(err)
	req.Len(page1, 5)
	req.Equal(seeded[6].ID, page1[0].ID)

	page2, err := repo.List(context.Background(), 10, 5)
	req.NoError(err)
	req.Len(page2, 2)

	page3, err := repo.List(context.Background(), 15, 5)
	req.NoError(err)
	req.NotNil(page3)
	req.Empty(page3)
}

func Test_Memory_List_Equal_Timestamps_Newest_Insert_First(t *testing.T) {
	req := require.New(t)
	repo := NewMemoryThoughtRepository()
	at := time.Now().UTC()
	first, err := repo.Insert(context.Background(), models.Thought{Message: "first one", CreatedAt: at})
	req.NoError(err)
	second, err := repo.Insert(context.Background(), models.Thought{Message: "second one", CreatedAt: at})
	req.NoError(err)

	items, err := repo.List(context.Background(), 0, 5)
	req.NoError(err)
	req.Equal([]bson.ObjectID{second.ID, first.ID}, []bson.ObjectID{items[0].ID, items[1].ID})
}

func Test_Memory_IncrementHearts(t *testing.T) {
	req := require.New(t)
	repo := NewMemoryThoughtRepository()
	th := seedThoughts(t, repo, 1, time.Now())[0]

	for i := 1; i <= 3; i++ {
		updated, err := repo.IncrementHearts(context.Background(), th.ID.Hex())
		req.NoError(err)
		req.Equal(i, updated.Hearts)
	}
}

func Test_Memory_IncrementHearts_Errors(t *testing.T) {
	req := require.New(t)
	repo := NewMemoryThoughtRepository()
	seedThoughts(t, repo, 2, time.Now())

	_, err := repo.IncrementHearts(context.Background(), bson.NewObjectID().Hex())
	req.ErrorIs(err, ErrNotFound)

	_, err = repo.IncrementHearts(context.Background(), "not-an-id")
	req.ErrorIs(err, ErrInvalidID)

	items, err := repo.List(context.Background(), 0, 5)
	req.NoError(err)
	for _, th := range items {
		req.Zero(th.Hearts)
	}
}

func Test_Memory_IncrementHearts_Concurrent(t *testing.T) {
	req := require.New(t)
	repo := NewMemoryThoughtRepository()
	th := seedThoughts(t, repo, 1, time.Now())[0]

	const likes = 200
	var wg sync.WaitGroup
	wg.Add(likes)
	for i := 0; i < likes; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.IncrementHearts(context.Background(), th.ID.Hex())
			req.NoError(err)
		}()
	}
	wg.Wait()

	items, err := repo.List(context.Background(), 0, 1)
	req.NoError(err)
	req.Equal(likes, items[0].Hearts)
}

func Test_Memory_Honours_Cancelled_Context(t *testing.T) {
	req := require.New(t)
	repo := NewMemoryThoughtRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Count(ctx)
	req.ErrorIs(err, context.Canceled)
	_, err = repo.Insert(ctx, models.Thought{Message: "Hello world"})
	req.ErrorIs(err, context.Canceled)
}
