package favorites_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"petster/internal/adapters/storage/memory"
	"petster/internal/domain/favorites"
	"petster/internal/domain/pets"
	"petster/internal/domain/views"
	"petster/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo favorites.Repository
	pets pets.Repository
	svc  *favorites.Service
}

func newFixture(t *testing.T, nPets int) fixture {
	t.Helper()
	petRepo := memory.NewPetRepo()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= nPets; i++ {
		require.NoError(t, petRepo.Create(context.Background(), pets.Pet{
			ID:        fmt.Sprintf("p%02d", i),
			Category:  pets.CategoryDog,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	viewSvc := views.NewService(memory.NewViewRepo(), nil, logger.NewNop())
	petSvc := pets.NewService(petRepo, pets.Deps{Views: viewSvc})
	repo := memory.NewFavoriteRepo()
	return fixture{
		repo: repo,
		pets: petRepo,
		svc:  favorites.NewService(repo, petSvc, viewSvc),
	}
}

func TestToggle_IsIdempotent(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	msg, err := f.svc.Toggle(ctx, "p01", "s1", true)
	require.NoError(t, err)
	assert.Equal(t, favorites.MsgAdded, msg)

	msg, err = f.svc.Toggle(ctx, "p01", "s1", true)
	require.NoError(t, err)
	assert.Equal(t, favorites.MsgNoop, msg)

	n, err := f.repo.CountByShelter(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	msg, err = f.svc.Toggle(ctx, "p01", "s1", false)
	require.NoError(t, err)
	assert.Equal(t, favorites.MsgRemoved, msg)

	msg, err = f.svc.Toggle(ctx, "p01", "s1", false)
	require.NoError(t, err)
	assert.Equal(t, favorites.MsgNoop, msg)
}

func TestToggle_ConcurrentAddsKeepOneRow(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Toggle(ctx, "p01", "s1", true)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	n, err := f.repo.CountByShelter(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestToggle_Validation(t *testing.T) {
	f := newFixture(t, 1)

	_, err := f.svc.Toggle(context.Background(), "", "s1", true)
	assert.ErrorIs(t, err, favorites.ErrInvalidInput)

	_, err = f.svc.Toggle(context.Background(), "missing", "s1", true)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestList_PaginatesNewestFavoriteFirst(t *testing.T) {
	f := newFixture(t, 12)
	ctx := context.Background()
	for i := 1; i <= 12; i++ {
		_, err := f.svc.Toggle(ctx, fmt.Sprintf("p%02d", i), "s1", true)
		require.NoError(t, err)
	}

	page, err := f.svc.List(ctx, "s1", 5, "")
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 3, page.TotalPages)
	require.NotEmpty(t, page.NextCursor)

	seen := map[string]bool{}
	cursor := ""
	for {
		page, err := f.svc.List(ctx, "s1", 5, cursor)
		require.NoError(t, err)
		for _, p := range page.Items {
			assert.False(t, seen[p.ID])
			seen[p.ID] = true
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}
	assert.Len(t, seen, 12)
}

func TestList_CursorFromOtherShelterRestarts(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		_, err := f.svc.Toggle(ctx, fmt.Sprintf("p%02d", i), "s1", true)
		require.NoError(t, err)
		_, err = f.svc.Toggle(ctx, fmt.Sprintf("p%02d", i), "s2", true)
		require.NoError(t, err)
	}

	s1, err := f.svc.List(ctx, "s1", 2, "")
	require.NoError(t, err)
	require.NotEmpty(t, s1.NextCursor)

	s2, err := f.svc.List(ctx, "s2", 2, s1.NextCursor)
	require.NoError(t, err)
	assert.Len(t, s2.Items, 2)
	assert.NotEmpty(t, s2.NextCursor)
}

func TestList_RequiresShelter(t *testing.T) {
	f := newFixture(t, 0)
	_, err := f.svc.List(context.Background(), "", 10, "")
	assert.ErrorIs(t, err, favorites.ErrInvalidInput)
}
