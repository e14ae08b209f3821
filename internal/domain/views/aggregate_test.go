package views

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"petster/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	mu      sync.Mutex
	byPair  map[string]View
	queries [][]string
	failOn  string
}

func newTestRepo() *testRepo {
	return &testRepo{byPair: map[string]View{}}
}

func (r *testRepo) Upsert(ctx context.Context, v View) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := v.PetID + "|" + v.ShelterID
	cur, ok := r.byPair[key]
	if ok {
		cur.LastSeenAt = v.LastSeenAt
		r.byPair[key] = cur
		return false, nil
	}
	r.byPair[key] = v
	return true, nil
}

func (r *testRepo) ListByPets(ctx context.Context, petIDs []string) ([]View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(petIDs) > pets.MaxInValues {
		return nil, pets.ErrTooManyValues
	}
	r.queries = append(r.queries, append([]string(nil), petIDs...))

	set := map[string]bool{}
	for _, id := range petIDs {
		if id == r.failOn {
			return nil, errors.New("store unavailable")
		}
		set[id] = true
	}
	out := []View{}
	for _, v := range r.byPair {
		if set[v.PetID] {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *testRepo) DeleteByPet(ctx context.Context, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range r.byPair {
		if v.PetID == petID {
			delete(r.byPair, k)
		}
	}
	return nil
}

type mapCache struct {
	data        map[string]int
	invalidated []string
}

func (c *mapCache) GetMany(ctx context.Context, ids []string) (map[string]int, error) {
	out := map[string]int{}
	for _, id := range ids {
		if n, ok := c.data[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func (c *mapCache) SetMany(ctx context.Context, counts map[string]int) error {
	for k, v := range counts {
		c.data[k] = v
	}
	return nil
}

func (c *mapCache) Invalidate(ctx context.Context, id string) error {
	delete(c.data, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}

func petIDs(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("pet-%02d", i)
	}
	return out
}

func TestService_Record_RepeatViewIsNotCountedTwice(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestRepo(), nil, nil)

	require.NoError(t, svc.Record(ctx, "pet-1", "shelter-a"))
	require.NoError(t, svc.Record(ctx, "pet-1", "shelter-a"))
	require.NoError(t, svc.Record(ctx, "pet-1", "shelter-b"))

	counts, err := svc.CountByPets(ctx, []string{"pet-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, counts["pet-1"])
}

func TestService_Record_RequiresIDs(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)
	assert.ErrorIs(t, svc.Record(context.Background(), "", "shelter-a"), ErrInvalidInput)
	assert.ErrorIs(t, svc.Record(context.Background(), "pet-1", " "), ErrInvalidInput)
}

func TestCountByPets_ChunksOfTen_DefaultsToZero(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	ids := petIDs(23)
	require.NoError(t, svc.Record(ctx, ids[0], "s1"))
	require.NoError(t, svc.Record(ctx, ids[0], "s2"))
	require.NoError(t, svc.Record(ctx, ids[22], "s1"))

	counts, err := svc.CountByPets(ctx, ids)
	require.NoError(t, err)

	assert.Len(t, repo.queries, 3) // ceil(23/10)
	for _, q := range repo.queries {
		assert.LessOrEqual(t, len(q), pets.MaxInValues)
	}
	assert.Equal(t, 2, counts[ids[0]])
	assert.Equal(t, 1, counts[ids[22]])
	assert.Equal(t, 0, counts[ids[5]])
	assert.Len(t, counts, 23)
}

func TestCountByPets_ChunkFailureFailsAggregation(t *testing.T) {
	repo := newTestRepo()
	ids := petIDs(15)
	repo.failOn = ids[12]
	svc := NewService(repo, nil, nil)

	_, err := svc.CountByPets(context.Background(), ids)
	require.Error(t, err)
}

func TestCountByPets_Empty_NoQueries(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil, nil)

	counts, err := svc.CountByPets(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.Empty(t, repo.queries)
}

func TestCountByPets_ReadThroughCache(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	cache := &mapCache{data: map[string]int{}}
	svc := NewService(repo, cache, nil)

	require.NoError(t, svc.Record(ctx, "pet-1", "s1"))

	counts, err := svc.CountByPets(ctx, []string{"pet-1", "pet-2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"pet-1": 1, "pet-2": 0}, counts)
	assert.Len(t, repo.queries, 1)

	// segunda lectura: todo desde cache
	_, err = svc.CountByPets(ctx, []string{"pet-1", "pet-2"})
	require.NoError(t, err)
	assert.Len(t, repo.queries, 1)

	// un visitante nuevo invalida la entrada
	require.NoError(t, svc.Record(ctx, "pet-1", "s2"))
	assert.Contains(t, cache.invalidated, "pet-1")

	counts, err = svc.CountByPets(ctx, []string{"pet-1", "pet-2"})
	require.NoError(t, err)
	assert.Equal(t, 2, counts["pet-1"])
	assert.Len(t, repo.queries, 2)
	assert.Equal(t, []string{"pet-1"}, repo.queries[1])
}

func TestService_Record_RepeatViewKeepsCache(t *testing.T) {
	ctx := context.Background()
	cache := &mapCache{data: map[string]int{}}
	svc := NewService(newTestRepo(), cache, nil)

	require.NoError(t, svc.Record(ctx, "pet-1", "s1"))
	require.NoError(t, svc.Record(ctx, "pet-1", "s1"))
	assert.Equal(t, []string{"pet-1"}, cache.invalidated)
}

// listHookRepo corre onList después de leer (sin lock del repo tomado).
type listHookRepo struct {
	*testRepo
	onList func()
}

func (r *listHookRepo) ListByPets(ctx context.Context, petIDs []string) ([]View, error) {
	out, err := r.testRepo.ListByPets(ctx, petIDs)
	if r.onList != nil {
		hook := r.onList
		r.onList = nil
		hook()
	}
	return out, err
}

func TestCountByPets_ViewRecordedDuringReadIsNotCachedStale(t *testing.T) {
	ctx := context.Background()
	repo := &listHookRepo{testRepo: newTestRepo()}
	cache := &mapCache{data: map[string]int{}}
	svc := NewService(repo, cache, nil)

	require.NoError(t, svc.Record(ctx, "pet-1", "s1"))

	// entre la lectura del store y la escritura al cache llega un visitante nuevo
	repo.onList = func() {
		assert.NoError(t, svc.Record(ctx, "pet-1", "s2"))
	}

	counts, err := svc.CountByPets(ctx, []string{"pet-1", "pet-2"})
	require.NoError(t, err)
	assert.Equal(t, 1, counts["pet-1"])

	_, cached := cache.data["pet-1"]
	assert.False(t, cached, "stale count for pet-1 must not be cached")
	assert.Equal(t, 0, cache.data["pet-2"])

	counts, err = svc.CountByPets(ctx, []string{"pet-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, counts["pet-1"])
}

func TestGenerations_ForgetsWhenIdle(t *testing.T) {
	var g generations
	g.bump("pet-1")

	start := g.begin()
	assert.Empty(t, g.changedSince(start, []string{"pet-1"}))

	g.bump("pet-1")
	assert.Contains(t, g.changedSince(start, []string{"pet-1", "pet-2"}), "pet-1")
	assert.NotContains(t, g.changedSince(start, []string{"pet-1", "pet-2"}), "pet-2")

	g.end()
	assert.Nil(t, g.bumped)
}
