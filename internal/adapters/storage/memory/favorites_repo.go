package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"petster/internal/domain/favorites"
)

type pairKey struct {
	a, b string
}

type favoriteRepo struct {
	mu     sync.RWMutex
	byPair map[pairKey]favorites.Favorite // (shelter, pet)
	byID   map[string]pairKey
}

func NewFavoriteRepo() favorites.Repository {
	return &favoriteRepo{
		byPair: make(map[pairKey]favorites.Favorite),
		byID:   make(map[string]pairKey),
	}
}

// Add chequea y escribe bajo el mismo lock: dos toggles concurrentes no duplican.
func (r *favoriteRepo) Add(ctx context.Context, f favorites.Favorite) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f.ID == "" {
		return false, errors.New("favorite id required")
	}
	k := pairKey{f.ShelterID, f.PetID}
	if _, exists := r.byPair[k]; exists {
		return false, nil
	}
	r.byPair[k] = f
	r.byID[f.ID] = k
	return true, nil
}

func (r *favoriteRepo) Remove(ctx context.Context, shelterID, petID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := pairKey{shelterID, petID}
	f, exists := r.byPair[k]
	if !exists {
		return false, nil
	}
	delete(r.byPair, k)
	delete(r.byID, f.ID)
	return true, nil
}

func (r *favoriteRepo) Exists(ctx context.Context, shelterID, petID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byPair[pairKey{shelterID, petID}]
	return ok, nil
}

func (r *favoriteRepo) ListPetIDsByShelter(ctx context.Context, shelterID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0)
	for k := range r.byPair {
		if k.a == shelterID {
			out = append(out, k.b)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *favoriteRepo) ListByShelter(ctx context.Context, shelterID string, limit int, startAfter *favorites.Favorite) ([]favorites.Favorite, error) {
	r.mu.RLock()
	out := make([]favorites.Favorite, 0)
	for k, f := range r.byPair {
		if k.a == shelterID {
			out = append(out, f)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return newerFavorite(out[i], out[j]) })

	if startAfter != nil {
		cut := len(out)
		for i, f := range out {
			if newerFavorite(*startAfter, f) {
				cut = i
				break
			}
		}
		out = out[cut:]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *favoriteRepo) CountByShelter(ctx context.Context, shelterID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for k := range r.byPair {
		if k.a == shelterID {
			n++
		}
	}
	return n, nil
}

func (r *favoriteRepo) GetByID(ctx context.Context, id string) (favorites.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k, ok := r.byID[id]
	if !ok {
		return favorites.Favorite{}, favorites.ErrNotFound
	}
	return r.byPair[k], nil
}

func (r *favoriteRepo) DeleteByPet(ctx context.Context, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k, f := range r.byPair {
		if k.b == petID {
			delete(r.byPair, k)
			delete(r.byID, f.ID)
		}
	}
	return nil
}

func newerFavorite(a, b favorites.Favorite) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
