package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"petster/internal/domain/pets"
	"petster/internal/domain/views"
)

type viewRepo struct {
	mu     sync.RWMutex
	byPair map[pairKey]views.View // (pet, shelter)
}

func NewViewRepo() views.Repository {
	return &viewRepo{
		byPair: make(map[pairKey]views.View),
	}
}

func (r *viewRepo) Upsert(ctx context.Context, v views.View) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.PetID == "" || v.ShelterID == "" {
		return false, errors.New("pet id and shelter id required")
	}
	k := pairKey{v.PetID, v.ShelterID}
	if cur, exists := r.byPair[k]; exists {
		cur.LastSeenAt = v.LastSeenAt
		r.byPair[k] = cur
		return false, nil
	}
	r.byPair[k] = v
	return true, nil
}

func (r *viewRepo) ListByPets(ctx context.Context, petIDs []string) ([]views.View, error) {
	if len(petIDs) > pets.MaxInValues {
		return nil, fmt.Errorf("%w: got %d ids", pets.ErrTooManyValues, len(petIDs))
	}

	want := make(map[string]struct{}, len(petIDs))
	for _, id := range petIDs {
		want[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]views.View, 0)
	for k, v := range r.byPair {
		if _, ok := want[k.a]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *viewRepo) DeleteByPet(ctx context.Context, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k := range r.byPair {
		if k.a == petID {
			delete(r.byPair, k)
		}
	}
	return nil
}
