package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"petster/internal/domain/pets"
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = clonePet(p)
	return nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; !exists {
		return fmt.Errorf("update pet %s: %w", p.ID, pets.ErrNotFound)
	}
	r.byID[p.ID] = clonePet(p)
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return fmt.Errorf("delete pet %s: %w", id, pets.ErrNotFound)
	}
	delete(r.byID, id)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return clonePet(p), nil
}

// GetMany respeta el mismo tope de valores que un "in" del store real.
func (r *petRepo) GetMany(ctx context.Context, ids []string) ([]pets.Pet, error) {
	if len(ids) > pets.MaxInValues {
		return nil, fmt.Errorf("%w: got %d ids", pets.ErrTooManyValues, len(ids))
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			out = append(out, clonePet(p))
		}
	}
	return out, nil
}

func (r *petRepo) List(ctx context.Context, q pets.ListQuery) ([]pets.Pet, error) {
	if err := pets.ValidatePredicates(q.Predicates); err != nil {
		return nil, err
	}

	matched := r.matching(q.Predicates)
	pets.SortNewestFirst(matched)

	if q.StartAfter != nil {
		cut := len(matched)
		for i, p := range matched {
			if pets.Newer(*q.StartAfter, p) {
				cut = i
				break
			}
		}
		matched = matched[cut:]
	}

	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func (r *petRepo) Count(ctx context.Context, q pets.CountQuery) (int, error) {
	if err := pets.ValidatePredicates(q.Predicates); err != nil {
		return 0, err
	}
	return len(r.matching(q.Predicates)), nil
}

func (r *petRepo) matching(preds []pets.Predicate) []pets.Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if pets.MatchesAll(p, preds) {
			out = append(out, clonePet(p))
		}
	}
	return out
}

// clonePet evita que el caller comparta slices con el store.
func clonePet(p pets.Pet) pets.Pet {
	p.Disabilities = append([]string(nil), p.Disabilities...)
	p.Behaviours = append([]string(nil), p.Behaviours...)
	p.Images = append([]string(nil), p.Images...)
	if p.AdoptionFee != nil {
		fee := *p.AdoptionFee
		p.AdoptionFee = &fee
	}
	return p
}
