package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"petster/internal/domain/pets"
	"petster/internal/domain/volunteers"
)

type volunteerRepo struct {
	mu   sync.RWMutex
	byID map[string]volunteers.Volunteer
}

func NewVolunteerRepo() volunteers.Repository {
	return &volunteerRepo{
		byID: make(map[string]volunteers.Volunteer),
	}
}

func (r *volunteerRepo) Upsert(ctx context.Context, v volunteers.Volunteer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("volunteer id required")
	}
	r.byID[v.ID] = cloneVolunteer(v)
	return nil
}

func (r *volunteerRepo) GetByID(ctx context.Context, id string) (volunteers.Volunteer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return volunteers.Volunteer{}, volunteers.ErrNotFound
	}
	return cloneVolunteer(v), nil
}

func (r *volunteerRepo) GetMany(ctx context.Context, ids []string) ([]volunteers.Volunteer, error) {
	if len(ids) > pets.MaxInValues {
		return nil, fmt.Errorf("%w: got %d ids", pets.ErrTooManyValues, len(ids))
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]volunteers.Volunteer, 0, len(ids))
	for _, id := range ids {
		if v, ok := r.byID[id]; ok {
			out = append(out, cloneVolunteer(v))
		}
	}
	return out, nil
}

func cloneVolunteer(v volunteers.Volunteer) volunteers.Volunteer {
	if v.Location != nil {
		loc := *v.Location
		v.Location = &loc
	}
	return v
}
