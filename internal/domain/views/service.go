package views

import (
	"context"
	"errors"
	"strings"
	"time"

	"petster/internal/platform/logger"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo  Repository
	cache CountCache
	log   logger.Logger
	now   func() time.Time
	gens  generations
}

// NewService: cache puede ser nil (sin cache).
func NewService(repo Repository, cache CountCache, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
		now:   time.Now,
	}
}

// Record registra que shelterID miró petID. Repetir solo refresca el timestamp.
func (s *Service) Record(ctx context.Context, petID, shelterID string) error {
	petID = strings.TrimSpace(petID)
	shelterID = strings.TrimSpace(shelterID)
	if petID == "" || shelterID == "" {
		return ErrInvalidInput
	}

	created, err := s.repo.Upsert(ctx, View{
		ID:         uuid.NewString(),
		PetID:      petID,
		ShelterID:  shelterID,
		LastSeenAt: s.now(),
	})
	if err != nil {
		return err
	}
	if created {
		s.invalidate(ctx, petID)
	}
	return nil
}

// DeleteByPet: cascada al borrar una mascota.
func (s *Service) DeleteByPet(ctx context.Context, petID string) error {
	if err := s.repo.DeleteByPet(ctx, petID); err != nil {
		return err
	}
	s.invalidate(ctx, petID)
	return nil
}

func (s *Service) invalidate(ctx context.Context, petID string) {
	if s.cache == nil {
		return
	}
	s.gens.bump(petID)
	if err := s.cache.Invalidate(ctx, petID); err != nil {
		s.log.Warn("view count cache invalidate failed", map[string]any{"pet_id": petID, "err": err})
	}
}
