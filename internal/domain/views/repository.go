package views

import "context"

type Repository interface {
	// Upsert por (PetID, ShelterID). created=false si la fila ya existía.
	Upsert(ctx context.Context, v View) (created bool, err error)

	// ListByPets: petIDs con a lo sumo pets.MaxInValues elementos.
	ListByPets(ctx context.Context, petIDs []string) ([]View, error)

	DeleteByPet(ctx context.Context, petID string) error
}

// CountCache guarda viewCount por mascota. Lo implementan adapters/cache (lru, redis).
type CountCache interface {
	// GetMany devuelve solo los ids presentes en cache.
	GetMany(ctx context.Context, petIDs []string) (map[string]int, error)
	SetMany(ctx context.Context, counts map[string]int) error
	Invalidate(ctx context.Context, petID string) error
}
