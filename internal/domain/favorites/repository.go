package favorites

import "context"

type Repository interface {
	// Add es idempotente por (ShelterID, PetID): si ya existe devuelve created=false.
	Add(ctx context.Context, f Favorite) (created bool, err error)
	Remove(ctx context.Context, shelterID, petID string) (removed bool, err error)
	Exists(ctx context.Context, shelterID, petID string) (bool, error)

	// ListPetIDsByShelter: todas las mascotas favoritas del shelter (para anotar listados).
	ListPetIDsByShelter(ctx context.Context, shelterID string) ([]string, error)

	// ListByShelter ordena por CreatedAt desc, ID desc y arranca después de startAfter.
	ListByShelter(ctx context.Context, shelterID string, limit int, startAfter *Favorite) ([]Favorite, error)
	CountByShelter(ctx context.Context, shelterID string) (int, error)
	GetByID(ctx context.Context, id string) (Favorite, error)

	DeleteByPet(ctx context.Context, petID string) error
}
