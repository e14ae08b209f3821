package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Pet, error)

	// GetMany trae hasta MaxInValues mascotas por id; los ids inexistentes se omiten.
	GetMany(ctx context.Context, ids []string) ([]Pet, error)

	List(ctx context.Context, q ListQuery) ([]Pet, error)
	Count(ctx context.Context, q CountQuery) (int, error)
}
