package volunteers

import "context"

type Repository interface {
	Upsert(ctx context.Context, v Volunteer) error
	GetByID(ctx context.Context, id string) (Volunteer, error)

	// GetMany: hasta pets.MaxInValues ids por llamada; los inexistentes se omiten.
	GetMany(ctx context.Context, ids []string) ([]Volunteer, error)
}
