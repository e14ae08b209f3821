package postgres

import (
	"context"
	"fmt"
	"time"

	"petster/internal/domain/pets"
	"petster/internal/domain/views"

	"github.com/jmoiron/sqlx"
)

type viewRow struct {
	ID         string    `db:"id"`
	PetID      string    `db:"pet_id"`
	ShelterID  string    `db:"shelter_id"`
	LastSeenAt time.Time `db:"last_seen_at"`
}

type ViewsRepo struct {
	db *sqlx.DB
}

func NewViewsRepo(db *sqlx.DB) *ViewsRepo {
	return &ViewsRepo{db: db}
}

// Upsert: xmax = 0 solo en filas recién insertadas.
func (r *ViewsRepo) Upsert(ctx context.Context, v views.View) (bool, error) {
	var inserted bool
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO pet_views (id, pet_id, shelter_id, last_seen_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (pet_id, shelter_id) DO UPDATE SET last_seen_at = EXCLUDED.last_seen_at
		RETURNING (xmax = 0) AS inserted
	`, v.ID, v.PetID, v.ShelterID, v.LastSeenAt).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("upsert view: %w", err)
	}
	return inserted, nil
}

func (r *ViewsRepo) ListByPets(ctx context.Context, petIDs []string) ([]views.View, error) {
	if len(petIDs) == 0 {
		return []views.View{}, nil
	}
	if len(petIDs) > pets.MaxInValues {
		return nil, fmt.Errorf("%w: got %d ids", pets.ErrTooManyValues, len(petIDs))
	}

	query, args, err := sqlx.In(
		`SELECT id, pet_id, shelter_id, last_seen_at FROM pet_views WHERE pet_id IN (?)`, petIDs)
	if err != nil {
		return nil, err
	}

	var rows []viewRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list views: %w", err)
	}
	out := make([]views.View, 0, len(rows))
	for _, row := range rows {
		out = append(out, views.View{
			ID:         row.ID,
			PetID:      row.PetID,
			ShelterID:  row.ShelterID,
			LastSeenAt: row.LastSeenAt,
		})
	}
	return out, nil
}

func (r *ViewsRepo) DeleteByPet(ctx context.Context, petID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pet_views WHERE pet_id = $1`, petID); err != nil {
		return fmt.Errorf("delete views by pet: %w", err)
	}
	return nil
}
