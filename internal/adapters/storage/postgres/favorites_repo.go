package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"petster/internal/domain/favorites"

	"github.com/jmoiron/sqlx"
)

type favoriteRow struct {
	ID        string    `db:"id"`
	ShelterID string    `db:"shelter_id"`
	PetID     string    `db:"pet_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (r favoriteRow) toDomain() favorites.Favorite {
	return favorites.Favorite{
		ID:        r.ID,
		ShelterID: r.ShelterID,
		PetID:     r.PetID,
		CreatedAt: r.CreatedAt,
	}
}

type FavoritesRepo struct {
	db *sqlx.DB
}

func NewFavoritesRepo(db *sqlx.DB) *FavoritesRepo {
	return &FavoritesRepo{db: db}
}

// Add se apoya en UNIQUE (shelter_id, pet_id): el conflicto es el no-op.
func (r *FavoritesRepo) Add(ctx context.Context, f favorites.Favorite) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO favorites (id, shelter_id, pet_id, created_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (shelter_id, pet_id) DO NOTHING
	`, f.ID, f.ShelterID, f.PetID, f.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *FavoritesRepo) Remove(ctx context.Context, shelterID, petID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE shelter_id = $1 AND pet_id = $2`, shelterID, petID)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *FavoritesRepo) Exists(ctx context.Context, shelterID, petID string) (bool, error) {
	var ok bool
	err := r.db.GetContext(ctx, &ok,
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE shelter_id = $1 AND pet_id = $2)`, shelterID, petID)
	if err != nil {
		return false, fmt.Errorf("favorite exists: %w", err)
	}
	return ok, nil
}

func (r *FavoritesRepo) ListPetIDsByShelter(ctx context.Context, shelterID string) ([]string, error) {
	ids := []string{}
	if err := r.db.SelectContext(ctx, &ids,
		`SELECT pet_id FROM favorites WHERE shelter_id = $1`, shelterID); err != nil {
		return nil, fmt.Errorf("list favorite pet ids: %w", err)
	}
	return ids, nil
}

func (r *FavoritesRepo) ListByShelter(ctx context.Context, shelterID string, limit int, startAfter *favorites.Favorite) ([]favorites.Favorite, error) {
	query := `SELECT id, shelter_id, pet_id, created_at FROM favorites WHERE shelter_id = $1`
	args := []any{shelterID}
	if startAfter != nil {
		query += ` AND (created_at, id) < ($2, $3)`
		args = append(args, startAfter.CreatedAt, startAfter.ID)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}

	var rows []favoriteRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	out := make([]favorites.Favorite, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FavoritesRepo) CountByShelter(ctx context.Context, shelterID string) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM favorites WHERE shelter_id = $1`, shelterID); err != nil {
		return 0, fmt.Errorf("count favorites: %w", err)
	}
	return n, nil
}

func (r *FavoritesRepo) GetByID(ctx context.Context, id string) (favorites.Favorite, error) {
	var row favoriteRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, shelter_id, pet_id, created_at FROM favorites WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return favorites.Favorite{}, favorites.ErrNotFound
		}
		return favorites.Favorite{}, fmt.Errorf("get favorite: %w", err)
	}
	return row.toDomain(), nil
}

func (r *FavoritesRepo) DeleteByPet(ctx context.Context, petID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE pet_id = $1`, petID); err != nil {
		return fmt.Errorf("delete favorites by pet: %w", err)
	}
	return nil
}
