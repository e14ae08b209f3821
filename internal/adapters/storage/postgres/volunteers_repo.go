package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"petster/internal/domain/pets"
	"petster/internal/domain/volunteers"
	"petster/internal/platform/geo"

	"github.com/jmoiron/sqlx"
)

type volunteerRow struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Email       string          `db:"email"`
	PhoneNumber string          `db:"phone_number"`
	Address     string          `db:"address"`
	Latitude    sql.NullFloat64 `db:"latitude"`
	Longitude   sql.NullFloat64 `db:"longitude"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r volunteerRow) toDomain() volunteers.Volunteer {
	v := volunteers.Volunteer{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Latitude.Valid && r.Longitude.Valid {
		v.Location = &geo.Point{Latitude: r.Latitude.Float64, Longitude: r.Longitude.Float64}
	}
	return v
}

const volunteerSelect = `
	SELECT id, name, email, phone_number, address, latitude, longitude, created_at, updated_at
	FROM volunteers
`

type VolunteersRepo struct {
	db *sqlx.DB
}

func NewVolunteersRepo(db *sqlx.DB) *VolunteersRepo {
	return &VolunteersRepo{db: db}
}

func (r *VolunteersRepo) Upsert(ctx context.Context, v volunteers.Volunteer) error {
	var lat, lon sql.NullFloat64
	if v.Location != nil {
		lat = sql.NullFloat64{Float64: v.Location.Latitude, Valid: true}
		lon = sql.NullFloat64{Float64: v.Location.Longitude, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO volunteers (
			id, name, email, phone_number, address,
			latitude, longitude, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone_number = EXCLUDED.phone_number,
			address = EXCLUDED.address,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			updated_at = EXCLUDED.updated_at
	`,
		v.ID,
		v.Name,
		v.Email,
		v.PhoneNumber,
		v.Address,
		lat,
		lon,
		v.CreatedAt,
		v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert volunteer: %w", err)
	}
	return nil
}

func (r *VolunteersRepo) GetByID(ctx context.Context, id string) (volunteers.Volunteer, error) {
	var row volunteerRow
	if err := r.db.GetContext(ctx, &row, volunteerSelect+` WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return volunteers.Volunteer{}, volunteers.ErrNotFound
		}
		return volunteers.Volunteer{}, fmt.Errorf("get volunteer: %w", err)
	}
	return row.toDomain(), nil
}

func (r *VolunteersRepo) GetMany(ctx context.Context, ids []string) ([]volunteers.Volunteer, error) {
	if len(ids) == 0 {
		return []volunteers.Volunteer{}, nil
	}
	if len(ids) > pets.MaxInValues {
		return nil, fmt.Errorf("%w: got %d ids", pets.ErrTooManyValues, len(ids))
	}

	query, args, err := sqlx.In(volunteerSelect+` WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	var rows []volunteerRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get volunteers: %w", err)
	}
	out := make([]volunteers.Volunteer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
