package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"petster/internal/domain/pets"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
)

const petsTable = "pets"

var dialect = goqu.Dialect("postgres")

var petColumns = []any{
	"id", "volunteer_id", "name", "category", "breed", "color",
	"age", "age_unit", "gender", "weight", "weight_unit", "size",
	"adoption_fee", "vaccinated", "special_diet",
	"disabilities", "behaviours", "images", "cover_image",
	"adopted", "created_at", "updated_at",
}

// columnFor mapea los campos filtrables del dominio a columnas.
var columnFor = map[pets.Field]string{
	pets.FieldID:          "id",
	pets.FieldVolunteerID: "volunteer_id",
	pets.FieldCategory:    "category",
	pets.FieldGender:      "gender",
	pets.FieldSize:        "size",
	pets.FieldAdoptionFee: "adoption_fee",
	pets.FieldVaccinated:  "vaccinated",
	pets.FieldAdopted:     "adopted",
}

type petRow struct {
	ID           string        `db:"id"`
	VolunteerID  string        `db:"volunteer_id"`
	Name         string        `db:"name"`
	Category     string        `db:"category"`
	Breed        string        `db:"breed"`
	Color        string        `db:"color"`
	Age          int           `db:"age"`
	AgeUnit      string        `db:"age_unit"`
	Gender       string        `db:"gender"`
	Weight       float64       `db:"weight"`
	WeightUnit   string        `db:"weight_unit"`
	Size         string        `db:"size"`
	AdoptionFee  sql.NullInt64 `db:"adoption_fee"`
	Vaccinated   bool          `db:"vaccinated"`
	SpecialDiet  string        `db:"special_diet"`
	Disabilities stringList    `db:"disabilities"`
	Behaviours   stringList    `db:"behaviours"`
	Images       stringList    `db:"images"`
	CoverImage   string        `db:"cover_image"`
	Adopted      bool          `db:"adopted"`
	CreatedAt    time.Time     `db:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
}

func toPetRow(p pets.Pet) petRow {
	row := petRow{
		ID:           p.ID,
		VolunteerID:  p.VolunteerID,
		Name:         p.Name,
		Category:     string(p.Category),
		Breed:        p.Breed,
		Color:        p.Color,
		Age:          p.Age,
		AgeUnit:      string(p.AgeUnit),
		Gender:       string(p.Gender),
		Weight:       p.Weight,
		WeightUnit:   string(p.WeightUnit),
		Size:         string(p.Size),
		Vaccinated:   p.Vaccinated,
		SpecialDiet:  p.SpecialDiet,
		Disabilities: stringList(p.Disabilities),
		Behaviours:   stringList(p.Behaviours),
		Images:       stringList(p.Images),
		CoverImage:   p.CoverImage,
		Adopted:      p.Adopted,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.AdoptionFee != nil {
		row.AdoptionFee = sql.NullInt64{Int64: *p.AdoptionFee, Valid: true}
	}
	return row
}

func (r petRow) toDomain() pets.Pet {
	p := pets.Pet{
		ID:           r.ID,
		VolunteerID:  r.VolunteerID,
		Name:         r.Name,
		Category:     pets.Category(r.Category),
		Breed:        r.Breed,
		Color:        r.Color,
		Age:          r.Age,
		AgeUnit:      pets.AgeUnit(r.AgeUnit),
		Gender:       pets.Gender(r.Gender),
		Weight:       r.Weight,
		WeightUnit:   pets.WeightUnit(r.WeightUnit),
		Size:         pets.Size(r.Size),
		Vaccinated:   r.Vaccinated,
		SpecialDiet:  r.SpecialDiet,
		Disabilities: []string(r.Disabilities),
		Behaviours:   []string(r.Behaviours),
		Images:       []string(r.Images),
		CoverImage:   r.CoverImage,
		Adopted:      r.Adopted,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.AdoptionFee.Valid {
		fee := r.AdoptionFee.Int64
		p.AdoptionFee = &fee
	}
	return p
}

type PetsRepo struct {
	db *sqlx.DB
}

func NewPetsRepo(db *sqlx.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO pets (
			id, volunteer_id, name, category, breed, color,
			age, age_unit, gender, weight, weight_unit, size,
			adoption_fee, vaccinated, special_diet,
			disabilities, behaviours, images, cover_image,
			adopted, created_at, updated_at
		) VALUES (
			:id, :volunteer_id, :name, :category, :breed, :color,
			:age, :age_unit, :gender, :weight, :weight_unit, :size,
			:adoption_fee, :vaccinated, :special_diet,
			:disabilities, :behaviours, :images, :cover_image,
			:adopted, :created_at, :updated_at
		)
	`, toPetRow(p))
	if err != nil {
		return fmt.Errorf("insert pet: %w", err)
	}
	return nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE pets
		SET
			volunteer_id = :volunteer_id,
			name = :name,
			category = :category,
			breed = :breed,
			color = :color,
			age = :age,
			age_unit = :age_unit,
			gender = :gender,
			weight = :weight,
			weight_unit = :weight_unit,
			size = :size,
			adoption_fee = :adoption_fee,
			vaccinated = :vaccinated,
			special_diet = :special_diet,
			disabilities = :disabilities,
			behaviours = :behaviours,
			images = :images,
			cover_image = :cover_image,
			adopted = :adopted,
			updated_at = :updated_at
		WHERE id = :id
	`, toPetRow(p))
	if err != nil {
		return fmt.Errorf("update pet: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	query, args, err := dialect.From(petsTable).Prepared(true).
		Select(petColumns...).
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return pets.Pet{}, err
	}

	var row petRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("get pet: %w", err)
	}
	return row.toDomain(), nil
}

func (r *PetsRepo) GetMany(ctx context.Context, ids []string) ([]pets.Pet, error) {
	if len(ids) == 0 {
		return []pets.Pet{}, nil
	}
	if len(ids) > pets.MaxInValues {
		return nil, fmt.Errorf("%w: got %d ids", pets.ErrTooManyValues, len(ids))
	}

	query, args, err := dialect.From(petsTable).Prepared(true).
		Select(petColumns...).
		Where(goqu.C("id").In(ids)).
		ToSQL()
	if err != nil {
		return nil, err
	}

	var rows []petRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get pets: %w", err)
	}

	byID := make(map[string]pets.Pet, len(rows))
	for _, row := range rows {
		byID[row.ID] = row.toDomain()
	}
	out := make([]pets.Pet, 0, len(rows))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PetsRepo) List(ctx context.Context, q pets.ListQuery) ([]pets.Pet, error) {
	query, args, err := BuildListSQL(q)
	if err != nil {
		return nil, err
	}

	var rows []petRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	out := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PetsRepo) Count(ctx context.Context, q pets.CountQuery) (int, error) {
	query, args, err := BuildCountSQL(q)
	if err != nil {
		return 0, err
	}

	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("count pets: %w", err)
	}
	return n, nil
}

// BuildListSQL traduce la ListQuery: predicados AND, orden created_at desc / id desc
// y keyset (created_at, id) < (cursor) para el start-after.
func BuildListSQL(q pets.ListQuery) (string, []any, error) {
	where, err := whereFor(q.Predicates)
	if err != nil {
		return "", nil, err
	}
	if q.StartAfter != nil {
		t, id := q.StartAfter.CreatedAt, q.StartAfter.ID
		where = append(where, goqu.Or(
			goqu.C("created_at").Lt(t),
			goqu.And(goqu.C("created_at").Eq(t), goqu.C("id").Lt(id)),
		))
	}

	ds := dialect.From(petsTable).Prepared(true).
		Select(petColumns...).
		Where(where...).
		Order(goqu.C("created_at").Desc(), goqu.C("id").Desc())
	if q.Limit > 0 {
		ds = ds.Limit(uint(q.Limit))
	}
	return ds.ToSQL()
}

func BuildCountSQL(q pets.CountQuery) (string, []any, error) {
	where, err := whereFor(q.Predicates)
	if err != nil {
		return "", nil, err
	}
	return dialect.From(petsTable).Prepared(true).
		Select(goqu.COUNT(goqu.Star())).
		Where(where...).
		ToSQL()
}

func whereFor(preds []pets.Predicate) ([]exp.Expression, error) {
	if err := pets.ValidatePredicates(preds); err != nil {
		return nil, err
	}
	out := make([]exp.Expression, 0, len(preds))
	for _, p := range preds {
		e, err := predicateExpr(p)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func predicateExpr(p pets.Predicate) (exp.Expression, error) {
	col, ok := columnFor[p.Field]
	if !ok {
		return nil, fmt.Errorf("unsupported filter field %q", p.Field)
	}
	c := goqu.C(col)

	switch p.Op {
	case pets.OpEq:
		if p.Value == nil {
			return c.IsNull(), nil
		}
		return c.Eq(p.Value), nil
	case pets.OpLt:
		return c.Lt(p.Value), nil
	case pets.OpLte:
		return c.Lte(p.Value), nil
	case pets.OpGt:
		return c.Gt(p.Value), nil
	case pets.OpGte:
		return c.Gte(p.Value), nil
	case pets.OpIn:
		return c.In(p.Value), nil
	}
	return nil, fmt.Errorf("unsupported operator %q", p.Op)
}
