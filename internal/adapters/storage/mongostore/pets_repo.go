package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petster/internal/domain/pets"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type petDoc struct {
	ID           string    `bson:"_id"`
	VolunteerID  string    `bson:"volunteer_id"`
	Name         string    `bson:"name"`
	Category     string    `bson:"category"`
	Breed        string    `bson:"breed"`
	Color        string    `bson:"color"`
	Age          int       `bson:"age"`
	AgeUnit      string    `bson:"age_unit"`
	Gender       string    `bson:"gender"`
	Weight       float64   `bson:"weight"`
	WeightUnit   string    `bson:"weight_unit"`
	Size         string    `bson:"size"`
	AdoptionFee  *int64    `bson:"adoption_fee"`
	Vaccinated   bool      `bson:"vaccinated"`
	SpecialDiet  string    `bson:"special_diet"`
	Disabilities []string  `bson:"disabilities"`
	Behaviours   []string  `bson:"behaviours"`
	Images       []string  `bson:"images"`
	CoverImage   string    `bson:"cover_image"`
	Adopted      bool      `bson:"adopted"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func toPetDoc(p pets.Pet) petDoc {
	return petDoc{
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
		AdoptionFee:  p.AdoptionFee,
		Vaccinated:   p.Vaccinated,
		SpecialDiet:  p.SpecialDiet,
		Disabilities: nonNil(p.Disabilities),
		Behaviours:   nonNil(p.Behaviours),
		Images:       nonNil(p.Images),
		CoverImage:   p.CoverImage,
		Adopted:      p.Adopted,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (d petDoc) toDomain() pets.Pet {
	return pets.Pet{
		ID:           d.ID,
		VolunteerID:  d.VolunteerID,
		Name:         d.Name,
		Category:     pets.Category(d.Category),
		Breed:        d.Breed,
		Color:        d.Color,
		Age:          d.Age,
		AgeUnit:      pets.AgeUnit(d.AgeUnit),
		Gender:       pets.Gender(d.Gender),
		Weight:       d.Weight,
		WeightUnit:   pets.WeightUnit(d.WeightUnit),
		Size:         pets.Size(d.Size),
		AdoptionFee:  d.AdoptionFee,
		Vaccinated:   d.Vaccinated,
		SpecialDiet:  d.SpecialDiet,
		Disabilities: nonNil(d.Disabilities),
		Behaviours:   nonNil(d.Behaviours),
		Images:       nonNil(d.Images),
		CoverImage:   d.CoverImage,
		Adopted:      d.Adopted,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

type PetsRepo struct {
	coll *mongo.Collection
}

func NewPetsRepo(db *mongo.Database) *PetsRepo {
	return &PetsRepo{coll: db.Collection(petsCollection)}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	if _, err := r.coll.InsertOne(ctx, toPetDoc(p)); err != nil {
		return fmt.Errorf("insert pet: %w", err)
	}
	return nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: p.ID}}, toPetDoc(p))
	if err != nil {
		return fmt.Errorf("update pet: %w", err)
	}
	if res.MatchedCount == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	if res.DeletedCount == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	var doc petDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("get pet: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PetsRepo) GetMany(ctx context.Context, ids []string) ([]pets.Pet, error) {
	if len(ids) == 0 {
		return []pets.Pet{}, nil
	}
	if len(ids) > pets.MaxInValues {
		return nil, fmt.Errorf("%w: got %d ids", pets.ErrTooManyValues, len(ids))
	}

	var docs []petDoc
	if err := r.find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}, nil, &docs); err != nil {
		return nil, fmt.Errorf("get pets: %w", err)
	}

	byID := make(map[string]pets.Pet, len(docs))
	for _, d := range docs {
		byID[d.ID] = d.toDomain()
	}
	out := make([]pets.Pet, 0, len(docs))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PetsRepo) List(ctx context.Context, q pets.ListQuery) ([]pets.Pet, error) {
	filter, err := buildFilter(q.Predicates, q.StartAfter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	var docs []petDoc
	if err := r.find(ctx, filter, opts, &docs); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	out := make([]pets.Pet, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *PetsRepo) Count(ctx context.Context, q pets.CountQuery) (int, error) {
	filter, err := buildFilter(q.Predicates, nil)
	if err != nil {
		return 0, err
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count pets: %w", err)
	}
	return int(n), nil
}

func (r *PetsRepo) find(ctx context.Context, filter any, opts *options.FindOptions, out any) error {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.coll.Find(ctx, filter, opts)
	} else {
		cur, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}
