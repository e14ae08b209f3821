package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petster/internal/domain/pets"
	"petster/internal/domain/volunteers"
	"petster/internal/platform/geo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type volunteerDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Email       string    `bson:"email"`
	PhoneNumber string    `bson:"phone_number"`
	Address     string    `bson:"address"`
	Latitude    *float64  `bson:"latitude"`
	Longitude   *float64  `bson:"longitude"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d volunteerDoc) toDomain() volunteers.Volunteer {
	v := volunteers.Volunteer{
		ID:          d.ID,
		Name:        d.Name,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Address:     d.Address,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.Latitude != nil && d.Longitude != nil {
		v.Location = &geo.Point{Latitude: *d.Latitude, Longitude: *d.Longitude}
	}
	return v
}

type VolunteersRepo struct {
	coll *mongo.Collection
}

func NewVolunteersRepo(db *mongo.Database) *VolunteersRepo {
	return &VolunteersRepo{coll: db.Collection(volunteersCollection)}
}

// Upsert conserva created_at del primer alta.
func (r *VolunteersRepo) Upsert(ctx context.Context, v volunteers.Volunteer) error {
	var lat, lon *float64
	if v.Location != nil {
		la, lo := v.Location.Latitude, v.Location.Longitude
		lat, lon = &la, &lo
	}

	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "name", Value: v.Name},
			{Key: "email", Value: v.Email},
			{Key: "phone_number", Value: v.PhoneNumber},
			{Key: "address", Value: v.Address},
			{Key: "latitude", Value: lat},
			{Key: "longitude", Value: lon},
			{Key: "updated_at", Value: v.UpdatedAt},
		}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "created_at", Value: v.CreatedAt}}},
	}
	_, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: v.ID}}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert volunteer: %w", err)
	}
	return nil
}

func (r *VolunteersRepo) GetByID(ctx context.Context, id string) (volunteers.Volunteer, error) {
	var doc volunteerDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return volunteers.Volunteer{}, volunteers.ErrNotFound
		}
		return volunteers.Volunteer{}, fmt.Errorf("get volunteer: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *VolunteersRepo) GetMany(ctx context.Context, ids []string) ([]volunteers.Volunteer, error) {
	if len(ids) == 0 {
		return []volunteers.Volunteer{}, nil
	}
	if len(ids) > pets.MaxInValues {
		return nil, fmt.Errorf("%w: got %d ids", pets.ErrTooManyValues, len(ids))
	}

	cur, err := r.coll.Find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return nil, fmt.Errorf("get volunteers: %w", err)
	}
	var docs []volunteerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("get volunteers: %w", err)
	}

	out := make([]volunteers.Volunteer, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
