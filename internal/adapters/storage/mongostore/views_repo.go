package mongostore

import (
	"context"
	"fmt"
	"time"

	"petster/internal/domain/pets"
	"petster/internal/domain/views"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type viewDoc struct {
	ID         string    `bson:"_id"`
	PetID      string    `bson:"pet_id"`
	ShelterID  string    `bson:"shelter_id"`
	LastSeenAt time.Time `bson:"last_seen_at"`
}

type ViewsRepo struct {
	coll *mongo.Collection
}

func NewViewsRepo(db *mongo.Database) *ViewsRepo {
	return &ViewsRepo{coll: db.Collection(viewsCollection)}
}

func (r *ViewsRepo) Upsert(ctx context.Context, v views.View) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "pet_id", Value: v.PetID}, {Key: "shelter_id", Value: v.ShelterID}},
		bson.D{
			{Key: "$set", Value: bson.D{{Key: "last_seen_at", Value: v.LastSeenAt}}},
			{Key: "$setOnInsert", Value: bson.D{{Key: "_id", Value: v.ID}}},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		// dos upserts concurrentes: el perdedor choca con el índice único
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("upsert view: %w", err)
	}
	return res.UpsertedCount == 1, nil
}

func (r *ViewsRepo) ListByPets(ctx context.Context, petIDs []string) ([]views.View, error) {
	if len(petIDs) == 0 {
		return []views.View{}, nil
	}
	if len(petIDs) > pets.MaxInValues {
		return nil, fmt.Errorf("%w: got %d ids", pets.ErrTooManyValues, len(petIDs))
	}

	cur, err := r.coll.Find(ctx, bson.D{{Key: "pet_id", Value: bson.D{{Key: "$in", Value: petIDs}}}})
	if err != nil {
		return nil, fmt.Errorf("list views: %w", err)
	}
	var docs []viewDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list views: %w", err)
	}

	out := make([]views.View, 0, len(docs))
	for _, d := range docs {
		out = append(out, views.View{ID: d.ID, PetID: d.PetID, ShelterID: d.ShelterID, LastSeenAt: d.LastSeenAt})
	}
	return out, nil
}

func (r *ViewsRepo) DeleteByPet(ctx context.Context, petID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{{Key: "pet_id", Value: petID}}); err != nil {
		return fmt.Errorf("delete views by pet: %w", err)
	}
	return nil
}
