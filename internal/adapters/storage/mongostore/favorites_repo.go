package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petster/internal/domain/favorites"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type favoriteDoc struct {
	ID        string    `bson:"_id"`
	ShelterID string    `bson:"shelter_id"`
	PetID     string    `bson:"pet_id"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d favoriteDoc) toDomain() favorites.Favorite {
	return favorites.Favorite{ID: d.ID, ShelterID: d.ShelterID, PetID: d.PetID, CreatedAt: d.CreatedAt}
}

type FavoritesRepo struct {
	coll *mongo.Collection
}

func NewFavoritesRepo(db *mongo.Database) *FavoritesRepo {
	return &FavoritesRepo{coll: db.Collection(favoritesCollection)}
}

// Add: el índice único (shelter_id, pet_id) convierte la carrera en duplicate key.
func (r *FavoritesRepo) Add(ctx context.Context, f favorites.Favorite) (bool, error) {
	_, err := r.coll.InsertOne(ctx, favoriteDoc{
		ID:        f.ID,
		ShelterID: f.ShelterID,
		PetID:     f.PetID,
		CreatedAt: f.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("insert favorite: %w", err)
	}
	return true, nil
}

func (r *FavoritesRepo) Remove(ctx context.Context, shelterID, petID string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, pairFilter(shelterID, petID))
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *FavoritesRepo) Exists(ctx context.Context, shelterID, petID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, pairFilter(shelterID, petID), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("favorite exists: %w", err)
	}
	return n > 0, nil
}

func (r *FavoritesRepo) ListPetIDsByShelter(ctx context.Context, shelterID string) ([]string, error) {
	cur, err := r.coll.Find(ctx,
		bson.D{{Key: "shelter_id", Value: shelterID}},
		options.Find().SetProjection(bson.D{{Key: "pet_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list favorite pet ids: %w", err)
	}
	var docs []favoriteDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list favorite pet ids: %w", err)
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.PetID)
	}
	return ids, nil
}

func (r *FavoritesRepo) ListByShelter(ctx context.Context, shelterID string, limit int, startAfter *favorites.Favorite) ([]favorites.Favorite, error) {
	filter := bson.D{{Key: "shelter_id", Value: shelterID}}
	if startAfter != nil {
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "created_at", Value: bson.D{{Key: "$lt", Value: startAfter.CreatedAt}}}},
			bson.D{
				{Key: "created_at", Value: startAfter.CreatedAt},
				{Key: "_id", Value: bson.D{{Key: "$lt", Value: startAfter.ID}}},
			},
		}})
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	var docs []favoriteDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	out := make([]favorites.Favorite, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *FavoritesRepo) CountByShelter(ctx context.Context, shelterID string) (int, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "shelter_id", Value: shelterID}})
	if err != nil {
		return 0, fmt.Errorf("count favorites: %w", err)
	}
	return int(n), nil
}

func (r *FavoritesRepo) GetByID(ctx context.Context, id string) (favorites.Favorite, error) {
	var doc favoriteDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return favorites.Favorite{}, favorites.ErrNotFound
		}
		return favorites.Favorite{}, fmt.Errorf("get favorite: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *FavoritesRepo) DeleteByPet(ctx context.Context, petID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{{Key: "pet_id", Value: petID}}); err != nil {
		return fmt.Errorf("delete favorites by pet: %w", err)
	}
	return nil
}

func pairFilter(shelterID, petID string) bson.D {
	return bson.D{{Key: "shelter_id", Value: shelterID}, {Key: "pet_id", Value: petID}}
}
