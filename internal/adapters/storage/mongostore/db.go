package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	petsCollection       = "pets"
	volunteersCollection = "volunteers"
	favoritesCollection  = "favorites"
	viewsCollection      = "pet_views"
	messagesCollection   = "assistant_messages"
)

// Connect abre el cliente y verifica la conexión contra el primario.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, client.Database(database), nil
}

// EnsureIndexes crea los índices de los que dependen los repos:
// los únicos (shelter_id, pet_id) y (pet_id, shelter_id) garantizan las
// semánticas de toggle y upsert bajo concurrencia.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		petsCollection: {
			{Keys: bson.D{{Key: "adopted", Value: 1}, {Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
			{Keys: bson.D{{Key: "volunteer_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		favoritesCollection: {
			{
				Keys:    bson.D{{Key: "shelter_id", Value: 1}, {Key: "pet_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "shelter_id", Value: 1}, {Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}},
		},
		viewsCollection: {
			{
				Keys:    bson.D{{Key: "pet_id", Value: 1}, {Key: "shelter_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		messagesCollection: {
			{Keys: bson.D{{Key: "shelter_id", Value: 1}, {Key: "created_at", Value: 1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("indexes %s: %w", coll, err)
		}
	}
	return nil
}
