package mongostore

import (
	"context"
	"fmt"
	"time"

	"petster/internal/domain/assistant"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messageDoc struct {
	ID        string    `bson:"_id"`
	ShelterID string    `bson:"shelter_id"`
	Sender    string    `bson:"sender"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"created_at"`
}

type AssistantRepo struct {
	coll *mongo.Collection
}

func NewAssistantRepo(db *mongo.Database) *AssistantRepo {
	return &AssistantRepo{coll: db.Collection(messagesCollection)}
}

func (r *AssistantRepo) Append(ctx context.Context, msgs ...assistant.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	docs := make([]any, 0, len(msgs))
	for _, m := range msgs {
		docs = append(docs, messageDoc{
			ID:        m.ID,
			ShelterID: m.ShelterID,
			Sender:    string(m.Sender),
			Message:   m.Text,
			CreatedAt: m.CreatedAt,
		})
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert assistant messages: %w", err)
	}
	return nil
}

func (r *AssistantRepo) ListByShelter(ctx context.Context, shelterID string) ([]assistant.Message, error) {
	cur, err := r.coll.Find(ctx,
		bson.D{{Key: "shelter_id", Value: shelterID}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list assistant messages: %w", err)
	}
	var docs []messageDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list assistant messages: %w", err)
	}

	out := make([]assistant.Message, 0, len(docs))
	for _, d := range docs {
		out = append(out, assistant.Message{
			ID:        d.ID,
			ShelterID: d.ShelterID,
			Sender:    assistant.Sender(d.Sender),
			Text:      d.Message,
			CreatedAt: d.CreatedAt,
		})
	}
	return out, nil
}
