package postgres

import (
	"context"
	"fmt"
	"time"

	"petster/internal/domain/assistant"

	"github.com/jmoiron/sqlx"
)

type messageRow struct {
	ID        string    `db:"id"`
	ShelterID string    `db:"shelter_id"`
	Sender    string    `db:"sender"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

type AssistantRepo struct {
	db *sqlx.DB
}

func NewAssistantRepo(db *sqlx.DB) *AssistantRepo {
	return &AssistantRepo{db: db}
}

func (r *AssistantRepo) Append(ctx context.Context, msgs ...assistant.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	rows := make([]messageRow, 0, len(msgs))
	for _, m := range msgs {
		rows = append(rows, messageRow{
			ID:        m.ID,
			ShelterID: m.ShelterID,
			Sender:    string(m.Sender),
			Message:   m.Text,
			CreatedAt: m.CreatedAt,
		})
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO assistant_messages (id, shelter_id, sender, message, created_at)
		VALUES (:id, :shelter_id, :sender, :message, :created_at)
	`, rows)
	if err != nil {
		return fmt.Errorf("insert assistant messages: %w", err)
	}
	return nil
}

func (r *AssistantRepo) ListByShelter(ctx context.Context, shelterID string) ([]assistant.Message, error) {
	var rows []messageRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, shelter_id, sender, message, created_at
		FROM assistant_messages
		WHERE shelter_id = $1
		ORDER BY created_at ASC, id ASC
	`, shelterID)
	if err != nil {
		return nil, fmt.Errorf("list assistant messages: %w", err)
	}

	out := make([]assistant.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, assistant.Message{
			ID:        row.ID,
			ShelterID: row.ShelterID,
			Sender:    assistant.Sender(row.Sender),
			Text:      row.Message,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}
