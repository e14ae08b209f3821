package assistant

import "context"

type Repository interface {
	// Append guarda los mensajes en orden; CreatedAt ya viene seteado.
	Append(ctx context.Context, msgs ...Message) error

	// ListByShelter ordena por CreatedAt asc.
	ListByShelter(ctx context.Context, shelterID string) ([]Message, error)
}
