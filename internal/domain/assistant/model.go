package assistant

import "time"

type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message es una línea del historial de chat de un shelter.
type Message struct {
	ID        string
	ShelterID string
	Sender    Sender
	Text      string
	CreatedAt time.Time
}
