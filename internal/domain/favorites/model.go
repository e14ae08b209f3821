package favorites

import "time"

// Favorite: a lo sumo una fila por (ShelterID, PetID); lo garantiza el store.
type Favorite struct {
	ID        string
	ShelterID string
	PetID     string
	CreatedAt time.Time
}
