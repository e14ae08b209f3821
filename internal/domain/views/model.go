package views

import "time"

// View es una fila por (mascota, shelter). Volver a mirar solo actualiza LastSeenAt,
// así que viewCount = cantidad de shelters distintos.
type View struct {
	ID         string
	PetID      string
	ShelterID  string
	LastSeenAt time.Time
}
