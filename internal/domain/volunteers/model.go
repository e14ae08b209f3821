package volunteers

import (
	"time"

	"petster/internal/platform/geo"
)

// Volunteer publica mascotas; su ubicación es la que usa el geofence.
type Volunteer struct {
	ID          string
	Name        string
	Email       string
	PhoneNumber string
	Address     string

	// nil = sin coordenadas; sus mascotas quedan fuera de búsquedas por cercanía.
	Location *geo.Point

	CreatedAt time.Time
	UpdatedAt time.Time
}
