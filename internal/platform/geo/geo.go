package geo

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const EarthRadiusKm = 6371.0

var ErrInvalidPoint = errors.New("invalid geo point")

type Point struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

func (p Point) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

// ParsePoint acepta "lat,lon".
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Point{}, ErrInvalidPoint
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, ErrInvalidPoint
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, ErrInvalidPoint
	}
	p := Point{Latitude: lat, Longitude: lon}
	if !p.Valid() {
		return Point{}, ErrInvalidPoint
	}
	return p, nil
}

// DistanceKm: haversine sobre esfera de radio 6371 km, sin redondeo.
func DistanceKm(a, b Point) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
