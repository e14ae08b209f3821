package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm(t *testing.T) {
	jakarta := Point{Latitude: -6.2088, Longitude: 106.8456}
	bandung := Point{Latitude: -6.9175, Longitude: 107.6191}

	assert.InDelta(t, 0, DistanceKm(jakarta, jakarta), 1e-9)
	assert.InDelta(t, 116.0, DistanceKm(jakarta, bandung), 2.0)
	assert.InDelta(t, DistanceKm(jakarta, bandung), DistanceKm(bandung, jakarta), 1e-9)

	// 1 grado de latitud ~ 111.19 km con R=6371
	assert.InDelta(t, 111.19, DistanceKm(Point{0, 0}, Point{1, 0}), 0.01)
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint(" -6.2, 106.8 ")
	require.NoError(t, err)
	assert.Equal(t, Point{Latitude: -6.2, Longitude: 106.8}, p)

	for _, in := range []string{"", "1", "a,b", "91,0", "0,181", "1,2,3"} {
		_, err := ParsePoint(in)
		assert.ErrorIs(t, err, ErrInvalidPoint, in)
	}
}
