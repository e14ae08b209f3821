package discovery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petster_discovery_duration_seconds",
			Help:    "Duración del pipeline de discovery",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"geofence"},
	)

	geofenceDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "petster_discovery_geofence_dropped_total",
		Help: "Mascotas descartadas por el geofence (fuera de radio o sin ubicación)",
	})
)
