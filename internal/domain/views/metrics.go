package views

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "petster_viewcount_cache_hits_total",
		Help: "View counts servidos desde cache",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "petster_viewcount_cache_misses_total",
		Help: "View counts que fueron al store",
	})
)
