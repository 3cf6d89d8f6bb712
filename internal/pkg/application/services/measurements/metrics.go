package measurements

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sony/gobreaker/v2"
)

var (
	fetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "measurement_fetch_total",
			Help: "Total number of datastream fetches from the measurement store",
		},
		[]string{"backend", "outcome"},
	)

	fetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "measurement_fetch_duration_seconds",
			Help:    "Duration of datastream fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend"},
	)

	circuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNoSuchDatastream):
		return "not_found"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return "error"
	}
}

func observeFetch(backend string, start time.Time, err error) {
	fetchTotal.WithLabelValues(backend, outcome(err)).Inc()
	fetchDuration.WithLabelValues(backend).Observe(time.Since(start).Seconds())
}

func observeBreakerState(name string, state gobreaker.State) {
	circuitBreakerState.WithLabelValues(name).Set(float64(state))
}
