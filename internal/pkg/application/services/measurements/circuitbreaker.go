package measurements

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/api-features/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/sony/gobreaker/v2"
)

type CircuitBreakerSettings struct {
	FailureThreshold uint32
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
}

func DefaultCircuitBreakerSettings() CircuitBreakerSettings {
	return CircuitBreakerSettings{
		FailureThreshold: 5,
		MaxRequests:      1,
		Interval:         1 * time.Minute,
		Timeout:          30 * time.Second,
	}
}

// NewCircuitBreaker wraps a client so that calls fail fast while the measurement store
// keeps failing. Missing datastreams and cancelled requests do not count as failures.
func NewCircuitBreaker(ctx context.Context, client Client, name string, settings CircuitBreakerSettings) Client {
	logger := logging.GetFromContext(ctx)

	cb := gobreaker.NewCircuitBreaker[*domain.Datastream](gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker changed state")
			observeBreakerState(name, to)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoSuchDatastream) || errors.Is(err, context.Canceled)
		},
	})

	observeBreakerState(name, cb.State())

	return &circuitBreakerClient{
		client: client,
		cb:     cb,
	}
}

type circuitBreakerClient struct {
	client Client
	cb     *gobreaker.CircuitBreaker[*domain.Datastream]
}

func (c *circuitBreakerClient) FetchDatastream(ctx context.Context, id string) (*domain.Datastream, error) {
	ds, err := c.cb.Execute(func() (*domain.Datastream, error) {
		ds, err := c.client.FetchDatastream(ctx, id)
		if err != nil && errors.Is(ctx.Err(), context.Canceled) && !errors.Is(err, context.Canceled) {
			err = fmt.Errorf("%w: %w", err, context.Canceled)
		}
		return ds, err
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: datastream %s: %w", ErrFetchFailed, id, err)
	}

	return ds, err
}
