package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/Nazarious-ucu/weather-sms-webhook/internal/models"
	"github.com/sony/gobreaker"
)

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

// BreakerClient fails fast while the wrapped client keeps erroring.
type BreakerClient struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped client
}

func NewBreakerClient(name string, cfg BreakerConfig, wrapped client) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
	}
	return &BreakerClient{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerClient) Name() string {
	return b.name
}

func (b *BreakerClient) Fetch(ctx context.Context, coords models.Coordinates) (models.Forecast, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.Fetch(ctx, coords)
	})
	if err != nil {
		return models.Forecast{},
			fmt.Errorf("%s unavailable: %w", b.name, err)
	}
	res, ok := result.(models.Forecast)
	if !ok {
		return models.Forecast{},
			fmt.Errorf("%s returned unexpected result", b.name)
	}
	return res, nil
}
