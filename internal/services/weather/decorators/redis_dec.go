package decorators

import (
	"context"

	"github.com/Nazarious-ucu/weather-sms-webhook/internal/models"
	"github.com/rs/zerolog"
)

type forecastGetterService interface {
	GetForecast(ctx context.Context, coords models.Coordinates) (models.Forecast, error)
}

type cacheClient[T any] interface {
	Set(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string) (T, error)
}

// CachedService serves forecasts from the cache and fills it on a miss.
// Cache failures never fail the lookup.
type CachedService struct {
	inner  forecastGetterService
	cache  cacheClient[models.Forecast]
	logger zerolog.Logger
}

func NewCachedService(
	inner forecastGetterService,
	cache cacheClient[models.Forecast],
	logger zerolog.Logger,
) *CachedService {
	logger = logger.With().Str("component", "CachedService").Logger()
	return &CachedService{inner: inner, cache: cache, logger: logger}
}

func (s *CachedService) GetForecast(ctx context.Context, coords models.Coordinates) (models.Forecast, error) {
	key := "forecast:" + coords.CacheKey()

	data, err := s.cache.Get(ctx, key)
	if err == nil {
		s.logger.Info().
			Ctx(ctx).
			Str("key", key).
			Msg("cache hit")
		return data, nil
	}
	s.logger.Debug().
		Ctx(ctx).
		Str("key", key).
		Err(err).
		Msg("cache miss")

	data, err = s.inner.GetForecast(ctx, coords)
	if err != nil {
		return models.Forecast{}, err
	}

	if err := s.cache.Set(ctx, key, data); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("key", key).
			Err(err).
			Msg("cache set failed")
	}

	return data, nil
}
