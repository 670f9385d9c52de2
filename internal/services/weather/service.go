package weather

import (
	"context"
	"errors"
	"net/http"

	"github.com/Nazarious-ucu/weather-sms-webhook/internal/models"
	"github.com/rs/zerolog"
)

var errAllClientsFailed = errors.New("all weather API clients failed to fetch data")

type client interface {
	Name() string
	Fetch(ctx context.Context, coords models.Coordinates) (models.Forecast, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ServiceProvider asks each client in turn and returns the first forecast.
type ServiceProvider struct {
	logger  zerolog.Logger
	clients []client
}

func NewService(logger zerolog.Logger, clients ...client) *ServiceProvider {
	logger = logger.With().Str("component", "WeatherService").Logger()
	return &ServiceProvider{clients: clients, logger: logger}
}

func (s *ServiceProvider) GetForecast(ctx context.Context, coords models.Coordinates) (models.Forecast, error) {
	for _, cl := range s.clients {
		s.logger.Debug().
			Ctx(ctx).
			Str("client", cl.Name()).
			Float64("latitude", coords.Latitude).
			Float64("longitude", coords.Longitude).
			Msg("calling Fetch")

		data, err := cl.Fetch(ctx, coords)
		if err != nil {
			s.logger.Error().
				Ctx(ctx).
				Str("client", cl.Name()).
				Err(err).
				Msg("fetch failed")
			continue
		}

		s.logger.Info().
			Ctx(ctx).
			Str("client", cl.Name()).
			Msg("fetch succeeded")
		return data, nil
	}

	s.logger.Error().
		Ctx(ctx).
		Err(errAllClientsFailed).
		Msg("GetForecast giving up")
	return models.Forecast{}, errAllClientsFailed
}
