package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Nazarious-ucu/weather-sms-webhook/internal/models"
	"github.com/rs/zerolog"
)

const (
	hourlyFields = "temperature_2m,precipitation_probability,windspeed_10m"
	dailyFields  = "temperature_2m_max,temperature_2m_min,precipitation_probability_max"
)

var ErrEmptyForecast = errors.New("forecast response has no hourly or daily data")

// ClientOpenMeteo fetches multi-day forecasts from the Open-Meteo API in
// metric units.
type ClientOpenMeteo struct {
	apiURL       string
	forecastDays int
	client       HTTPClient
	logger       zerolog.Logger
}

// NewClientOpenMeteo constructs a new Open-Meteo client.
func NewClientOpenMeteo(apiURL string, forecastDays int,
	httpClient HTTPClient, logger zerolog.Logger,
) *ClientOpenMeteo {
	return &ClientOpenMeteo{
		apiURL:       apiURL,
		forecastDays: forecastDays,
		client:       httpClient,
		logger:       logger,
	}
}

func (s *ClientOpenMeteo) Name() string {
	return "OpenMeteo"
}

func (s *ClientOpenMeteo) requestURL(coords models.Coordinates) string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	q.Set("hourly", hourlyFields)
	q.Set("daily", dailyFields)
	q.Set("temperature_unit", "celsius")
	q.Set("windspeed_unit", "ms")
	q.Set("forecast_days", strconv.Itoa(s.forecastDays))
	q.Set("timezone", "auto")
	return s.apiURL + "?" + q.Encode()
}

// Fetch retrieves the forecast for coords, with structured logging.
func (s *ClientOpenMeteo) Fetch(ctx context.Context, coords models.Coordinates) (models.Forecast, error) {
	start := time.Now()
	reqURL := s.requestURL(coords)

	s.logger.Debug().
		Ctx(ctx).
		Str("url", reqURL).
		Msg("starting Open-Meteo request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("url", reqURL).
			Msg("failed to create HTTP request")
		return models.Forecast{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("url", reqURL).
			Msg("error sending HTTP request to Open-Meteo")
		return models.Forecast{}, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().
				Ctx(ctx).
				Err(cerr).
				Msg("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error().
			Ctx(ctx).
			Int("status_code", resp.StatusCode).
			Msg("Open-Meteo API returned non-200 status")
		return models.Forecast{}, fmt.Errorf("open-meteo API error: status %s", resp.Status)
	}

	var data models.Forecast
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Msg("failed to decode Open-Meteo response")
		return models.Forecast{}, fmt.Errorf("decode forecast: %w", err)
	}

	if len(data.Hourly.Temperature) == 0 || len(data.Daily.TemperatureMax) == 0 {
		s.logger.Error().
			Ctx(ctx).
			Msg("no data in Open-Meteo response")
		return models.Forecast{}, ErrEmptyForecast
	}

	s.logger.Info().
		Ctx(ctx).
		Str("timezone", data.Timezone).
		Dur("duration_ms", time.Since(start)).
		Msg("successfully fetched forecast")

	return data, nil
}
