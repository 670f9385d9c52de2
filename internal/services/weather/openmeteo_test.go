package weather_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Nazarious-ucu/weather-sms-webhook/internal/models"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/services/weather"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const forecastBody = `{
  "latitude": 36.1,
  "longitude": -115.2,
  "utc_offset_seconds": -25200,
  "timezone": "America/Los_Angeles",
  "hourly_units": {"time": "iso8601", "temperature_2m": "°C", "precipitation_probability": "%", "windspeed_10m": "m/s"},
  "hourly": {
    "time": ["2024-06-03T00:00", "2024-06-03T01:00"],
    "temperature_2m": [30.1, 29.5],
    "precipitation_probability": [0, null],
    "windspeed_10m": [3.2, 2.8]
  },
  "daily_units": {"time": "iso8601", "temperature_2m_max": "°C", "temperature_2m_min": "°C", "precipitation_probability_max": "%"},
  "daily": {
    "time": ["2024-06-03"],
    "temperature_2m_max": [38.2],
    "temperature_2m_min": [24.9],
    "precipitation_probability_max": [5]
  }
}`

var coords = models.Coordinates{Latitude: 36.1, Longitude: -115.2}

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, ok := args.Get(0).(*http.Response)
	if !ok {
		return &http.Response{}, args.Error(1)
	}
	return resp, args.Error(1)
}

func TestOpenMeteo_Fetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "36.1", q.Get("latitude"))
		assert.Equal(t, "-115.2", q.Get("longitude"))
		assert.Equal(t, "temperature_2m,precipitation_probability,windspeed_10m", q.Get("hourly"))
		assert.Equal(t, "temperature_2m_max,temperature_2m_min,precipitation_probability_max", q.Get("daily"))
		assert.Equal(t, "celsius", q.Get("temperature_unit"))
		assert.Equal(t, "ms", q.Get("windspeed_unit"))
		assert.Equal(t, "10", q.Get("forecast_days"))
		assert.Equal(t, "auto", q.Get("timezone"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastBody))
	}))
	defer srv.Close()

	c := weather.NewClientOpenMeteo(srv.URL, 10, srv.Client(), zerolog.Nop())

	data, err := c.Fetch(context.Background(), coords)
	require.NoError(t, err)
	assert.Equal(t, "America/Los_Angeles", data.Timezone)
	assert.Equal(t, -25200, data.UtcOffsetSeconds)
	assert.Equal(t, []float64{30.1, 29.5}, data.Hourly.Temperature)
	require.Len(t, data.Hourly.PrecipitationProbability, 2)
	assert.Nil(t, data.Hourly.PrecipitationProbability[1])
	assert.Equal(t, "m/s", data.HourlyUnits.WindSpeed)
	assert.Equal(t, []string{"2024-06-03"}, data.Daily.Time)
}

func TestOpenMeteo_Fetch_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		doErr   error
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":true}`},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":true,"reason":"Latitude must be in range"}`},
		{name: "malformed json", status: http.StatusOK, body: `{"hourly":`},
		{name: "empty data", status: http.StatusOK, body: `{"hourly":{},"daily":{}}`, wantErr: weather.ErrEmptyForecast},
		{name: "transport", doErr: errors.New("connection refused")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := &mockHTTPClient{}
			if tc.doErr != nil {
				m.On("Do", mock.Anything).Return(nil, tc.doErr).Once()
			} else {
				m.On("Do", mock.Anything).Return(&http.Response{
					StatusCode: tc.status,
					Status:     http.StatusText(tc.status),
					Body:       io.NopCloser(strings.NewReader(tc.body)),
				}, nil).Once()
			}
			t.Cleanup(func() {
				m.AssertExpectations(t)
			})

			c := weather.NewClientOpenMeteo("http://weather.test/v1/forecast", 10, m, zerolog.Nop())

			data, err := c.Fetch(context.Background(), coords)
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			assert.Equal(t, models.Forecast{}, data)
		})
	}
}
