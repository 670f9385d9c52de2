package weather_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Nazarious-ucu/weather-sms-webhook/internal/models"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/services/weather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var breakerCfg = weather.BreakerConfig{
	TimeInterval: 30 * time.Second,
	TimeTimeOut:  15 * time.Second,
	RepeatNumber: 5,
}

const breakerName = "TestAPI"

type mockWrapped struct {
	mock.Mock
}

func (m *mockWrapped) Name() string {
	return "wrapped"
}

func (m *mockWrapped) Fetch(ctx context.Context, c models.Coordinates) (models.Forecast, error) {
	args := m.Called(ctx, c)
	data, ok := args.Get(0).(models.Forecast)
	if !ok {
		return models.Forecast{}, args.Error(1)
	}
	return data, args.Error(1)
}

func TestBreakerClient_Success(t *testing.T) {
	wrapped := new(mockWrapped)
	expected := models.Forecast{Timezone: "UTC"}

	wrapped.
		On("Fetch", mock.Anything, coords).
		Return(expected, nil).
		Once()

	bc := weather.NewBreakerClient(breakerName, breakerCfg, wrapped)

	data, err := bc.Fetch(context.Background(), coords)
	assert.NoError(t, err)
	assert.Equal(t, expected, data)
	assert.Equal(t, breakerName, bc.Name())

	wrapped.AssertExpectations(t)
}

func TestBreakerClient_UnderlyingErrorBeforeTrip(t *testing.T) {
	wrapped := new(mockWrapped)
	underlyingErr := errors.New("service down")

	wrapped.
		On("Fetch", mock.Anything, coords).
		Return(models.Forecast{}, underlyingErr).
		Once()

	bc := weather.NewBreakerClient(breakerName, breakerCfg, wrapped)

	data, err := bc.Fetch(context.Background(), coords)
	assert.Error(t, err)
	assert.Empty(t, data)
	assert.ErrorIs(t, err, underlyingErr)
	assert.Contains(t, err.Error(), breakerName+" unavailable: "+underlyingErr.Error())

	wrapped.AssertExpectations(t)
}

func TestBreakerClient_TripCircuitAfterFiveFailures(t *testing.T) {
	wrapped := new(mockWrapped)
	underlyingErr := errors.New("timeout")

	wrapped.
		On("Fetch", mock.Anything, coords).
		Return(models.Forecast{}, underlyingErr).
		Times(5)

	bc := weather.NewBreakerClient(breakerName, breakerCfg, wrapped)

	for i := 1; i <= 5; i++ {
		_, err := bc.Fetch(context.Background(), coords)
		assert.Error(t, err, "call #%d should error before trip", i)
	}

	_, err := bc.Fetch(context.Background(), coords)
	assert.Error(t, err)
	assert.True(t,
		strings.Contains(err.Error(), "circuit breaker is open"),
		"6th call should return open-circuit error",
	)

	wrapped.AssertExpectations(t)
	wrapped.AssertNumberOfCalls(t, "Fetch", 5)
}
