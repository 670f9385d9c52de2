package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/Nazarious-ucu/weather-sms-webhook/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAPIClient struct {
	mock.Mock
}

func (m *mockAPIClient) Name() string {
	return "mock"
}

func (m *mockAPIClient) Fetch(
	ctx context.Context,
	coords models.Coordinates,
) (models.Forecast, error) {
	args := m.Called(ctx, coords)
	data, ok := args.Get(0).(models.Forecast)

	if !ok {
		return models.Forecast{}, args.Error(1)
	}

	return data, args.Error(1)
}

func TestServiceProvider_GetForecast(t *testing.T) {
	ctx := context.Background()
	coords := models.Coordinates{Latitude: 49.84, Longitude: 24.03}
	successModel := models.Forecast{Latitude: 49.84, Longitude: 24.03, Timezone: "Europe/Kyiv"}
	emptyModel := models.Forecast{}

	t.Run("Success", func(t *testing.T) {
		mock1 := mockAPIClient{}
		mock2 := mockAPIClient{}

		mock1.On("Fetch", mock.Anything, coords).Return(successModel, nil)

		t.Cleanup(func() {
			mock1.AssertExpectations(t)
			mock2.AssertNumberOfCalls(t, "Fetch", 0)
		})

		provider := NewService(zerolog.Nop(), &mock1, &mock2)

		result, err := provider.GetForecast(ctx, coords)

		require.NoError(t, err)
		assert.Equal(t, successModel, result)
	})

	t.Run("FirstFailsSecondSuccess", func(t *testing.T) {
		mock1 := mockAPIClient{}
		mock2 := mockAPIClient{}

		mock1.On("Fetch", mock.Anything, coords).Return(emptyModel, errors.New("error"))
		mock2.On("Fetch", mock.Anything, coords).Return(successModel, nil)

		t.Cleanup(func() {
			mock1.AssertExpectations(t)
			mock2.AssertExpectations(t)
		})

		provider := NewService(zerolog.Nop(), &mock1, &mock2)

		result, err := provider.GetForecast(ctx, coords)

		require.NoError(t, err)
		assert.Equal(t, successModel, result)
	})

	t.Run("AllFails", func(t *testing.T) {
		mock1 := mockAPIClient{}

		mock1.On("Fetch", mock.Anything, coords).Return(emptyModel, errors.New("error"))

		t.Cleanup(func() {
			mock1.AssertExpectations(t)
		})

		provider := NewService(zerolog.Nop(), &mock1)

		result, err := provider.GetForecast(ctx, coords)

		require.Error(t, err)
		assert.Equal(t, "all weather API clients failed to fetch data", err.Error())
		assert.Equal(t, emptyModel, result)
	})
}
