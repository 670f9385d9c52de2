package units_test

import (
	"testing"

	"github.com/Nazarious-ucu/weather-sms-webhook/internal/services/units"
	"github.com/stretchr/testify/assert"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	assert.InDelta(t, 32.0, units.CelsiusToFahrenheit(0), 1e-9)
	assert.InDelta(t, 212.0, units.CelsiusToFahrenheit(100), 1e-9)
	assert.InDelta(t, -40.0, units.CelsiusToFahrenheit(-40), 1e-9)

	prev := units.CelsiusToFahrenheit(-60)
	for c := -59.5; c <= 60; c += 0.5 {
		cur := units.CelsiusToFahrenheit(c)
		assert.Greater(t, cur, prev, "not monotonic at %v", c)
		prev = cur
	}
}

func TestMetersPerSecondToMPH(t *testing.T) {
	assert.InDelta(t, 0.0, units.MetersPerSecondToMPH(0), 1e-9)
	assert.InDelta(t, 2.237, units.MetersPerSecondToMPH(1), 1e-9)
	assert.InDelta(t, 22.37, units.MetersPerSecondToMPH(10), 1e-9)
}

func TestKilometersPerHourToMPH(t *testing.T) {
	assert.InDelta(t, 2.237, units.KilometersPerHourToMPH(3.6), 1e-9)
}
