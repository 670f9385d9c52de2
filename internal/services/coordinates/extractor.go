package coordinates

import (
	"regexp"
	"strconv"

	"github.com/Nazarious-ucu/weather-sms-webhook/internal/models"
)

// Matches "lat,lon" or "lat, lon" with optional sign and fraction.
var pairPattern = regexp.MustCompile(`(-?\d+\.?\d*),\s*(-?\d+\.?\d*)`)

// Extract returns the first coordinate pair found in text. Only the first
// match is looked at; an out-of-range pair yields false.
func Extract(text string) (models.Coordinates, bool) {
	m := pairPattern.FindStringSubmatch(text)
	if m == nil {
		return models.Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return models.Coordinates{}, false
	}
	lon, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return models.Coordinates{}, false
	}

	c := models.Coordinates{Latitude: lat, Longitude: lon}
	if !c.Valid() {
		return models.Coordinates{}, false
	}
	return c, true
}
