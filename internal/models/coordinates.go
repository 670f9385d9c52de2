package models

import "fmt"

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// CacheKey rounds to roughly one kilometre so nearby lookups share an entry.
func (c Coordinates) CacheKey() string {
	return fmt.Sprintf("%.2f,%.2f", c.Latitude, c.Longitude)
}
