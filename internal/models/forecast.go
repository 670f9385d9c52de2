package models

type HourlyUnits struct {
	Time                     string `json:"time"`
	Temperature              string `json:"temperature_2m"`
	PrecipitationProbability string `json:"precipitation_probability"`
	WindSpeed                string `json:"windspeed_10m"`
}

type HourlyData struct {
	Time                     []string   `json:"time"`
	Temperature              []float64  `json:"temperature_2m"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
	WindSpeed                []float64  `json:"windspeed_10m"`
}

type DailyUnits struct {
	Time                        string `json:"time"`
	TemperatureMax              string `json:"temperature_2m_max"`
	TemperatureMin              string `json:"temperature_2m_min"`
	PrecipitationProbabilityMax string `json:"precipitation_probability_max"`
}

type DailyData struct {
	Time                        []string   `json:"time"`
	TemperatureMax              []float64  `json:"temperature_2m_max"`
	TemperatureMin              []float64  `json:"temperature_2m_min"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
}

// Forecast mirrors the Open-Meteo /v1/forecast response.
type Forecast struct {
	Latitude         float64     `json:"latitude"`
	Longitude        float64     `json:"longitude"`
	UtcOffsetSeconds int         `json:"utc_offset_seconds"`
	Timezone         string      `json:"timezone"`
	HourlyUnits      HourlyUnits `json:"hourly_units"`
	Hourly           HourlyData  `json:"hourly"`
	DailyUnits       DailyUnits  `json:"daily_units"`
	Daily            DailyData   `json:"daily"`
}
