package forecast

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Nazarious-ucu/weather-sms-webhook/internal/models"
	"github.com/Nazarious-ucu/weather-sms-webhook/internal/services/units"
)

const (
	HourlyWindow = 48
	HourlyStep   = 3
	DailyDays    = 10

	HourlyHeader = "Next 48 hours:"
	DailyHeader  = "10-day forecast:"

	hourlyTimeLayout = "2006-01-02T15:04"
	dailyTimeLayout  = "2006-01-02"
)

// Formatter renders an Open-Meteo forecast into SMS sized text.
type Formatter struct {
	now func() time.Time
}

// NewFormatter uses now as the wall clock; nil means time.Now.
func NewFormatter(now func() time.Time) *Formatter {
	if now == nil {
		now = time.Now
	}
	return &Formatter{now: now}
}

// Reply joins the hourly and daily blocks with a blank line.
func (f *Formatter) Reply(data models.Forecast) string {
	return f.Hourly(data) + "\n\n" + f.Daily(data)
}

// Hourly lists every third hour of the 48 hours starting at the current
// local hour of the forecast location.
func (f *Formatter) Hourly(data models.Forecast) string {
	h := data.Hourly
	local := f.localNow(data).Truncate(time.Hour)
	start := startIndex(h.Time, local)

	n := min(len(h.Temperature), len(h.WindSpeed))
	lines := make([]string, 0, HourlyWindow/HourlyStep)
	for i := 0; i < HourlyWindow && start+i < n; i++ {
		if i%HourlyStep != 0 {
			continue
		}
		idx := start + i

		at := local.Add(time.Duration(i) * time.Hour)
		if idx < len(h.Time) {
			if parsed, err := time.Parse(hourlyTimeLayout, h.Time[idx]); err == nil {
				at = parsed
			}
		}

		temp := toFahrenheit(h.Temperature[idx], data.HourlyUnits.Temperature)
		wind := toMPH(h.WindSpeed[idx], data.HourlyUnits.WindSpeed)
		precip := valueAt(h.PrecipitationProbability, idx)

		lines = append(lines, fmt.Sprintf("%s: %dF %d%% %dmph",
			hourLabel(at), round(temp), round(precip), round(wind)))
	}

	return block(HourlyHeader, lines)
}

// Daily lists up to DailyDays days starting at the request date.
func (f *Formatter) Daily(data models.Forecast) string {
	d := data.Daily
	today := f.localNow(data)

	n := min(len(d.TemperatureMax), len(d.TemperatureMin), DailyDays)
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		day := today.AddDate(0, 0, i)
		if i < len(d.Time) {
			if parsed, err := time.Parse(dailyTimeLayout, d.Time[i]); err == nil {
				day = parsed
			}
		}

		high := toFahrenheit(d.TemperatureMax[i], data.DailyUnits.TemperatureMax)
		low := toFahrenheit(d.TemperatureMin[i], data.DailyUnits.TemperatureMin)
		precip := valueAt(d.PrecipitationProbabilityMax, i)

		lines = append(lines, fmt.Sprintf("%s: %d-%dF %d%%",
			day.Format("Mon"), round(low), round(high), round(precip)))
	}

	return block(DailyHeader, lines)
}

// localNow shifts the clock into the forecast location's wall time. The
// result carries a UTC location so it compares with parsed API timestamps.
func (f *Formatter) localNow(data models.Forecast) time.Time {
	return f.now().UTC().Add(time.Duration(data.UtcOffsetSeconds) * time.Second)
}

func block(header string, lines []string) string {
	if len(lines) == 0 {
		return header
	}
	return header + "\n" + strings.Join(lines, "\n")
}

func startIndex(times []string, hour time.Time) int {
	key := hour.Format(hourlyTimeLayout)
	for i, t := range times {
		if t == key {
			return i
		}
	}
	return 0
}

// hourLabel renders "Mon 03pm".
func hourLabel(t time.Time) string {
	return t.Format("Mon 03") + strings.ToLower(t.Format("PM"))
}

func valueAt(values []*float64, i int) float64 {
	if i >= len(values) || values[i] == nil {
		return 0
	}
	return *values[i]
}

func round(v float64) int {
	return int(math.Round(v))
}

func toFahrenheit(v float64, unit string) float64 {
	if unit == "°F" {
		return v
	}
	return units.CelsiusToFahrenheit(v)
}

func toMPH(v float64, unit string) float64 {
	switch unit {
	case "mp/h", "mph":
		return v
	case "km/h":
		return units.KilometersPerHourToMPH(v)
	default:
		return units.MetersPerSecondToMPH(v)
	}
}
