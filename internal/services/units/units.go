// Package units converts the metric values returned by the forecast API
// into the imperial units used in replies.
package units

// mphPerMeterPerSecond is intentionally the short factor, not 2.23694.
const mphPerMeterPerSecond = 2.237

func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

func MetersPerSecondToMPH(ms float64) float64 {
	return ms * mphPerMeterPerSecond
}

func KilometersPerHourToMPH(kmh float64) float64 {
	return MetersPerSecondToMPH(kmh / 3.6)
}
