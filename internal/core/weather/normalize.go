package weather

import (
	"math"

	"farmerassist.app/internal/ports"
)

// Normalize turns a provider snapshot into a report. The advisory is derived
// from the unrounded temperature; the forecast keeps the first five entries.
func Normalize(coords Coordinates, snapshot *ports.WeatherSnapshot) Report {
	current := snapshot.Current

	report := Report{
		Lat: coords.Lat,
		Lng: coords.Lng,
		Current: Current{
			TempC:     math.Round(current.TempC),
			Condition: current.Condition,
			Humidity:  math.Round(current.Humidity),
			WindKph:   math.Round(current.WindKph),
			Advice:    Advise(current.TempC, current.Humidity, current.Condition),
		},
		Forecast: make([]ForecastDay, 0, forecastLength),
	}

	for i, point := range snapshot.Forecast {
		if i == forecastLength {
			break
		}
		report.Forecast = append(report.Forecast, ForecastDay{
			Day:       point.Time.Format("Mon"),
			TempC:     math.Round(point.TempC),
			Condition: point.Condition,
		})
	}

	return report
}
