package weather

var fallbackForecast = []ForecastDay{
	{Day: "Mon", TempC: 31, Condition: "Sunny"},
	{Day: "Tue", TempC: 29, Condition: "Cloudy"},
	{Day: "Wed", TempC: 28, Condition: "Rain"},
	{Day: "Thu", TempC: 30, Condition: "Sunny"},
	{Day: "Fri", TempC: 32, Condition: "Sunny"},
}

const (
	fallbackTempC     = 30
	fallbackCondition = "Sunny"
	fallbackHumidity  = 55
	fallbackWindKph   = 8
)

// Fallback synthesizes a report for the coordinates without any remote data
func Fallback(coords Coordinates) Report {
	return Report{
		Lat: coords.Lat,
		Lng: coords.Lng,
		Current: Current{
			TempC:     fallbackTempC,
			Condition: fallbackCondition,
			Humidity:  fallbackHumidity,
			WindKph:   fallbackWindKph,
			Advice:    Advise(fallbackTempC, fallbackHumidity, fallbackCondition),
		},
		Forecast: append([]ForecastDay(nil), fallbackForecast...),
	}
}

// BuildAlerts derives alerts from the synthetic forecast plus a standing pest advisory
func BuildAlerts(coords Coordinates) Alerts {
	alerts := Alerts{Lat: coords.Lat, Lng: coords.Lng, Alerts: []Alert{}}

	for _, day := range fallbackForecast {
		switch Advise(day.TempC, 0, day.Condition) {
		case AdviceRain:
			alerts.Alerts = append(alerts.Alerts, Alert{
				Type:     "rain",
				Severity: "medium",
				Day:      day.Day,
				Message:  "Rain expected on " + day.Day + ". Postpone spraying and harvest operations.",
			})
		case AdviceHeat:
			alerts.Alerts = append(alerts.Alerts, Alert{
				Type:     "heat",
				Severity: "high",
				Day:      day.Day,
				Message:  "Heat stress likely on " + day.Day + ". Schedule irrigation for early morning.",
			})
		}
	}

	alerts.Alerts = append(alerts.Alerts, Alert{
		Type:     "pest",
		Severity: "low",
		Message:  "Seasonal pest activity reported in the region. Inspect crops twice a week.",
	})

	return alerts
}
