package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"farmerassist.app/pkg/errors"
)

const forecastLength = 5

// Advisory texts, in the order their rules are evaluated
const (
	AdviceRain      = "Rain expected. Avoid irrigation and postpone pesticide spraying."
	AdviceHeat      = "High temperature. Irrigate in early morning or evening and protect crops from heat stress."
	AdviceCold      = "Low temperature. Protect sensitive crops from cold with mulching or covers."
	AdviceHumidity  = "High humidity. Monitor crops for fungal diseases."
	AdviceFavorable = "Weather conditions are favourable for field work."
)

const (
	heatThresholdC     = 35
	coldThresholdC     = 15
	humidityThresholdP = 80
)

// Request carries coordinates exactly as they arrived in the query string
type Request struct {
	Lat string
	Lng string
}

// Coordinates is a parsed latitude/longitude pair
type Coordinates struct {
	Lat float64
	Lng float64
}

// Current holds the normalized current conditions with the derived advisory
type Current struct {
	TempC     float64 `json:"tempC"`
	Condition string  `json:"condition"`
	Humidity  float64 `json:"humidity"`
	WindKph   float64 `json:"windKph"`
	Advice    string  `json:"advice"`
}

// ForecastDay is one entry of the truncated forecast
type ForecastDay struct {
	Day       string  `json:"day"`
	TempC     float64 `json:"tempC"`
	Condition string  `json:"condition"`
}

// Report is the normalized weather response
type Report struct {
	Lat      float64       `json:"lat"`
	Lng      float64       `json:"lng"`
	Current  Current       `json:"current"`
	Forecast []ForecastDay `json:"forecast"`
}

// Alert is a farming alert for a location
type Alert struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Day      string `json:"day,omitempty"`
	Message  string `json:"message"`
}

// Alerts is the response of the alerts endpoint
type Alerts struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Alerts []Alert `json:"alerts"`
}

// Validate reports missing coordinates first, then unparseable or out of range ones
func (r Request) Validate() error {
	if strings.TrimSpace(r.Lat) == "" {
		return errors.NewMissingParameterError("lat")
	}
	if strings.TrimSpace(r.Lng) == "" {
		return errors.NewMissingParameterError("lng")
	}
	_, err := r.Coordinates()
	return err
}

// Coordinates parses and range-checks the request coordinates
func (r Request) Coordinates() (Coordinates, error) {
	lat, err := parseCoordinate("lat", r.Lat, 90)
	if err != nil {
		return Coordinates{}, err
	}
	lng, err := parseCoordinate("lng", r.Lng, 180)
	if err != nil {
		return Coordinates{}, err
	}
	return Coordinates{Lat: lat, Lng: lng}, nil
}

// Key returns the canonical form of the coordinates, so "30.90" and "30.9" share an entry
func (c Coordinates) Key() []string {
	return []string{
		strconv.FormatFloat(c.Lat, 'f', -1, 64),
		strconv.FormatFloat(c.Lng, 'f', -1, 64),
	}
}

func parseCoordinate(name, raw string, limit float64) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.NewValidationError(fmt.Sprintf("%s must be a number", name))
	}
	if value < -limit || value > limit {
		return 0, errors.NewValidationError(fmt.Sprintf("%s must be between %g and %g", name, -limit, limit))
	}
	// -0 and 0 are the same place
	if value == 0 {
		value = 0
	}
	return value, nil
}

// Advise picks the advisory for the given conditions; the first matching rule wins
func Advise(tempC, humidity float64, condition string) string {
	switch {
	case strings.Contains(strings.ToLower(condition), "rain"):
		return AdviceRain
	case tempC > heatThresholdC:
		return AdviceHeat
	case tempC < coldThresholdC:
		return AdviceCold
	case humidity > humidityThresholdP:
		return AdviceHumidity
	default:
		return AdviceFavorable
	}
}
