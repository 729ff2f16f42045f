package external

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"farmerassist.app/internal/ports"
)

const (
	openWeatherMapService = "OpenWeatherMap"
	metersPerSecondToKph  = 3.6
)

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	call    remoteCall
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

type openWeatherMapConditions struct {
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Dt int64 `json:"dt"`
}

func (c openWeatherMapConditions) condition() string {
	if len(c.Weather) == 0 || c.Weather[0].Main == "" {
		return "Clear"
	}
	return c.Weather[0].Main
}

// OpenWeatherMapCurrentResponse represents the /weather response
type OpenWeatherMapCurrentResponse struct {
	openWeatherMapConditions
}

// OpenWeatherMapForecastResponse represents the /forecast response
type OpenWeatherMapForecastResponse struct {
	List *[]openWeatherMapConditions `json:"list"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5"
	}

	client := params.Client
	if client == nil {
		client = &http.Client{}
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		call: remoteCall{
			service: openWeatherMapService,
			client:  client,
			logger:  params.Logger,
		},
	}
}

// GetWeather retrieves current conditions and the forecast series for a coordinate
func (p *OpenWeatherMapProviderAdapter) GetWeather(ctx context.Context, lat, lng float64) (*ports.WeatherSnapshot, error) {
	var current OpenWeatherMapCurrentResponse
	if err := p.call.get(ctx, p.endpoint("weather", lat, lng), &current); err != nil {
		return nil, err
	}
	if current.Main == nil {
		return nil, malformed(openWeatherMapService, "is missing main conditions")
	}

	var forecast OpenWeatherMapForecastResponse
	if err := p.call.get(ctx, p.endpoint("forecast", lat, lng), &forecast); err != nil {
		return nil, err
	}
	if forecast.List == nil {
		return nil, malformed(openWeatherMapService, "is missing forecast list")
	}

	snapshot := &ports.WeatherSnapshot{
		Current: ports.WeatherObservation{
			TempC:      current.Main.Temp,
			Humidity:   current.Main.Humidity,
			WindKph:    current.Wind.Speed * metersPerSecondToKph,
			Condition:  current.condition(),
			ObservedAt: time.Unix(current.Dt, 0).UTC(),
		},
		Forecast: make([]ports.ForecastPoint, 0, len(*forecast.List)),
	}

	for i, point := range *forecast.List {
		if point.Main == nil {
			return nil, malformed(openWeatherMapService, fmt.Sprintf("forecast entry %d is missing main conditions", i))
		}
		snapshot.Forecast = append(snapshot.Forecast, ports.ForecastPoint{
			Time:      time.Unix(point.Dt, 0).UTC(),
			TempC:     point.Main.Temp,
			Condition: point.condition(),
		})
	}

	return snapshot, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

func (p *OpenWeatherMapProviderAdapter) endpoint(path string, lat, lng float64) string {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")
	return fmt.Sprintf("%s/%s?%s", p.baseURL, path, query.Encode())
}
