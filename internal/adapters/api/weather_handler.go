package api

import (
	"net/http"

	"farmerassist.app/internal/core/cache"
	"farmerassist.app/internal/core/weather"
	"farmerassist.app/internal/ports"
	"github.com/gin-gonic/gin"
)

// WeatherResponse is the normalized report along with where it came from
type WeatherResponse struct {
	weather.Report
	Source cache.Source `json:"source"`
}

// getWeather handles GET /api/v1/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	request := weather.Request{Lat: c.Query("lat"), Lng: c.Query("lng")}

	result, err := s.weatherUseCase.GetReport(c.Request.Context(), request)
	if err != nil {
		s.logger.Debug("Weather request rejected", ports.F("lat", request.Lat), ports.F("lng", request.Lng), ports.F("error", err.Error()))
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, WeatherResponse{Report: result.Value, Source: result.Source})
}

// getWeatherAlerts handles GET /api/v1/weather/alerts requests
func (s *HTTPServerAdapter) getWeatherAlerts(c *gin.Context) {
	alerts, err := s.weatherUseCase.GetAlerts(c.Request.Context(), weather.Request{Lat: c.Query("lat"), Lng: c.Query("lng")})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}
