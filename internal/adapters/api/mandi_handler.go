package api

import (
	"net/http"

	"farmerassist.app/internal/core/cache"
	"farmerassist.app/internal/core/mandi"
	"github.com/gin-gonic/gin"
)

type MandiPricesResponse struct {
	mandi.Prices
	Source cache.Source `json:"source"`
}

// getMandiPrices handles GET /api/v1/mandi/prices requests
func (s *HTTPServerAdapter) getMandiPrices(c *gin.Context) {
	result, err := s.mandiUseCase.GetPrices(c.Request.Context(), mandi.PriceRequest{
		State:    c.Query("state"),
		District: c.Query("district"),
		Crop:     c.Query("crop"),
		Limit:    c.Query("limit"),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, MandiPricesResponse{Prices: result.Value, Source: result.Source})
}

// getMandiTrends handles GET /api/v1/mandi/trends requests
func (s *HTTPServerAdapter) getMandiTrends(c *gin.Context) {
	trend, err := s.mandiUseCase.GetTrends(c.Request.Context(), mandi.TrendRequest{
		Crop:  c.Query("crop"),
		State: c.Query("state"),
		Days:  c.Query("days"),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trend)
}
