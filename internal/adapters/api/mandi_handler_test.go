package api

import (
	"net/http"
	"testing"

	"farmerassist.app/internal/core/cache"
	"farmerassist.app/internal/core/mandi"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMandiHandler_GetPrices_LimitApplied(t *testing.T) {
	h := newTestHarness(t)
	h.mandi.EXPECT().GetPrices(mock.Anything, ports.MandiQuery{State: "Punjab", District: "Ludhiana", Commodity: "Wheat", Limit: 1}).Return([]ports.MandiRecord{
		{Market: "Khanna", ModalPrice: 2300},
		{Market: "Jagraon", ModalPrice: 2280},
		{Market: "Samrala", ModalPrice: 2260},
	}, nil).Once()

	w := h.get("/api/v1/mandi/prices?limit=1")

	assert.Equal(t, http.StatusOK, w.Code)
	response := decode[MandiPricesResponse](t, w)
	assert.Equal(t, cache.SourceRemote, response.Source)
	require.Len(t, response.Results, 1)
	assert.Equal(t, "Khanna", response.Results[0].Market)
	assert.Equal(t, mandi.PriceUnit, response.Unit)
}

func TestMandiHandler_GetPrices_FallbackOnRemoteFailure(t *testing.T) {
	h := newTestHarness(t)
	h.mandi.EXPECT().GetPrices(mock.Anything, mock.Anything).Return(nil, errors.NewMalformedRemoteResponseError("records missing", nil)).Once()

	w := h.get("/api/v1/mandi/prices?state=Haryana&district=Karnal&crop=Rice")

	assert.Equal(t, http.StatusOK, w.Code)
	response := decode[MandiPricesResponse](t, w)
	assert.Equal(t, cache.SourceFallback, response.Source)
	require.Len(t, response.Results, 3)
	assert.Equal(t, "Karnal Mandi", response.Results[0].Market)
}

func TestMandiHandler_GetPrices_BadLimit(t *testing.T) {
	h := newTestHarness(t)

	w := h.get("/api/v1/mandi/prices?limit=abc")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[ErrorResponse](t, w).Code)
}

func TestMandiHandler_GetTrends(t *testing.T) {
	h := newTestHarness(t)

	w := h.get("/api/v1/mandi/trends?crop=Wheat&days=5")
	assert.Equal(t, http.StatusOK, w.Code)
	trend := decode[mandi.Trend](t, w)
	assert.Equal(t, "Wheat", trend.Crop)
	assert.Equal(t, "Punjab", trend.State)
	assert.Len(t, trend.Points, 5)

	missing := h.get("/api/v1/mandi/trends")
	assert.Equal(t, http.StatusBadRequest, missing.Code)
	assert.Equal(t, "crop parameter is required", decode[ErrorResponse](t, missing).Error)
}
