package mandi

import (
	"testing"
	"time"

	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefaults() Defaults {
	return Defaults{State: "Punjab", District: "Ludhiana", Crop: "Wheat", Limit: 10, MaxLimit: 100}
}

func TestPriceRequest_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		request PriceRequest
		want    PriceQuery
	}{
		{"AllDefaults", PriceRequest{}, PriceQuery{State: "Punjab", District: "Ludhiana", Crop: "Wheat", Limit: 10}},
		{"Explicit", PriceRequest{State: "Haryana", District: "Karnal", Crop: "Rice", Limit: "3"}, PriceQuery{State: "Haryana", District: "Karnal", Crop: "Rice", Limit: 3}},
		{"BlankFieldsUseDefaults", PriceRequest{State: " ", Crop: "Maize"}, PriceQuery{State: "Punjab", District: "Ludhiana", Crop: "Maize", Limit: 10}},
		{"LimitClampedToMax", PriceRequest{Limit: "5000"}, PriceQuery{State: "Punjab", District: "Ludhiana", Crop: "Wheat", Limit: 100}},
		{"NamesTitleCased", PriceRequest{State: "uttar  pradesh", District: "AGRA", Crop: " wheat "}, PriceQuery{State: "Uttar Pradesh", District: "Agra", Crop: "Wheat", Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.request.Resolve(testDefaults())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceRequest_ResolveRejectsBadLimit(t *testing.T) {
	for _, limit := range []string{"0", "-2", "ten", "1.5"} {
		t.Run(limit, func(t *testing.T) {
			_, err := PriceRequest{Limit: limit}.Resolve(testDefaults())
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestPriceQuery_KeyIncludesLimit(t *testing.T) {
	a := PriceQuery{State: "Punjab", District: "Ludhiana", Crop: "Wheat", Limit: 1}
	b := a
	b.Limit = 2

	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, []string{"punjab", "ludhiana", "wheat", "1"}, a.Key())
}

func TestPriceQuery_KeyIgnoresNameCase(t *testing.T) {
	upper, err := PriceRequest{Crop: "WHEAT", District: "ludhiana"}.Resolve(testDefaults())
	require.NoError(t, err)
	lower, err := PriceRequest{Crop: "wheat", District: "Ludhiana"}.Resolve(testDefaults())
	require.NoError(t, err)

	assert.Equal(t, upper.Key(), lower.Key())
	assert.Equal(t, upper.Key(), PriceQuery{State: "PUNJAB", District: "Ludhiana", Crop: "wheat", Limit: 10}.Key())
}

func TestNormalize_TruncatesToLimit(t *testing.T) {
	records := []ports.MandiRecord{
		{Market: "Khanna", ModalPrice: 2300},
		{Market: "Jagraon", ModalPrice: 2280},
		{Market: "Samrala", ModalPrice: 2260},
	}

	assert.Len(t, Normalize(PriceQuery{Limit: 1}, records).Results, 1)
	assert.Len(t, Normalize(PriceQuery{Limit: 10}, records).Results, 3)
	assert.Empty(t, Normalize(PriceQuery{Limit: 5}, nil).Results)
}

func TestFallback(t *testing.T) {
	query := PriceQuery{State: "Punjab", District: "Ludhiana", Crop: "Wheat", Limit: 10}

	prices := Fallback(query)

	require.Len(t, prices.Results, 3)
	assert.Equal(t, Fallback(query), prices)
	assert.Equal(t, PriceUnit, prices.Unit)
	assert.Equal(t, "Ludhiana Mandi", prices.Results[0].Market)
	assert.Equal(t, 2275.0, prices.Results[0].ModalPrice)
	assert.Equal(t, 2161.0, prices.Results[0].MinPrice)
	assert.Equal(t, 2389.0, prices.Results[0].MaxPrice)

	query.Limit = 2
	assert.Len(t, Fallback(query).Results, 2)
}

func TestBasePrice(t *testing.T) {
	assert.Equal(t, 6620.0, BasePrice(" Cotton "))
	assert.Equal(t, 2183.0, BasePrice("paddy"))
	assert.Equal(t, float64(defaultBasePrice), BasePrice("dragonfruit"))
}

func TestBuildTrend(t *testing.T) {
	today := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("DefaultsAndRepeatability", func(t *testing.T) {
		first, err := BuildTrend(TrendRequest{Crop: "Wheat"}, "Punjab", today)
		require.NoError(t, err)
		second, err := BuildTrend(TrendRequest{Crop: "Wheat"}, "Punjab", today)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, "Punjab", first.State)
		assert.Equal(t, defaultTrendDays, first.Days)
		require.Len(t, first.Points, defaultTrendDays)
		assert.Equal(t, "2025-03-04", first.Points[0].Date)
		assert.Equal(t, "2025-03-10", first.Points[6].Date)
		assert.Equal(t, 2275.0, first.Points[0].ModalPrice)
		assert.Contains(t, []string{"up", "down", "flat"}, first.Direction)
	})

	t.Run("DaysClamped", func(t *testing.T) {
		trend, err := BuildTrend(TrendRequest{Crop: "Rice", Days: "90"}, "Punjab", today)
		require.NoError(t, err)
		assert.Len(t, trend.Points, maxTrendDays)
	})

	t.Run("DriftIsBounded", func(t *testing.T) {
		trend, err := BuildTrend(TrendRequest{Crop: "Cotton", Days: "30"}, "Gujarat", today)
		require.NoError(t, err)
		for i := 1; i < len(trend.Points); i++ {
			prev, cur := trend.Points[i-1].ModalPrice, trend.Points[i].ModalPrice
			assert.InDelta(t, prev, cur, prev*maxDailyDrift+1)
		}
	})

	t.Run("MissingCrop", func(t *testing.T) {
		_, err := BuildTrend(TrendRequest{State: "Punjab"}, "Punjab", today)
		assert.True(t, errors.IsMissingParameterError(err))
	})

	t.Run("BadDays", func(t *testing.T) {
		_, err := BuildTrend(TrendRequest{Crop: "Wheat", Days: "0"}, "Punjab", today)
		assert.True(t, errors.IsValidationError(err))
	})
}
