package mandi

import (
	"math"
	"strings"
)

const defaultBasePrice = 2000

// basePrices are indicative modal prices in INR/quintal
var basePrices = map[string]float64{
	"wheat":     2275,
	"rice":      2183,
	"paddy":     2183,
	"maize":     2090,
	"cotton":    6620,
	"mustard":   5650,
	"soybean":   4600,
	"sugarcane": 340,
}

var fallbackMarketSuffixes = []string{"Mandi", "Grain Market", "APMC"}

// BasePrice returns the indicative modal price for a crop
func BasePrice(crop string) float64 {
	if price, ok := basePrices[strings.ToLower(strings.TrimSpace(crop))]; ok {
		return price
	}
	return defaultBasePrice
}

// Fallback synthesizes price rows for the query without any remote data
func Fallback(query PriceQuery) Prices {
	base := BasePrice(query.Crop)
	count := min(query.Limit, len(fallbackMarketSuffixes))

	prices := Prices{
		State:    query.State,
		District: query.District,
		Crop:     query.Crop,
		Unit:     PriceUnit,
		Results:  make([]Price, 0, count),
	}

	for _, suffix := range fallbackMarketSuffixes[:count] {
		prices.Results = append(prices.Results, Price{
			Market:     query.District + " " + suffix,
			District:   query.District,
			State:      query.State,
			Commodity:  query.Crop,
			MinPrice:   math.Round(base * 0.95),
			MaxPrice:   math.Round(base * 1.05),
			ModalPrice: base,
		})
	}

	return prices
}
