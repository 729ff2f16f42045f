package mandi

import "farmerassist.app/internal/ports"

// Normalize keeps at most query.Limit provider rows
func Normalize(query PriceQuery, records []ports.MandiRecord) Prices {
	count := min(query.Limit, len(records))

	prices := Prices{
		State:    query.State,
		District: query.District,
		Crop:     query.Crop,
		Unit:     PriceUnit,
		Results:  make([]Price, 0, count),
	}

	for _, record := range records[:count] {
		prices.Results = append(prices.Results, Price{
			Market:      record.Market,
			District:    record.District,
			State:       record.State,
			Commodity:   record.Commodity,
			Variety:     record.Variety,
			MinPrice:    record.MinPrice,
			MaxPrice:    record.MaxPrice,
			ModalPrice:  record.ModalPrice,
			ArrivalDate: record.ArrivalDate,
		})
	}

	return prices
}
