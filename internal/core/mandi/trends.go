package mandi

import (
	"hash/fnv"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"farmerassist.app/pkg/errors"
)

const (
	defaultTrendDays = 7
	maxTrendDays     = 30
	maxDailyDrift    = 0.02
)

// TrendRequest carries the trend query exactly as it arrived
type TrendRequest struct {
	Crop  string
	State string
	Days  string
}

// TrendPoint is the modal price on one day
type TrendPoint struct {
	Date       string  `json:"date"`
	ModalPrice float64 `json:"modalPrice"`
}

// Trend is a daily modal price series ending today
type Trend struct {
	Crop          string       `json:"crop"`
	State         string       `json:"state"`
	Days          int          `json:"days"`
	Unit          string       `json:"unit"`
	Direction     string       `json:"direction"`
	ChangePercent float64      `json:"changePercent"`
	Points        []TrendPoint `json:"points"`
}

// Validate requires a crop and a sensible day count
func (r TrendRequest) Validate() error {
	if strings.TrimSpace(r.Crop) == "" {
		return errors.NewMissingParameterError("crop")
	}
	_, err := r.days()
	return err
}

func (r TrendRequest) days() (int, error) {
	raw := strings.TrimSpace(r.Days)
	if raw == "" {
		return defaultTrendDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return 0, errors.NewValidationError("days must be a positive integer")
	}
	return min(days, maxTrendDays), nil
}

// BuildTrend produces a price series for the request ending at today.
// The same crop, state and day count always yield the same prices.
func BuildTrend(request TrendRequest, defaultState string, today time.Time) (Trend, error) {
	if err := request.Validate(); err != nil {
		return Trend{}, err
	}

	days, _ := request.days()
	crop := strings.TrimSpace(request.Crop)
	state := valueOr(request.State, defaultState)

	rng := rand.New(rand.NewSource(trendSeed(crop, state, days)))
	price := BasePrice(crop)

	trend := Trend{
		Crop:   crop,
		State:  state,
		Days:   days,
		Unit:   PriceUnit,
		Points: make([]TrendPoint, 0, days),
	}

	start := today.AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		if i > 0 {
			price *= 1 + (rng.Float64()*2-1)*maxDailyDrift
		}
		trend.Points = append(trend.Points, TrendPoint{
			Date:       start.AddDate(0, 0, i).Format(time.DateOnly),
			ModalPrice: math.Round(price),
		})
	}

	first := trend.Points[0].ModalPrice
	last := trend.Points[len(trend.Points)-1].ModalPrice
	trend.ChangePercent = math.Round((last-first)/first*10000) / 100
	switch {
	case last > first:
		trend.Direction = "up"
	case last < first:
		trend.Direction = "down"
	default:
		trend.Direction = "flat"
	}

	return trend, nil
}

func trendSeed(crop, state string, days int) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.ToLower(crop) + "|" + strings.ToLower(state) + "|" + strconv.Itoa(days)))
	return int64(h.Sum64())
}
