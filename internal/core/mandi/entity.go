package mandi

import (
	"strconv"
	"strings"

	"farmerassist.app/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PriceUnit is the unit every price in this package is expressed in
const PriceUnit = "INR/quintal"

// PriceRequest carries the price query exactly as it arrived; every field is optional
type PriceRequest struct {
	State    string
	District string
	Crop     string
	Limit    string
}

// Defaults fills in the fields a request leaves out
type Defaults struct {
	State    string
	District string
	Crop     string
	Limit    int
	MaxLimit int
}

// PriceQuery is a resolved price request. It is the unit of caching.
type PriceQuery struct {
	State    string
	District string
	Crop     string
	Limit    int
}

// Price is one market price row
type Price struct {
	Market      string  `json:"market"`
	District    string  `json:"district"`
	State       string  `json:"state"`
	Commodity   string  `json:"commodity"`
	Variety     string  `json:"variety,omitempty"`
	MinPrice    float64 `json:"minPrice"`
	MaxPrice    float64 `json:"maxPrice"`
	ModalPrice  float64 `json:"modalPrice"`
	ArrivalDate string  `json:"arrivalDate,omitempty"`
}

// Prices is the normalized price response
type Prices struct {
	State    string  `json:"state"`
	District string  `json:"district"`
	Crop     string  `json:"crop"`
	Unit     string  `json:"unit"`
	Results  []Price `json:"results"`
}

// Validate checks the request shape without applying defaults
func (d Defaults) Validate() error {
	if strings.TrimSpace(d.State) == "" || strings.TrimSpace(d.District) == "" || strings.TrimSpace(d.Crop) == "" {
		return errors.NewValidationError("default state, district and crop are required")
	}
	if d.Limit < 1 || d.MaxLimit < d.Limit {
		return errors.NewValidationError("default limit must be between 1 and the maximum limit")
	}
	return nil
}

// Resolve applies defaults and parses the limit. A limit above the maximum is clamped.
// Names are title-cased the way Agmarknet spells them, so "wheat" and "WHEAT" resolve alike.
func (r PriceRequest) Resolve(d Defaults) (PriceQuery, error) {
	query := PriceQuery{
		State:    canonicalName(valueOr(r.State, d.State)),
		District: canonicalName(valueOr(r.District, d.District)),
		Crop:     canonicalName(valueOr(r.Crop, d.Crop)),
		Limit:    d.Limit,
	}

	if raw := strings.TrimSpace(r.Limit); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return PriceQuery{}, errors.NewValidationError("limit must be a positive integer")
		}
		query.Limit = limit
	}
	if d.MaxLimit > 0 && query.Limit > d.MaxLimit {
		query.Limit = d.MaxLimit
	}

	return query, nil
}

// Validate rejects queries that could not have come out of Resolve
func (q PriceQuery) Validate() error {
	if q.Limit < 1 {
		return errors.NewValidationError("limit must be a positive integer")
	}
	return nil
}

// Key lists the parameters that identify a cached price list, limit included.
// Names compare case-insensitively.
func (q PriceQuery) Key() []string {
	return []string{
		strings.ToLower(q.State),
		strings.ToLower(q.District),
		strings.ToLower(q.Crop),
		strconv.Itoa(q.Limit),
	}
}

// canonicalName collapses inner whitespace and title-cases each word.
// A Caser is not safe for concurrent use, so one is built per call.
func canonicalName(name string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}

func valueOr(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
