package ports

import "context"

// MandiQuery selects market price rows
type MandiQuery struct {
	State     string
	District  string
	Commodity string
	Limit     int
}

// MandiRecord represents a single market price row as reported by a provider.
// Prices are in INR per quintal.
type MandiRecord struct {
	State       string
	District    string
	Market      string
	Commodity   string
	Variety     string
	MinPrice    float64
	MaxPrice    float64
	ModalPrice  float64
	ArrivalDate string
}

// MandiProvider defines the contract for remote market price data
type MandiProvider interface {
	GetPrices(ctx context.Context, query MandiQuery) ([]MandiRecord, error)
	GetProviderName() string
}
