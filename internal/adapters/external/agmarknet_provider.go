package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"farmerassist.app/internal/ports"
)

const agmarknetService = "Agmarknet"

// AgmarknetProviderAdapter implements MandiProvider against the data.gov.in
// daily mandi price resource
type AgmarknetProviderAdapter struct {
	apiKey     string
	baseURL    string
	resourceID string
	call       remoteCall
}

// AgmarknetProviderParams holds parameters for creating the Agmarknet provider
type AgmarknetProviderParams struct {
	APIKey     string
	BaseURL    string
	ResourceID string
	Client     HTTPClient
	Logger     ports.Logger
}

// AgmarknetResponse represents the resource response; prices arrive as strings
type AgmarknetResponse struct {
	Records *[]struct {
		State       string      `json:"state"`
		District    string      `json:"district"`
		Market      string      `json:"market"`
		Commodity   string      `json:"commodity"`
		Variety     string      `json:"variety"`
		ArrivalDate string      `json:"arrival_date"`
		MinPrice    json.Number `json:"min_price"`
		MaxPrice    json.Number `json:"max_price"`
		ModalPrice  json.Number `json:"modal_price"`
	} `json:"records"`
}

// NewAgmarknetProviderAdapter creates a new Agmarknet provider adapter
func NewAgmarknetProviderAdapter(params AgmarknetProviderParams) *AgmarknetProviderAdapter {
	client := params.Client
	if client == nil {
		client = &http.Client{}
	}

	return &AgmarknetProviderAdapter{
		apiKey:     params.APIKey,
		baseURL:    strings.TrimRight(params.BaseURL, "/"),
		resourceID: params.ResourceID,
		call: remoteCall{
			service: agmarknetService,
			client:  client,
			logger:  params.Logger,
		},
	}
}

// GetPrices retrieves price rows filtered by state, district and commodity
func (p *AgmarknetProviderAdapter) GetPrices(ctx context.Context, query ports.MandiQuery) ([]ports.MandiRecord, error) {
	var resp AgmarknetResponse
	if err := p.call.get(ctx, p.endpoint(query), &resp); err != nil {
		return nil, err
	}
	if resp.Records == nil {
		return nil, malformed(agmarknetService, "is missing records")
	}

	records := make([]ports.MandiRecord, 0, len(*resp.Records))
	for i, raw := range *resp.Records {
		minPrice, errMin := parsePrice(raw.MinPrice)
		maxPrice, errMax := parsePrice(raw.MaxPrice)
		modalPrice, errModal := parsePrice(raw.ModalPrice)
		if errMin != nil || errMax != nil || errModal != nil {
			return nil, malformed(agmarknetService, fmt.Sprintf("record %d has a non-numeric price", i))
		}

		records = append(records, ports.MandiRecord{
			State:       raw.State,
			District:    raw.District,
			Market:      raw.Market,
			Commodity:   raw.Commodity,
			Variety:     raw.Variety,
			MinPrice:    minPrice,
			MaxPrice:    maxPrice,
			ModalPrice:  modalPrice,
			ArrivalDate: raw.ArrivalDate,
		})
	}

	return records, nil
}

// GetProviderName returns the name of this mandi provider
func (p *AgmarknetProviderAdapter) GetProviderName() string {
	return "agmarknet"
}

func (p *AgmarknetProviderAdapter) endpoint(query ports.MandiQuery) string {
	values := url.Values{}
	values.Set("api-key", p.apiKey)
	values.Set("format", "json")
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.State != "" {
		values.Set("filters[state]", query.State)
	}
	if query.District != "" {
		values.Set("filters[district]", query.District)
	}
	if query.Commodity != "" {
		values.Set("filters[commodity]", query.Commodity)
	}
	return fmt.Sprintf("%s/resource/%s?%s", p.baseURL, url.PathEscape(p.resourceID), values.Encode())
}

func parsePrice(value json.Number) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(value.String()), 64)
}
