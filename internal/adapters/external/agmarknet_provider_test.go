package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmerassist.app/internal/mocks"
	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAgmarknetServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resource/res-123", r.URL.Path)
		assert.Equal(t, "test-api-key", r.URL.Query().Get("api-key"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		assert.Equal(t, "Punjab", r.URL.Query().Get("filters[state]"))
		assert.Equal(t, "Ludhiana", r.URL.Query().Get("filters[district]"))
		assert.Equal(t, "Wheat", r.URL.Query().Get("filters[commodity]"))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestAgmarknet(t *testing.T, baseURL string) *AgmarknetProviderAdapter {
	return NewAgmarknetProviderAdapter(AgmarknetProviderParams{
		APIKey:     "test-api-key",
		BaseURL:    baseURL + "/",
		ResourceID: "res-123",
		Logger:     mocks.AllowAnyLogs(mocks.NewLogger(t)),
	})
}

var testMandiQuery = ports.MandiQuery{State: "Punjab", District: "Ludhiana", Commodity: "Wheat", Limit: 3}

func TestAgmarknetProvider_GetPrices_Success(t *testing.T) {
	server := newAgmarknetServer(t, http.StatusOK, `{
		"records": [
			{"state":"Punjab","district":"Ludhiana","market":"Khanna","commodity":"Wheat","variety":"Dara","arrival_date":"10/01/2025","min_price":"2200","max_price":"2350","modal_price":"2275"},
			{"state":"Punjab","district":"Ludhiana","market":"Jagraon","commodity":"Wheat","variety":"Other","arrival_date":"10/01/2025","min_price":2180,"max_price":2300,"modal_price":2250}
		]
	}`)
	provider := newTestAgmarknet(t, server.URL)

	records, err := provider.GetPrices(context.Background(), testMandiQuery)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, ports.MandiRecord{
		State:       "Punjab",
		District:    "Ludhiana",
		Market:      "Khanna",
		Commodity:   "Wheat",
		Variety:     "Dara",
		MinPrice:    2200,
		MaxPrice:    2350,
		ModalPrice:  2275,
		ArrivalDate: "10/01/2025",
	}, records[0])
	assert.Equal(t, 2250.0, records[1].ModalPrice)
	assert.Equal(t, "agmarknet", provider.GetProviderName())
}

func TestAgmarknetProvider_GetPrices_EmptyRecords(t *testing.T) {
	server := newAgmarknetServer(t, http.StatusOK, `{"records": []}`)
	provider := newTestAgmarknet(t, server.URL)

	records, err := provider.GetPrices(context.Background(), testMandiQuery)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAgmarknetProvider_GetPrices_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		errorType errors.ErrorType
	}{
		{"Forbidden", http.StatusForbidden, `{"error":"invalid key"}`, errors.ErrorTypeRemoteUnavailable},
		{"MissingRecords", http.StatusOK, `{"status":"ok"}`, errors.ErrorTypeMalformedRemoteResponse},
		{"NonNumericPrice", http.StatusOK, `{"records":[{"min_price":"NA","max_price":"1","modal_price":"1"}]}`, errors.ErrorTypeMalformedRemoteResponse},
		{"NotJSON", http.StatusOK, `<html></html>`, errors.ErrorTypeMalformedRemoteResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newAgmarknetServer(t, tt.status, tt.body)
			provider := newTestAgmarknet(t, server.URL)

			records, err := provider.GetPrices(context.Background(), testMandiQuery)

			assert.Nil(t, records)
			assert.Equal(t, tt.errorType, errors.TypeOf(err))
		})
	}
}
