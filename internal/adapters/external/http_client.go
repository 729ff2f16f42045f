// Package external provides adapters for the remote collaborators fronted by
// the cache: weather, mandi prices, translation and text-to-speech.
package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"farmerassist.app/internal/ports"
	"farmerassist.app/pkg/errors"
)

const maxErrorBodyBytes = 512

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// remoteCall issues requests for a single named remote service and maps
// transport and decoding failures onto the remote error taxonomy
type remoteCall struct {
	service string
	client  HTTPClient
	logger  ports.Logger
}

func (c remoteCall) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("invalid %s request", c.service), err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c remoteCall) postJSON(ctx context.Context, url, apiKey string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("failed to encode %s request", c.service), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("invalid %s request", c.service), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	return c.do(req, out)
}

func (c remoteCall) do(req *http.Request, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return errors.NewRemoteUnavailableError(fmt.Sprintf("failed to call %s", c.service), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close response body", ports.F("service", c.service), ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var cause error
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if body := bytes.TrimSpace(snippet); len(body) > 0 {
			cause = fmt.Errorf("response body: %s", body)
		}
		return errors.NewRemoteUnavailableError(
			fmt.Sprintf("%s returned status %d", c.service, resp.StatusCode), cause)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewMalformedRemoteResponseError(fmt.Sprintf("failed to decode %s response", c.service), err)
	}

	return nil
}

func malformed(service, detail string) error {
	return errors.NewMalformedRemoteResponseError(fmt.Sprintf("%s response %s", service, detail), nil)
}
