// Package ratesapi fetches live exchange rates from the rate provider's HTTP API.
package ratesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SscSPs/dealership_finance_app/internal/apperrors"
	"github.com/SscSPs/dealership_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/dealership_finance_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

type rateRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type rateResponse struct {
	Rate  decimal.NullDecimal `json:"rate"`
	Error string              `json:"error,omitempty"`
}

// Client posts {"from","to"} to the provider endpoint and reads {"rate"} back.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Client for endpoint. A non-positive timeout uses the default.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ portsrepo.LiveRateSource = (*Client)(nil)

// FetchRate makes one request per call. Any transport failure, non-2xx status or
// non-positive rate is reported as apperrors.ErrUpstream.
func (c *Client) FetchRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (decimal.Decimal, error) {
	pair := domain.NewRatePair(fromCurrencyCode, toCurrencyCode)

	body, err := json.Marshal(rateRequest{From: pair.From, To: pair.To})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to encode rate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build rate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: rate request for %s failed: %v", apperrors.ErrUpstream, pair.Key(), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: reading rate response: %v", apperrors.ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decimal.Zero, fmt.Errorf("%w: rate provider returned status %d for %s", apperrors.ErrUpstream, resp.StatusCode, pair.Key())
	}

	var parsed rateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return decimal.Zero, fmt.Errorf("%w: malformed rate response: %v", apperrors.ErrUpstream, err)
	}
	if parsed.Error != "" {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrUpstream, parsed.Error)
	}
	if !parsed.Rate.Valid || !parsed.Rate.Decimal.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: rate provider returned no usable rate for %s", apperrors.ErrUpstream, pair.Key())
	}
	return parsed.Rate.Decimal, nil
}
