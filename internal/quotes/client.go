// Package quotes provides an HTTP client for the external quote service.
// It exposes a single-symbol lookup and a batched lookup; the pricing resolver
// decides which to use and how to degrade when either fails.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
)

// Client fetches live prices from the quote service.
// It wraps an http.Client with a per-request timeout; each call is also
// bounded by the caller's context.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a quote client against the given base URL.
// A non-positive timeout disables the client-level bound, leaving only the
// per-call context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Price fetches the most recent price for a single symbol.
// It queries the last five trading days of daily closes and returns the
// latest one, so a symbol that did not trade today still resolves.
func (c *Client) Price(ctx context.Context, symbol string) (model.PriceQuote, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=5d", c.baseURL, url.PathEscape(symbol))

	var response chartResponse
	if err := c.get(ctx, endpoint, &response); err != nil {
		return model.PriceQuote{}, err
	}

	if response.Chart.Error != nil {
		return model.PriceQuote{}, fmt.Errorf("quote service error: %s", *response.Chart.Error)
	}
	if len(response.Chart.Result) == 0 {
		return model.PriceQuote{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	result := response.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return model.PriceQuote{}, fmt.Errorf("no price data returned for symbol %s", symbol)
	}

	closes := result.Indicators.Quote[0].Close
	if len(closes) != len(result.Timestamp) {
		return model.PriceQuote{}, fmt.Errorf("mismatched data lengths for symbol %s", symbol)
	}

	// Walk back to the newest non-zero close; trailing entries can be null
	// for the current, not-yet-closed trading day.
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] > 0 {
			return model.PriceQuote{
				AssetID: result.Meta.Symbol,
				Price:   closes[i],
				Time:    time.Unix(result.Timestamp[i], 0).UTC(),
			}, nil
		}
	}

	return model.PriceQuote{}, fmt.Errorf("no close prices returned for symbol %s", symbol)
}

// PricesBatch fetches current prices for multiple symbols in one call.
// The returned map holds one entry per symbol the service could quote;
// missing symbols are absent, not zero. An empty symbol list short-circuits
// to an empty map without a network call.
func (c *Client) PricesBatch(ctx context.Context, symbols []string) (map[string]model.PriceQuote, error) {
	if len(symbols) == 0 {
		return map[string]model.PriceQuote{}, nil
	}

	endpoint := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.baseURL, url.QueryEscape(strings.Join(symbols, ",")))

	var response batchResponse
	if err := c.get(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	if response.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("quote service error: %s", *response.QuoteResponse.Error)
	}

	prices := make(map[string]model.PriceQuote, len(response.QuoteResponse.Result))
	for _, result := range response.QuoteResponse.Result {
		if result.RegularMarketPrice <= 0 {
			continue
		}
		prices[result.Symbol] = model.PriceQuote{
			AssetID: result.Symbol,
			Price:   result.RegularMarketPrice,
			Time:    time.Unix(result.RegularMarketTime, 0).UTC(),
		}
	}

	return prices, nil
}

// get executes a GET request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quote service returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode quote response: %w", err)
	}

	return nil
}
