package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
)

// MockQuoteSource is a mock implementation of pricing.QuoteSource for testing.
// It serves quotes from a fixed price table instead of calling the real quote
// service, and counts calls so tests can assert on lookup behavior.
type MockQuoteSource struct {
	mu sync.Mutex

	// Prices maps symbol to the price to serve. Symbols absent from the map
	// are unknown: individual lookups fail, batch lookups omit them.
	Prices map[string]float64

	// MockError, when set, fails every query method
	MockError error

	// Call counters
	PriceCalls int
	BatchCalls int
}

// NewMockQuoteSource creates a mock source serving the given price table.
func NewMockQuoteSource(prices map[string]float64) *MockQuoteSource {
	if prices == nil {
		prices = map[string]float64{}
	}
	return &MockQuoteSource{Prices: prices}
}

// WithError configures the mock to fail every lookup with err.
func (m *MockQuoteSource) WithError(err error) *MockQuoteSource {
	m.MockError = err
	return m
}

// Price mocks a single-symbol quote lookup.
func (m *MockQuoteSource) Price(_ context.Context, symbol string) (model.PriceQuote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PriceCalls++
	if m.MockError != nil {
		return model.PriceQuote{}, m.MockError
	}

	price, ok := m.Prices[symbol]
	if !ok {
		return model.PriceQuote{}, ErrUnknownSymbol
	}

	return model.PriceQuote{AssetID: symbol, Price: price, Time: time.Now().UTC()}, nil
}

// PricesBatch mocks a batch quote lookup. Unknown symbols are silently
// omitted, matching the real quote endpoint.
func (m *MockQuoteSource) PricesBatch(_ context.Context, symbols []string) (map[string]model.PriceQuote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.BatchCalls++
	if m.MockError != nil {
		return nil, m.MockError
	}

	quotes := make(map[string]model.PriceQuote)
	now := time.Now().UTC()
	for _, symbol := range symbols {
		if price, ok := m.Prices[symbol]; ok {
			quotes[symbol] = model.PriceQuote{AssetID: symbol, Price: price, Time: now}
		}
	}

	return quotes, nil
}
