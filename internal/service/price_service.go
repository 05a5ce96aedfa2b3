package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/pricing"
)

// PriceService exposes live quote lookups directly, backed by the same
// cache the valuation resolver uses.
type PriceService struct {
	source pricing.QuoteSource
	cache  *pricing.QuoteCache
}

// NewPriceService creates a new PriceService. The cache may be nil.
func NewPriceService(source pricing.QuoteSource, cache *pricing.QuoteCache) *PriceService {
	return &PriceService{source: source, cache: cache}
}

// GetPrice returns the current quote for a single symbol.
// Returns apperrors.ErrPriceUnavailable when the quote service has no price.
func (s *PriceService) GetPrice(ctx context.Context, symbol string) (model.PriceQuote, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return model.PriceQuote{}, apperrors.ErrEmptyID
	}

	if s.cache != nil {
		if quote, ok := s.cache.Get(symbol); ok {
			return quote, nil
		}
	}

	quote, err := s.source.Price(ctx, symbol)
	if err != nil {
		return model.PriceQuote{}, fmt.Errorf("%w: %v", apperrors.ErrPriceUnavailable, err)
	}

	if s.cache != nil {
		s.cache.Set(quote)
	}

	return quote, nil
}

// GetPrices returns current quotes for a batch of symbols in one call.
// Symbols the quote service does not know are absent from the result rather
// than an error.
func (s *PriceService) GetPrices(ctx context.Context, symbols []string) (map[string]model.PriceQuote, error) {
	quotes := make(map[string]model.PriceQuote)

	missing := []string{}
	for _, symbol := range symbols {
		symbol = strings.TrimSpace(symbol)
		if symbol == "" {
			continue
		}
		if s.cache != nil {
			if quote, ok := s.cache.Get(symbol); ok {
				quotes[symbol] = quote
				continue
			}
		}
		missing = append(missing, symbol)
	}

	if len(missing) > 0 {
		fetched, err := s.source.PricesBatch(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToRetrievePrice, err)
		}

		if s.cache != nil {
			s.cache.SetAll(fetched)
		}
		for symbol, quote := range fetched {
			quotes[symbol] = quote
		}
	}

	return quotes, nil
}
