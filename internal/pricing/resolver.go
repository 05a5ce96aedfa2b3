package pricing

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
)

// DefaultMaxConcurrentLookups bounds the per-asset fan-out when the batch
// lookup fails. Lookups beyond the cap queue behind the group limit.
const DefaultMaxConcurrentLookups = 50

// QuoteSource is the slice of the quote client the resolver depends on.
type QuoteSource interface {
	Price(ctx context.Context, symbol string) (model.PriceQuote, error)
	PricesBatch(ctx context.Context, symbols []string) (map[string]model.PriceQuote, error)
}

// Resolver obtains a current price for every active holding.
//
// Resolution order per valuation pass:
//  1. cache hits for still-fresh quotes;
//  2. one batched lookup for everything missing;
//  3. on batch failure, a bounded per-asset fan-out, failures isolated
//     per asset;
//  4. for assets still unpriced, the holding's average cost
//     (invested/quantity) substitutes so valuation degrades to
//     cost-basis-as-price instead of aborting.
type Resolver struct {
	source        QuoteSource
	cache         *QuoteCache
	maxConcurrent int
}

// NewResolver creates a Resolver. The cache may be nil to disable caching;
// maxConcurrent values below one fall back to DefaultMaxConcurrentLookups.
func NewResolver(source QuoteSource, cache *QuoteCache, maxConcurrent int) *Resolver {
	if maxConcurrent < 1 {
		maxConcurrent = DefaultMaxConcurrentLookups
	}
	return &Resolver{
		source:        source,
		cache:         cache,
		maxConcurrent: maxConcurrent,
	}
}

// Resolve returns a price per asset for every active holding.
//
// The result always contains an entry for each holding with nonzero quantity:
// live price when obtainable, average cost otherwise. Holdings with zero
// quantity are not requested at all; they are excluded from valuation by the
// engine, and without a quantity there is no cost basis to fall back on.
func (r *Resolver) Resolve(ctx context.Context, holdings []model.Holding) map[string]float64 {
	prices := make(map[string]float64)

	missing := []model.Holding{}
	for _, h := range holdings {
		if !h.Active() {
			continue
		}
		if quote, ok := r.cacheGet(h.AssetID); ok {
			prices[h.AssetID] = quote.Price
			continue
		}
		missing = append(missing, h)
	}

	if len(missing) > 0 {
		fetched := r.fetch(ctx, missing)
		r.cacheSetAll(fetched)

		for _, h := range missing {
			if quote, ok := fetched[h.AssetID]; ok {
				prices[h.AssetID] = quote.Price
			} else {
				// Cost-basis fallback: valuation degrades, never aborts.
				log.Printf("no live price for %s, falling back to average cost", h.AssetID)
				prices[h.AssetID] = h.Invested / h.Quantity
			}
		}
	}

	return prices
}

// fetch tries the batch endpoint first and falls back to a bounded
// per-asset fan-out when the whole batch fails.
func (r *Resolver) fetch(ctx context.Context, holdings []model.Holding) map[string]model.PriceQuote {
	symbols := make([]string, len(holdings))
	for i, h := range holdings {
		symbols[i] = h.AssetID
	}

	fetched, err := r.source.PricesBatch(ctx, symbols)
	if err == nil {
		return fetched
	}
	log.Printf("batch price lookup failed, falling back to individual lookups: %v", err)

	fetched = make(map[string]model.PriceQuote, len(symbols))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxConcurrent)

	for _, symbol := range symbols {
		g.Go(func() error {
			quote, err := r.source.Price(ctx, symbol)
			if err != nil {
				// Per-asset failures are isolated; the caller substitutes
				// the cost-basis fallback for this symbol.
				log.Printf("price lookup failed for %s: %v", symbol, err)
				return nil
			}
			mu.Lock()
			fetched[symbol] = quote
			mu.Unlock()
			return nil
		})
	}

	// Goroutines never return errors; Wait only synchronizes.
	_ = g.Wait()

	return fetched
}

func (r *Resolver) cacheGet(symbol string) (model.PriceQuote, bool) {
	if r.cache == nil {
		return model.PriceQuote{}, false
	}
	return r.cache.Get(symbol)
}

func (r *Resolver) cacheSetAll(prices map[string]model.PriceQuote) {
	if r.cache == nil || len(prices) == 0 {
		return
	}
	r.cache.SetAll(prices)
}
