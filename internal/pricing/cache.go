// Package pricing resolves live prices for portfolio valuation.
// It combines the external quote service with a TTL cache and a cost-basis
// fallback so that a pricing outage degrades a valuation instead of
// aborting it.
package pricing

import (
	"sync"
	"time"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
)

// QuoteCache is an injected, thread-safe TTL cache for quotes.
// It replaces the module-level cache of earlier iterations: ownership is
// explicit, expiry is a constructor parameter, and invalidation is a method
// the transaction flow calls after every write.
type QuoteCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	quote     model.PriceQuote
	fetchedAt time.Time
}

// NewQuoteCache creates a cache whose entries expire after ttl.
// A non-positive ttl yields a cache that never returns hits.
func NewQuoteCache(ttl time.Duration) *QuoteCache {
	return &QuoteCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached quote for the symbol if it is still fresh.
func (c *QuoteCache) Get(symbol string) (model.PriceQuote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[symbol]
	if !ok || time.Since(entry.fetchedAt) >= c.ttl {
		return model.PriceQuote{}, false
	}
	return entry.quote, true
}

// Set stores a quote, resetting its expiry clock.
func (c *QuoteCache) Set(quote model.PriceQuote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[quote.AssetID] = cacheEntry{quote: quote, fetchedAt: time.Now()}
}

// SetAll stores a batch of quotes under one lock acquisition.
func (c *QuoteCache) SetAll(prices map[string]model.PriceQuote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for symbol, quote := range prices {
		c.entries[symbol] = cacheEntry{quote: quote, fetchedAt: now}
	}
}

// Invalidate drops every cached quote. Called after ledger writes so the
// next valuation sees fresh data.
func (c *QuoteCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}
