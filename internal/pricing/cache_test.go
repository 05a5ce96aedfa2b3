package pricing_test

import (
	"testing"
	"time"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/pricing"
)

// TestQuoteCache tests TTL expiry and explicit invalidation.
//
// WHY: Stale quotes are worse than no quotes. Users would see valuations
// based on prices from before their latest trade. Expiry and the post-write
// Invalidate call are the two mechanisms preventing that.
func TestQuoteCache(t *testing.T) {
	aaa := model.PriceQuote{AssetID: "AAA", Price: 8}

	t.Run("fresh entry is returned", func(t *testing.T) {
		cache := pricing.NewQuoteCache(time.Minute)
		cache.Set(aaa)

		got, ok := cache.Get("AAA")
		if !ok || got.Price != 8 {
			t.Errorf("Expected hit with price 8, got %v (hit=%v)", got.Price, ok)
		}
	})

	t.Run("unknown symbol misses", func(t *testing.T) {
		cache := pricing.NewQuoteCache(time.Minute)

		if _, ok := cache.Get("ZZZ"); ok {
			t.Error("Expected miss for unknown symbol")
		}
	})

	t.Run("entry expires after ttl", func(t *testing.T) {
		cache := pricing.NewQuoteCache(10 * time.Millisecond)
		cache.Set(aaa)

		time.Sleep(20 * time.Millisecond)

		if _, ok := cache.Get("AAA"); ok {
			t.Error("Expected expired entry to miss")
		}
	})

	t.Run("zero ttl never hits", func(t *testing.T) {
		cache := pricing.NewQuoteCache(0)
		cache.Set(aaa)

		if _, ok := cache.Get("AAA"); ok {
			t.Error("Expected zero-ttl cache to miss")
		}
	})

	t.Run("invalidate clears everything", func(t *testing.T) {
		cache := pricing.NewQuoteCache(time.Minute)
		cache.SetAll(map[string]model.PriceQuote{
			"AAA": aaa,
			"BBB": {AssetID: "BBB", Price: 25},
		})

		cache.Invalidate()

		if _, ok := cache.Get("AAA"); ok {
			t.Error("Expected AAA dropped after invalidation")
		}
		if _, ok := cache.Get("BBB"); ok {
			t.Error("Expected BBB dropped after invalidation")
		}
	})
}
