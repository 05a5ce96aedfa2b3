package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/pricing"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/repository"
)

// QuoteRefreshJob warms the quote cache on a schedule so interactive
// dashboard requests usually hit fresh quotes instead of paying for an
// outbound lookup. It refreshes every catalog symbol in one batch call.
type QuoteRefreshJob struct {
	assetRepo *repository.AssetRepository
	source    pricing.QuoteSource
	cache     *pricing.QuoteCache
	timeout   time.Duration
}

// NewQuoteRefreshJob creates the cache-warming job.
func NewQuoteRefreshJob(
	assetRepo *repository.AssetRepository,
	source pricing.QuoteSource,
	cache *pricing.QuoteCache,
	timeout time.Duration,
) *QuoteRefreshJob {
	return &QuoteRefreshJob{
		assetRepo: assetRepo,
		source:    source,
		cache:     cache,
		timeout:   timeout,
	}
}

// Name implements scheduler.Job.
func (j *QuoteRefreshJob) Name() string {
	return "quote-refresh"
}

// Run fetches quotes for the full catalog and stores them in the cache.
// A failed run leaves existing entries alone; they simply expire.
func (j *QuoteRefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	assets, err := j.assetRepo.GetAssets()
	if err != nil {
		return fmt.Errorf("failed to load asset catalog: %w", err)
	}

	symbols := make([]string, len(assets))
	for i, a := range assets {
		symbols[i] = a.AssetID
	}

	quotes, err := j.source.PricesBatch(ctx, symbols)
	if err != nil {
		return fmt.Errorf("failed to refresh quotes: %w", err)
	}

	j.cache.SetAll(quotes)
	log.Printf("Refreshed %d of %d cached quotes", len(quotes), len(symbols))
	return nil
}
