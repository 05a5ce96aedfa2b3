package quotes_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/quotes"
)

// TestClient_Price tests single-symbol chart lookups.
//
// WHY: The chart endpoint pads the current trading day with null closes;
// the client must walk back to the newest real close instead of returning
// zero or failing.
func TestClient_Price(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the newest non-null close", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v8/finance/chart/TSLA" {
				t.Errorf("Unexpected path: %s", r.URL.Path)
			}
			fmt.Fprint(w, `{
				"chart": {
					"result": [{
						"meta": {"symbol": "TSLA"},
						"timestamp": [1717200000, 1717286400, 1717372800],
						"indicators": {"quote": [{"close": [38.5, 40.25, 0]}]}
					}],
					"error": null
				}
			}`)
		}))
		defer server.Close()

		client := quotes.NewClient(server.URL, time.Second)

		quote, err := client.Price(ctx, "TSLA")
		if err != nil {
			t.Fatalf("Failed to fetch price: %v", err)
		}

		if quote.AssetID != "TSLA" {
			t.Errorf("Expected symbol TSLA, got %s", quote.AssetID)
		}
		if quote.Price != 40.25 {
			t.Errorf("Expected price 40.25 (newest non-zero close), got %v", quote.Price)
		}
	})

	t.Run("fails when the service reports an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"chart": {"result": [], "error": "Not Found"}}`)
		}))
		defer server.Close()

		client := quotes.NewClient(server.URL, time.Second)

		if _, err := client.Price(ctx, "NOPE"); err == nil {
			t.Error("Expected error for service-reported failure, got nil")
		}
	})

	t.Run("fails on a non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := quotes.NewClient(server.URL, time.Second)

		if _, err := client.Price(ctx, "TSLA"); err == nil {
			t.Error("Expected error for 429 response, got nil")
		}
	})
}

// TestClient_PricesBatch tests the batched quote lookup.
func TestClient_PricesBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("maps each quoted symbol", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("symbols"); got != "TSLA,AAPL" {
				t.Errorf("Unexpected symbols parameter: %s", got)
			}
			fmt.Fprint(w, `{
				"quoteResponse": {
					"result": [
						{"symbol": "TSLA", "regularMarketPrice": 40.25, "regularMarketTime": 1717372800},
						{"symbol": "AAPL", "regularMarketPrice": 201.5, "regularMarketTime": 1717372800}
					],
					"error": null
				}
			}`)
		}))
		defer server.Close()

		client := quotes.NewClient(server.URL, time.Second)

		prices, err := client.PricesBatch(ctx, []string{"TSLA", "AAPL"})
		if err != nil {
			t.Fatalf("Failed to fetch batch: %v", err)
		}

		if len(prices) != 2 {
			t.Fatalf("Expected 2 quotes, got %d", len(prices))
		}
		if prices["TSLA"].Price != 40.25 || prices["AAPL"].Price != 201.5 {
			t.Errorf("Unexpected prices: %+v", prices)
		}
	})

	t.Run("omits symbols the service did not quote", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{
				"quoteResponse": {
					"result": [{"symbol": "TSLA", "regularMarketPrice": 40.25, "regularMarketTime": 1717372800}],
					"error": null
				}
			}`)
		}))
		defer server.Close()

		client := quotes.NewClient(server.URL, time.Second)

		prices, err := client.PricesBatch(ctx, []string{"TSLA", "NOPE"})
		if err != nil {
			t.Fatalf("Failed to fetch batch: %v", err)
		}

		if _, ok := prices["NOPE"]; ok {
			t.Error("Expected unquoted symbol to be absent")
		}
		if len(prices) != 1 {
			t.Errorf("Expected 1 quote, got %d", len(prices))
		}
	})

	t.Run("short-circuits an empty symbol list", func(t *testing.T) {
		// Any request would hit a closed server and fail, so success proves
		// no call was made.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := quotes.NewClient(server.URL, time.Second)

		prices, err := client.PricesBatch(ctx, nil)
		if err != nil {
			t.Fatalf("Expected no error for empty input, got %v", err)
		}
		if len(prices) != 0 {
			t.Errorf("Expected empty result, got %d entries", len(prices))
		}
	})
}
