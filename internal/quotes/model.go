package quotes

// batchResponse represents the raw JSON response from the batch quote endpoint.
// Contains one result per requested symbol; symbols the service cannot quote
// are simply absent from the result array.
type batchResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol             string  `json:"symbol"`
			RegularMarketPrice float64 `json:"regularMarketPrice"`
			RegularMarketTime  int64   `json:"regularMarketTime"`
			Currency           string  `json:"currency"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"quoteResponse"`
}

// chartResponse represents the raw JSON response from the single-symbol chart
// endpoint. Only the fields the client reads are mapped: timestamps, close
// prices, and the symbol metadata.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency string `json:"currency"`
				Symbol   string `json:"symbol"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}
