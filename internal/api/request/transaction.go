package request

type CreateTransactionRequest struct {
	UserID   string  `json:"user_id"`
	AssetID  string  `json:"asset_id"`
	Type     string  `json:"transaction_type"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	// Date is optional; empty means "now". Format: 2006-01-02.
	Date string `json:"date,omitempty"`
}
