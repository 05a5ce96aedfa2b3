package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
)

// UserBuilder provides a fluent interface for creating test users.
//
// Example usage:
//
//	// Simple creation with defaults
//	user := testutil.NewUser().Build(t, db)
//
//	// Customized user
//	user := testutil.NewUser().WithID("abc123").Build(t, db)
type UserBuilder struct {
	UserID string
}

// NewUser creates a UserBuilder with a random valid user ID.
func NewUser() *UserBuilder {
	return &UserBuilder{UserID: MakeUserID()}
}

// WithID sets a custom user ID.
func (b *UserBuilder) WithID(userID string) *UserBuilder {
	b.UserID = userID
	return b
}

// Build creates the user in the database and returns it.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	query := `INSERT INTO users (user_id) VALUES (?)`
	if _, err := db.Exec(query, b.UserID); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return model.User{UserID: b.UserID}
}

// CreateUser creates a user with the given ID.
//
// Example usage:
//
//	user := testutil.CreateUser(t, db, "abc123")
func CreateUser(t *testing.T, db *sql.DB, userID string) model.User {
	t.Helper()
	return NewUser().WithID(userID).Build(t, db)
}

// AssetBuilder provides a fluent interface for creating test catalog assets.
//
// Example usage:
//
//	asset := testutil.NewAsset().
//	    WithID("TSLA").
//	    WithName("Tesla").
//	    WithType("Stock").
//	    Build(t, db)
type AssetBuilder struct {
	AssetID   string
	AssetName string
	AssetType string
}

// NewAsset creates an AssetBuilder with sensible defaults.
func NewAsset() *AssetBuilder {
	symbol := MakeSymbol("TST")
	return &AssetBuilder{
		AssetID:   symbol,
		AssetName: "Test Asset " + symbol,
		AssetType: "Stock",
	}
}

// WithID sets a custom asset ID.
func (b *AssetBuilder) WithID(assetID string) *AssetBuilder {
	b.AssetID = assetID
	return b
}

// WithName sets a custom display name.
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.AssetName = name
	return b
}

// WithType sets a custom asset type.
func (b *AssetBuilder) WithType(assetType string) *AssetBuilder {
	b.AssetType = assetType
	return b
}

// Build creates the asset in the database and returns it.
func (b *AssetBuilder) Build(t *testing.T, db *sql.DB) model.Asset {
	t.Helper()

	query := `INSERT INTO asset (asset_id, asset_name, asset_type) VALUES (?, ?, ?)`
	if _, err := db.Exec(query, b.AssetID, b.AssetName, b.AssetType); err != nil {
		t.Fatalf("Failed to create test asset: %v", err)
	}

	return model.Asset{
		AssetID:   b.AssetID,
		AssetName: b.AssetName,
		AssetType: b.AssetType,
	}
}

// CreateAsset creates a catalog asset with the given ID and default values.
//
// Example usage:
//
//	asset := testutil.CreateAsset(t, db, "TSLA")
func CreateAsset(t *testing.T, db *sql.DB, assetID string) model.Asset {
	t.Helper()
	return NewAsset().WithID(assetID).WithName(assetID + " Inc.").Build(t, db)
}

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	tx := testutil.NewTransaction(user.UserID, asset.AssetID).
//	    Sell().
//	    WithQuantity(2).
//	    WithPrice(150).
//	    WithDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)).
//	    Build(t, db)
type TransactionBuilder struct {
	TransactionID string
	UserID        string
	AssetID       string
	Type          string
	Quantity      float64
	Price         float64
	Date          time.Time
}

// NewTransaction creates a TransactionBuilder defaulting to a buy of one unit.
func NewTransaction(userID, assetID string) *TransactionBuilder {
	return &TransactionBuilder{
		TransactionID: MakeID(),
		UserID:        userID,
		AssetID:       assetID,
		Type:          model.TransactionTypeBuy,
		Quantity:      1,
		Price:         100,
		Date:          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

// Buy marks the transaction as a buy.
func (b *TransactionBuilder) Buy() *TransactionBuilder {
	b.Type = model.TransactionTypeBuy
	return b
}

// Sell marks the transaction as a sell.
func (b *TransactionBuilder) Sell() *TransactionBuilder {
	b.Type = model.TransactionTypeSell
	return b
}

// WithType sets an arbitrary transaction type. Only useful for tests that
// exercise rejection of unknown types.
func (b *TransactionBuilder) WithType(transactionType string) *TransactionBuilder {
	b.Type = transactionType
	return b
}

// WithQuantity sets a custom quantity.
func (b *TransactionBuilder) WithQuantity(quantity float64) *TransactionBuilder {
	b.Quantity = quantity
	return b
}

// WithPrice sets a custom per-unit price.
func (b *TransactionBuilder) WithPrice(price float64) *TransactionBuilder {
	b.Price = price
	return b
}

// WithDate sets a custom transaction date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.Date = date
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO "transaction" (transaction_id, user_id, asset_id, transaction_type, quantity, price, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.TransactionID,
		b.UserID,
		b.AssetID,
		b.Type,
		b.Quantity,
		b.Price,
		b.Date.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		TransactionID: b.TransactionID,
		UserID:        b.UserID,
		AssetID:       b.AssetID,
		Type:          b.Type,
		Quantity:      b.Quantity,
		Price:         b.Price,
		Date:          b.Date.UTC(),
	}
}

// CreateBuy records a buy with default date.
//
// Example usage:
//
//	testutil.CreateBuy(t, db, user.UserID, "TSLA", 2, 100)
func CreateBuy(t *testing.T, db *sql.DB, userID, assetID string, quantity, price float64) model.Transaction {
	t.Helper()
	return NewTransaction(userID, assetID).Buy().WithQuantity(quantity).WithPrice(price).Build(t, db)
}

// CreateSell records a sell with default date.
func CreateSell(t *testing.T, db *sql.DB, userID, assetID string, quantity, price float64) model.Transaction {
	t.Helper()
	return NewTransaction(userID, assetID).Sell().WithQuantity(quantity).WithPrice(price).Build(t, db)
}
