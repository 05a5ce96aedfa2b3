package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
)

// TransactionRepository provides data access methods for the transaction table.
// It handles storing and querying the per-user transaction ledger.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetTransactionsByUser retrieves all transactions for the given user,
// sorted by date in ascending order. This is the iteration order the
// aggregation engine folds over.
//
// Returns an empty slice, not an error, when the user has no transactions.
func (r *TransactionRepository) GetTransactionsByUser(userID string) ([]model.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, asset_id, transaction_type, quantity, price, date, created_at
		FROM "transaction"
		WHERE user_id = ?
		ORDER BY date ASC, created_at ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		var dateStr, createdAtStr string
		var t model.Transaction

		err := rows.Scan(
			&t.TransactionID,
			&t.UserID,
			&t.AssetID,
			&t.Type,
			&t.Quantity,
			&t.Price,
			&dateStr,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}

		t.Date, err = ParseTime(dateStr)
		if err != nil || t.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		t.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil || t.CreatedAt.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by its ID.
// Returns apperrors.ErrTransactionNotFound if no such transaction exists.
func (r *TransactionRepository) GetTransaction(transactionID string) (model.Transaction, error) {
	if transactionID == "" {
		return model.Transaction{}, apperrors.ErrEmptyID
	}

	query := `
		SELECT transaction_id, user_id, asset_id, transaction_type, quantity, price, date, created_at
		FROM "transaction"
		WHERE transaction_id = ?
	`

	var t model.Transaction
	var dateStr, createdAtStr string

	err := r.db.QueryRow(query, transactionID).Scan(
		&t.TransactionID,
		&t.UserID,
		&t.AssetID,
		&t.Type,
		&t.Quantity,
		&t.Price,
		&dateStr,
		&createdAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan transaction table results: %w", err)
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil || t.Date.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}

	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || t.CreatedAt.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return t, nil
}

// InsertTransaction stores a new transaction record.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		INSERT INTO "transaction" (transaction_id, user_id, asset_id, transaction_type, quantity, price, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.TransactionID,
		t.UserID,
		t.AssetID,
		t.Type,
		t.Quantity,
		t.Price,
		t.Date.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// HeldQuantity returns the signed quantity of the asset the user currently
// holds, folding buys and sells directly in SQL. Used by the sell-quantity
// guard before accepting a sale.
func (r *TransactionRepository) HeldQuantity(userID, assetID string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE WHEN transaction_type = 'Buy' THEN quantity ELSE -quantity END
		), 0)
		FROM "transaction"
		WHERE user_id = ? AND asset_id = ?
	`

	var quantity float64
	if err := r.db.QueryRow(query, userID, assetID).Scan(&quantity); err != nil {
		return 0, fmt.Errorf("failed to query held quantity: %w", err)
	}

	return quantity, nil
}
