package repository

import (
	"database/sql"
	"fmt"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
)

// UserRepository provides data access methods for the users table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// InsertUser stores a new user record.
func (r *UserRepository) InsertUser(user *model.User) error {
	query := `INSERT INTO users (user_id) VALUES (?)`

	if _, err := r.db.Exec(query, user.UserID); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UserExists reports whether a user with the given ID is already registered.
// Used during registration to guarantee ID uniqueness.
func (r *UserRepository) UserExists(userID string) (bool, error) {
	var count int

	query := `SELECT COUNT(1) FROM users WHERE user_id = ?`
	if err := r.db.QueryRow(query, userID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to query users table: %w", err)
	}

	return count > 0, nil
}

// GetUser retrieves a single user by ID.
// Returns sql.ErrNoRows wrapped if the user does not exist.
func (r *UserRepository) GetUser(userID string) (model.User, error) {
	var u model.User
	var createdAtStr string

	query := `SELECT user_id, created_at FROM users WHERE user_id = ?`
	err := r.db.QueryRow(query, userID).Scan(&u.UserID, &createdAtStr)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query users table: %w", err)
	}

	u.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.User{}, err
	}

	return u, nil
}
