// Package service implements the application's business logic on top of the
// repository layer: registration, transaction ingestion, portfolio valuation,
// gain analysis and price lookups.
package service

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/fernet/fernet-go"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/repository"
)

const (
	userIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	userIDLength   = 6

	// maxIDAttempts bounds the uniqueness retry loop during registration.
	// With 36^6 possible IDs, hitting the bound means something is wrong
	// with the ID space, not bad luck.
	maxIDAttempts = 10
)

// UserService handles user registration and lookups.
type UserService struct {
	userRepo *repository.UserRepository
	key      *fernet.Key
}

// NewUserService creates a new UserService. fernetKey is the base64-encoded
// signing key for registration tokens; empty disables token issuance.
func NewUserService(userRepo *repository.UserRepository, fernetKey string) (*UserService, error) {
	s := &UserService{userRepo: userRepo}

	if fernetKey != "" {
		key, err := fernet.DecodeKey(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decode fernet key: %w", err)
		}
		s.key = key
	}

	return s, nil
}

// RegisterUser creates a new user with a randomly generated ID.
// The ID is six lowercase alphanumerics, retried until unused. When a signing
// key is configured, the response carries a fernet token over the ID that
// clients can present to prove the ID came from this service.
func (s *UserService) RegisterUser() (model.RegistrationResponse, error) {
	userID, err := s.generateUserID()
	if err != nil {
		return model.RegistrationResponse{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRegisterUser, err)
	}

	if err := s.userRepo.InsertUser(&model.User{UserID: userID}); err != nil {
		return model.RegistrationResponse{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRegisterUser, err)
	}

	resp := model.RegistrationResponse{UserID: userID}
	if s.key != nil {
		token, err := fernet.EncryptAndSign([]byte(userID), s.key)
		if err != nil {
			return model.RegistrationResponse{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToRegisterUser, err)
		}
		resp.Token = string(token)
	}

	log.Printf("Registered user %s", userID)
	return resp, nil
}

// Exists reports whether a user with the given ID is registered.
func (s *UserService) Exists(userID string) (bool, error) {
	return s.userRepo.UserExists(userID)
}

// generateUserID produces an unused random user ID, retrying on collisions.
func (s *UserService) generateUserID() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		userID := randomUserID()

		exists, err := s.userRepo.UserExists(userID)
		if err != nil {
			return "", err
		}
		if !exists {
			return userID, nil
		}
	}

	return "", fmt.Errorf("no unused user ID found after %d attempts", maxIDAttempts)
}

func randomUserID() string {
	b := make([]byte, userIDLength)
	for i := range b {
		b[i] = userIDAlphabet[rand.IntN(len(userIDAlphabet))]
	}
	return string(b)
}
