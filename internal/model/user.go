package model

import "time"

// User represents a registered user account.
// User IDs are short random identifiers (lowercase letters and digits),
// generated at registration time.
type User struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// RegistrationResponse is returned after a successful registration.
// The token is a fernet-signed copy of the user ID that clients may
// present to prove they obtained the ID from this service.
type RegistrationResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}
