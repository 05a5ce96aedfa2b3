package validation

import (
	"fmt"
	"regexp"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
)

// userIDPattern matches generated user IDs: six lowercase letters or digits.
var userIDPattern = regexp.MustCompile(`^[a-z0-9]{6}$`)

// ValidateUserID checks that a string is a well-formed user ID.
func ValidateUserID(id string) error {
	if id == "" {
		return apperrors.ErrEmptyID
	}
	if !userIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUserID, id)
	}
	return nil
}
