package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/model"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/testutil"
)

func TestUserHandler_Register(t *testing.T) {
	t.Run("registers a user and returns the generated ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewUserHandler(testutil.NewTestUserService(t, db))

		req := httptest.NewRequest(http.MethodPost, "/api/user/register", nil)
		w := httptest.NewRecorder()

		handler.Register(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.RegistrationResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if !regexp.MustCompile(`^[a-z0-9]{6}$`).MatchString(response.UserID) {
			t.Errorf("Expected a six-character user ID, got %q", response.UserID)
		}
		testutil.AssertRowCount(t, db, "users", 1)
	})

	t.Run("returns 500 when the database is unavailable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewUserHandler(testutil.NewTestUserService(t, db))
		db.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/user/register", nil)
		w := httptest.NewRecorder()

		handler.Register(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}
