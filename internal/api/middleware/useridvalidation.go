// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/api/response"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/validation"
)

// ValidateUserQueryMiddleware validates that the "user" query parameter is
// present and well-formed (six lowercase alphanumerics).
// Returns 400 Bad Request if the user ID is missing or invalid.
// This middleware should be applied to routes that identify the caller by
// a user query parameter.
//
// Example usage in router:
//
//	r.Route("/dashboard", func(r chi.Router) {
//	    r.Use(middleware.ValidateUserQueryMiddleware)
//	    r.Get("/", handler.Dashboard)
//	})
func ValidateUserQueryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user")

		if userID == "" {
			response.RespondError(w, http.StatusBadRequest, "user query parameter is required", "")
			return
		}

		if err := validation.ValidateUserID(userID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid user ID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
