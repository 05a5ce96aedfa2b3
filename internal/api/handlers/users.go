package handlers

import (
	"net/http"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/api/response"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/service"
)

// UserHandler handles HTTP requests for user endpoints.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler with the provided service dependency.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register handles POST requests to create a new user.
// The server generates the user ID; the request carries no body.
//
// Endpoint: POST /api/user/register
// Response: 201 Created with RegistrationResponse (user_id, optional token)
// Error: 500 Internal Server Error if registration fails
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	registration, err := h.userService.RegisterUser()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRegisterUser.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, registration)
}
