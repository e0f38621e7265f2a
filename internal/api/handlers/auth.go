package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mbeekman/wealthtrack/internal/api/request"
	"github.com/mbeekman/wealthtrack/internal/api/response"
	apperrors "github.com/mbeekman/wealthtrack/internal/errors"
	"github.com/mbeekman/wealthtrack/internal/service"
)

// AuthHandler handles HTTP requests for authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler with the provided service dependency.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginResponse carries the session token issued at login.
// The same token is also set as an HTTP-only cookie.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST requests to authenticate a user.
// On success the session token is returned in the body and set as an
// HTTP-only cookie for browser clients.
//
// Endpoint: POST /api/auth/login
// Request Body: LoginRequest (username, password)
// Response: 200 OK with LoginResponse
// Error: 400 Bad Request if the request body is invalid
// Error: 401 Unauthorized if the credentials are wrong
// Error: 500 Internal Server Error if login fails
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.LoginRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		response.RespondError(w, http.StatusBadRequest, "username and password are required", "")
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to log in", err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response.RespondJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// Logout handles POST requests to end a session by expiring the cookie.
// Tokens themselves stay valid until their TTL runs out; clients must
// discard them.
//
// Endpoint: POST /api/auth/logout
// Response: 204 No Content
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response.RespondJSON(w, http.StatusNoContent, nil)
}
