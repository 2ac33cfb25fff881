package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/models"
	"github.com/metroapp/metro-map-backend/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, identifier, password, ipAddress, userAgent string) (*models.UserDB, error)
}

// LoginRequest represents the JSON body for login. The username field
// accepts a username or an email.
// swagger:model LoginRequest
type LoginRequest struct {
	// Username or email
	// required: true
	Username string `json:"username"`

	// Password
	// required: true
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	Message     string  `json:"message"`
	UserID      int64   `json:"user_id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	Email       *string `json:"email"`
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Log in
// @Description Authenticate by username or email. Updates the last-login timestamp and appends a login-log record.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Logged in"
// @Failure 400 {object} handlers.MessageResponse "Missing fields"
// @Failure 401 {object} handlers.MessageResponse "Invalid credentials"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		identifier := strings.TrimSpace(req.Username)
		if identifier == "" || req.Password == "" {
			writeMessage(w, http.StatusBadRequest, "please provide username/email and password")
			return
		}

		user, err := svc.Login(r.Context(), identifier, req.Password, remoteAddr(r), r.UserAgent())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeMessage(w, http.StatusUnauthorized, err.Error())
			default:
				log.Errorw("internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Message:     "login successful",
			UserID:      user.UserID,
			Username:    user.Username,
			DisplayName: user.DisplayName,
			Email:       user.Email,
		})
	}
}

// remoteAddr strips the port from the peer address when present.
func remoteAddr(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
