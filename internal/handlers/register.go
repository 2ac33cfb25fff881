package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/models"
	"github.com/metroapp/metro-map-backend/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, displayName, email, answer string) (*models.UserSummary, error)
}

// RegisterRequest represents the JSON body for account registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	Username string `json:"username"`

	// Password
	// required: true
	Password string `json:"password"`

	// Display name; defaults to the username when blank
	DisplayName string `json:"display_name"`

	// Email (optional)
	Email string `json:"email"`

	// Security answer used for password recovery
	// required: true
	SafeQuestion string `json:"safe_question"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	Message     string  `json:"message"`
	UserID      int64   `json:"user_id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	Email       *string `json:"email"`
	CreatedAt   string  `json:"created_at"`
}

// NewRegisterHandler returns an HTTP handler for account registration.
// @Summary Register a new account
// @Description Creates an account with unique username, display name and email. Password and security answer are hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Registration request"
// @Success 201 {object} handlers.RegisterResponse "Account created"
// @Failure 400 {object} handlers.MessageResponse "Validation failure or conflict"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		username := strings.TrimSpace(req.Username)
		displayName := strings.TrimSpace(req.DisplayName)
		email := strings.TrimSpace(req.Email)
		answer := strings.TrimSpace(req.SafeQuestion)

		if username == "" || req.Password == "" {
			writeMessage(w, http.StatusBadRequest, "username and password must not be empty")
			return
		}
		if answer == "" {
			writeMessage(w, http.StatusBadRequest, "security answer must not be empty")
			return
		}

		summary, err := svc.Register(r.Context(), username, req.Password, displayName, email, answer)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken),
				errors.Is(err, services.ErrDisplayNameTaken),
				errors.Is(err, services.ErrEmailTaken):
				writeMessage(w, http.StatusBadRequest, err.Error())
			default:
				log.Errorw("internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message:     "registration successful",
			UserID:      summary.UserID,
			Username:    summary.Username,
			DisplayName: summary.DisplayName,
			Email:       summary.Email,
			CreatedAt:   models.FormatTimestamp(summary.CreatedAt),
		})
	}
}
