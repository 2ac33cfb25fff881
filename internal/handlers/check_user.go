package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/models"
)

// AvailabilityChecker defines the interface that the service must implement.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, username, email string) (*models.Availability, error)
}

// CheckUserRequest represents the JSON body for the availability check;
// at least one field must be non-empty.
// swagger:model CheckUserRequest
type CheckUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CheckUserResponse reports whether the username or email is taken
// swagger:model CheckUserResponse
type CheckUserResponse struct {
	UsernameTaken bool `json:"username_taken"`
	EmailTaken    bool `json:"email_taken"`
}

// NewCheckUserHandler returns an HTTP handler for the live
// username/email availability check used by the registration form.
// @Summary Check username/email availability
// @Tags auth
// @Accept json
// @Produce json
// @Param checkUserRequest body handlers.CheckUserRequest true "Fields to check"
// @Success 200 {object} handlers.CheckUserResponse "Availability flags"
// @Failure 400 {object} handlers.MessageResponse "No fields to check"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /check_user [post]
func NewCheckUserHandler(svc AvailabilityChecker, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CheckUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		username := strings.TrimSpace(req.Username)
		email := strings.TrimSpace(req.Email)
		if username == "" && email == "" {
			writeMessage(w, http.StatusBadRequest, "missing fields to check")
			return
		}

		av, err := svc.CheckAvailability(r.Context(), username, email)
		if err != nil {
			log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, CheckUserResponse{
			UsernameTaken: av.UsernameTaken,
			EmailTaken:    av.EmailTaken,
		})
	}
}
