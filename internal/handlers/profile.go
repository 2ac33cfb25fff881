package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/metroapp/metro-map-backend/internal/models"
	"github.com/metroapp/metro-map-backend/internal/services"
)

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID int64) (*models.UserDB, error)
}

// ProfileResponse represents an account profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	UserID      int64   `json:"user_id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	Email       *string `json:"email"`
	CreatedAt   string  `json:"created_at"`
	LastLoginAt *string `json:"last_login_at"`
	Status      int     `json:"status"`
}

// NewProfileHandler returns an HTTP handler for fetching an account profile.
// @Summary Get account profile
// @Tags auth
// @Produce json
// @Param user_id query int true "Account ID"
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 400 {object} handlers.MessageResponse "Missing or invalid user_id"
// @Failure 404 {object} handlers.MessageResponse "Unknown account"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /profile [get]
func NewProfileHandler(svc ProfileGetter, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("user_id")
		if raw == "" {
			writeMessage(w, http.StatusBadRequest, "missing user_id parameter")
			return
		}
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid user_id parameter")
			return
		}

		user, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeMessage(w, http.StatusNotFound, err.Error())
			default:
				log.Errorw("internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{
			UserID:      user.UserID,
			Username:    user.Username,
			DisplayName: user.DisplayName,
			Email:       user.Email,
			CreatedAt:   models.FormatTimestamp(user.CreatedAt),
			LastLoginAt: models.FormatTimestampPtr(user.LastLoginAt),
			Status:      user.Status,
		})
	}
}
