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

// QuestionGetter defines the interface that the service must implement.
type QuestionGetter interface {
	GetSecurityQuestion(ctx context.Context, identifier string) (*models.UserDB, error)
}

// AnswerVerifier defines the interface that the service must implement.
type AnswerVerifier interface {
	VerifySecurityAnswer(ctx context.Context, userID int64, answer string) error
}

// SecurityQuestionResponse carries the account's security question
// swagger:model SecurityQuestionResponse
type SecurityQuestionResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Question string `json:"question"`
}

// VerifyAnswerRequest represents the JSON body for answer verification
// swagger:model VerifyAnswerRequest
type VerifyAnswerRequest struct {
	UserID int64  `json:"user_id"`
	Answer string `json:"answer"`
}

// NewSecurityQuestionHandler returns an HTTP handler for fetching the
// security question of an active account, used by the password
// recovery pages.
// @Summary Get security question
// @Tags auth
// @Produce json
// @Param identifier query string true "Username or email"
// @Success 200 {object} handlers.SecurityQuestionResponse "Question"
// @Failure 400 {object} handlers.MessageResponse "Missing identifier"
// @Failure 404 {object} handlers.MessageResponse "Unknown account"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /get_security_question [get]
func NewSecurityQuestionHandler(svc QuestionGetter, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identifier := strings.TrimSpace(r.URL.Query().Get("identifier"))
		if identifier == "" {
			writeMessage(w, http.StatusBadRequest, "missing user identifier")
			return
		}

		user, err := svc.GetSecurityQuestion(r.Context(), identifier)
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

		writeJSON(w, http.StatusOK, SecurityQuestionResponse{
			UserID:   user.UserID,
			Username: user.Username,
			Question: services.SecurityQuestion,
		})
	}
}

// NewVerifyAnswerHandler returns an HTTP handler for verifying a
// security answer.
// @Summary Verify security answer
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyAnswerRequest body handlers.VerifyAnswerRequest true "Answer to verify"
// @Success 200 {object} handlers.MessageResponse "Verified"
// @Failure 400 {object} handlers.MessageResponse "Missing parameters or no question set"
// @Failure 401 {object} handlers.MessageResponse "Answer incorrect"
// @Failure 404 {object} handlers.MessageResponse "Unknown account"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /verify_security_answer [post]
func NewVerifyAnswerHandler(svc AnswerVerifier, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyAnswerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		answer := strings.TrimSpace(req.Answer)
		if req.UserID == 0 || answer == "" {
			writeMessage(w, http.StatusBadRequest, "missing required parameters")
			return
		}

		if err := svc.VerifySecurityAnswer(r.Context(), req.UserID, answer); err != nil {
			writeSecurityError(w, log, err)
			return
		}

		writeMessage(w, http.StatusOK, "verification successful")
	}
}

// writeSecurityError maps the shared error set of the security-question
// flow to HTTP statuses.
func writeSecurityError(w http.ResponseWriter, log *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAnswerNotSet):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAnswerMismatch):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	default:
		log.Errorw("internal server error", "err", err)
		writeMessage(w, http.StatusInternalServerError, msgInternalError)
	}
}
