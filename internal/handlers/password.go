package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// PasswordResetter defines the interface that the service must implement.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, identifier, answer, newPassword string) error
}

// PasswordChanger defines the interface that the service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID int64, answer, newPassword string) error
}

// AnswerChanger defines the interface that the service must implement.
type AnswerChanger interface {
	ChangeSecurityAnswer(ctx context.Context, userID int64, oldAnswer, newAnswer string) error
}

// ResetPasswordRequest represents the JSON body for the forgot-password flow
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Username or email
	Identifier  string `json:"identifier"`
	Answer      string `json:"answer"`
	NewPassword string `json:"new_password"`
}

// ChangePasswordRequest represents the JSON body for changing the password
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	UserID      int64  `json:"user_id"`
	Answer      string `json:"answer"`
	NewPassword string `json:"new_password"`
}

// ChangeAnswerRequest represents the JSON body for rotating the security answer
// swagger:model ChangeAnswerRequest
type ChangeAnswerRequest struct {
	UserID    int64  `json:"user_id"`
	OldAnswer string `json:"old_answer"`
	NewAnswer string `json:"new_answer"`
}

// NewResetPasswordHandler returns an HTTP handler for resetting a
// forgotten password via the security answer.
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset request"
// @Success 200 {object} handlers.MessageResponse "Password reset"
// @Failure 400 {object} handlers.MessageResponse "Missing parameters or no question set"
// @Failure 401 {object} handlers.MessageResponse "Answer incorrect"
// @Failure 404 {object} handlers.MessageResponse "Unknown account"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /reset_password [post]
func NewResetPasswordHandler(svc PasswordResetter, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		identifier := strings.TrimSpace(req.Identifier)
		answer := strings.TrimSpace(req.Answer)
		if identifier == "" || answer == "" || req.NewPassword == "" {
			writeMessage(w, http.StatusBadRequest, "missing required parameters")
			return
		}

		if err := svc.ResetPassword(r.Context(), identifier, answer, req.NewPassword); err != nil {
			writeSecurityError(w, log, err)
			return
		}

		writeMessage(w, http.StatusOK, "password reset successful")
	}
}

// NewChangePasswordHandler returns an HTTP handler for changing the
// password of a known account after verifying the security answer.
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Change request"
// @Success 200 {object} handlers.MessageResponse "Password changed"
// @Failure 400 {object} handlers.MessageResponse "Missing parameters or no question set"
// @Failure 401 {object} handlers.MessageResponse "Answer incorrect"
// @Failure 404 {object} handlers.MessageResponse "Unknown account"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /change_password [post]
func NewChangePasswordHandler(svc PasswordChanger, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		answer := strings.TrimSpace(req.Answer)
		if req.UserID == 0 || answer == "" || req.NewPassword == "" {
			writeMessage(w, http.StatusBadRequest, "missing required parameters")
			return
		}

		if err := svc.ChangePassword(r.Context(), req.UserID, answer, req.NewPassword); err != nil {
			writeSecurityError(w, log, err)
			return
		}

		writeMessage(w, http.StatusOK, "password changed successfully")
	}
}

// NewChangeAnswerHandler returns an HTTP handler for rotating the
// security answer after verifying the old one.
// @Summary Change security answer
// @Tags auth
// @Accept json
// @Produce json
// @Param changeAnswerRequest body handlers.ChangeAnswerRequest true "Change request"
// @Success 200 {object} handlers.MessageResponse "Answer changed"
// @Failure 400 {object} handlers.MessageResponse "Missing parameters or no question set"
// @Failure 401 {object} handlers.MessageResponse "Old answer incorrect"
// @Failure 404 {object} handlers.MessageResponse "Unknown account"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /change_security_answer [post]
func NewChangeAnswerHandler(svc AnswerChanger, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChangeAnswerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}

		oldAnswer := strings.TrimSpace(req.OldAnswer)
		newAnswer := strings.TrimSpace(req.NewAnswer)
		if req.UserID == 0 || oldAnswer == "" || newAnswer == "" {
			writeMessage(w, http.StatusBadRequest, "missing required parameters")
			return
		}

		if err := svc.ChangeSecurityAnswer(r.Context(), req.UserID, oldAnswer, newAnswer); err != nil {
			writeSecurityError(w, log, err)
			return
		}

		writeMessage(w, http.StatusOK, "security answer changed successfully")
	}
}
