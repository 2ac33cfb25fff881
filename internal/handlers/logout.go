package handlers

import (
	"net/http"
)

// NewLogoutHandler returns an HTTP handler for logout. There is no
// server-side session to invalidate, so this always succeeds.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Router /logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusOK, "logged out")
	}
}
