package handlers

import (
	"encoding/json"
	"net/http"
)

// msgInternalError is the only message ever returned for unexpected
// failures; the real cause stays in the server log.
const msgInternalError = "internal server error, please retry later"

// MessageResponse is the generic `{"message": ...}` body used for
// simple confirmations and all error responses.
// swagger:model MessageResponse
type MessageResponse struct {
	// Human-readable message
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}
