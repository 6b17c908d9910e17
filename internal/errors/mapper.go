package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pokojowo/match-service/internal/matching"
	"gorm.io/gorm"
)

// ErrorResponse is the JSON error envelope every handler returns.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// StatusFor converts repo/engine errors into HTTP statuses.
// Keeps handlers clean by centralizing error mapping.
func StatusFor(err error) (int, string) {
	var vErr *matching.ValidationError
	var cErr *matching.ConfigError

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, "not_found"

	case errors.As(err, &vErr):
		return http.StatusBadRequest, "invalid_profile"

	case errors.As(err, &cErr):
		return http.StatusUnprocessableEntity, "invalid_config"

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded"

	case errors.Is(err, context.Canceled):
		// Client went away; 499 is the de-facto status for this.
		return 499, "canceled"

	default:
		return http.StatusInternalServerError, "internal"
	}
}

// Write maps err onto a status code and writes the JSON envelope.
func Write(w http.ResponseWriter, err error) {
	status, code := StatusFor(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error(), Code: code})
}

// BadRequest writes a 400 with the given message.
func BadRequest(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: msg, Code: "invalid_request"})
}
