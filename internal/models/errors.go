package models

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when the referenced item, secret or certificate does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArguments is returned when an argument bag does not match the tool's input shape.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrExpiryUndefined is returned for certificates without an expiry timestamp.
	ErrExpiryUndefined = errors.New("expiry date is undefined")
)

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

func WriteError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: message,
		Code:    code,
	})
}

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
