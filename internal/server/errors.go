package server

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Server-specific errors
var (
	ErrInvalidConfig = errors.New("invalid server configuration")
	ErrInvalidBody   = errors.New("invalid request body")
	ErrInvalidWorld  = errors.New("world dimensions must be positive")
)

// errorEnvelope is the JSON shape of every error response.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: errorBody{Code: code, Message: message}})
}
