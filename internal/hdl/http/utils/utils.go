package utils

import (
	"encoding/json"
	"net/http"
	"time"
)

type ErrorResponse struct {
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Timestamp returns the envelope timestamp for typed DTO responses.
func Timestamp() string {
	return now()
}

func JSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(payload)
}

// SuccessResponse writes the uniform success envelope with the payload
// nested under key.
func SuccessResponse(w http.ResponseWriter, status int, key string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(
		map[string]any{
			"success":   true,
			"timestamp": now(),
			key:         payload,
		},
	)
}

func ErrResponse(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(
		&ErrorResponse{
			Success:   false,
			Timestamp: now(),
			Error:     err.Error(),
		},
	)
}

func ErrResponseWithDetails(w http.ResponseWriter, status int, err error, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(
		&ErrorResponse{
			Success:   false,
			Timestamp: now(),
			Error:     err.Error(),
			Details:   details,
		},
	)
}
