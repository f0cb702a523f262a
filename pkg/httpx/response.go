// Package httpx holds the HTTP plumbing shared by every handler: JSON
// response helpers, the middleware chain, and rate limiting.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error       string   `json:"error"`
	Description string   `json:"error_description,omitempty"`
	Allowed     []string `json:"allowed_roles,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets Content-Type and no-store cache headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a structured error body with the given status code.
func WriteError(w http.ResponseWriter, code int, kind, description string) {
	WriteJSON(w, code, ErrorResponse{Error: kind, Description: description})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Required for responses carrying session or record data.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
