package httpx

import (
	"encoding/json"
	"net/http"
)

// Errors is the field-keyed error body, e.g. {"errors":{"email":"can't be blank"}}.
type Errors map[string]string

// ErrorResponse wraps Errors the way clients expect them.
type ErrorResponse struct {
	Errors Errors `json:"errors"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteErrors writes {"errors": errs} with code.
func WriteErrors(w http.ResponseWriter, code int, errs Errors) {
	WriteJSON(w, code, ErrorResponse{Errors: errs})
}

// WriteError writes a single field error.
func WriteError(w http.ResponseWriter, code int, field, msg string) {
	WriteErrors(w, code, Errors{field: msg})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
