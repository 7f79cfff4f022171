package common

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform success/failure shape returned by every gateway
// operation and by every API endpoint. A failed operation never propagates
// an error value past the boundary; it is carried here as a message.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Ok wraps data in a successful envelope
func Ok[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

// Fail wraps an error message in a failed envelope
func Fail[T any](message string) Envelope[T] {
	return Envelope[T]{Success: false, Error: message}
}

// RespondJSON sends a successful JSON envelope
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	response := Envelope[interface{}]{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// RespondError sends a failed JSON envelope
func RespondError(w http.ResponseWriter, status int, message string) {
	response := Envelope[interface{}]{
		Success: false,
		Error:   message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// ParseJSONBody parses a JSON request body with a size limit
func ParseJSONBody(r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(v)
}
