package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrInvalidJSON is returned by DecodeJSON when the body is not a single
// well-formed JSON value of the expected shape.
var ErrInvalidJSON = errors.New("invalid JSON body")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.VersionResponse{Version: 3}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON reads one JSON value from body into v. Any failure, including
// trailing data after the value, is reported as ErrInvalidJSON.
func DecodeJSON(body io.Reader, v any) error {
	dec := json.NewDecoder(body)

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
	}

	return nil
}
