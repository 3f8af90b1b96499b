// Package response writes the small JSON envelopes used across the API.
//
// Reads reply with the bare record or list; mutations reply with a
// {"success": ...} envelope; failures reply with {"message": ...}.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the generic mutation-result body.
type Envelope map[string]interface{}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Success sends a 200 response with the bare payload.
func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

// Created sends a 201 response with the bare payload.
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, data)
}

// Message sends {"message": msg} with the given status.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Unauthorized sends the 401 body used when no credential is presented.
func Unauthorized(w http.ResponseWriter) {
	Message(w, http.StatusUnauthorized, "Unauthorized access")
}

// Forbidden sends the 403 body used when a credential is present but
// invalid, expired, or insufficient.
func Forbidden(w http.ResponseWriter) {
	Message(w, http.StatusForbidden, "Forbidden access")
}

// ForbiddenRole sends the 403 body used by the admin guard.
func ForbiddenRole(w http.ResponseWriter) {
	Message(w, http.StatusForbidden, "forbidden")
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter) {
	Message(w, http.StatusNotFound, "not found")
}

// ValidationError sends a 422 with field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"message": "Validation failed",
		"errors":  errs,
	})
}

// Error sends a JSON error response with an arbitrary message.
func Error(w http.ResponseWriter, status int, message string) {
	Message(w, status, message)
}
