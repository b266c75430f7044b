package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vendorops/vos-engine/pkg/apperrors"
)

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   errorCode,
		"message": message,
	})
}

// decodeJSON reads a request body into dst. Unknown fields are ignored;
// clients send extra state and always have.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// NotFound writes the JSON 404 used for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	_ = ErrorResponse(w, http.StatusNotFound, "not_found", "Route not found: "+r.URL.Path)
}

// RenderError classifies err and writes the matching status and body. In
// development the body carries the underlying error text; in production
// non-operational details are withheld.
func RenderError(w http.ResponseWriter, err error, development bool) error {
	appErr := apperrors.Classify(err)

	message := appErr.Message
	if development && appErr.Err != nil {
		message = appErr.Err.Error()
	}

	return ErrorResponse(w, appErr.Status, appErr.Code, message)
}
