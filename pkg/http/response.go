package http

import (
	"encoding/json"
	"net/http"

	apperrors "ijuruhub/pkg/errors"
)

// Response is the plain {success, message} envelope. Handlers with payloads
// declare their own structs embedding the same two leading fields.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Pagination mirrors the shape the admin dashboard consumes.
type Pagination struct {
	Current       int   `json:"current"`
	Total         int   `json:"total"`
	Count         int   `json:"count"`
	TotalBookings int64 `json:"totalBookings"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError maps an error onto the envelope. AppError carries its own status;
// anything else is a 500 with a generic message so internals never leak.
func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)

	message := appErr.Message
	details := appErr.Details
	if appErr.Code == apperrors.CodeInternal && message == "" {
		message = "Something went wrong"
	}

	return WriteJSON(w, appErr.StatusCode(), ErrorResponse{
		Success: false,
		Message: message,
		Details: details,
	})
}

func WriteMessage(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, Response{Success: true, Message: message})
}
