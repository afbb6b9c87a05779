package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zapponejosh/lunar-api/internal/calendar"
)

// Response represents a standard API response.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error codes
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternal         = "INTERNAL_ERROR"
	CodeUnsupportedYear  = "UNSUPPORTED_YEAR"
	CodeInvalidDate      = "INVALID_DATE"
	CodeInvalidLeap      = "INVALID_LEAP"
	CodeRangeTooLarge    = "RANGE_TOO_LARGE"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, status int, message, code string) error {
	return WriteJSON(w, status, Response{
		Success: false,
		Error:   &ErrorInfo{Message: message, Code: code},
	})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message, CodeBadRequest)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, CodeInternal)
}

// WriteCalendarError maps a calendar error to a status and code. Anything
// that is not a caller mistake is reported as a 500.
func WriteCalendarError(w http.ResponseWriter, err error) error {
	switch {
	case errors.Is(err, calendar.ErrUnsupportedYear):
		return WriteError(w, http.StatusBadRequest, err.Error(), CodeUnsupportedYear)
	case errors.Is(err, calendar.ErrInvalidLeap):
		return WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidLeap)
	case errors.Is(err, calendar.ErrInvalidDate):
		return WriteError(w, http.StatusBadRequest, err.Error(), CodeInvalidDate)
	default:
		return WriteInternalError(w, "Internal server error")
	}
}

func isClientError(err error) bool {
	return errors.Is(err, calendar.ErrUnsupportedYear) ||
		errors.Is(err, calendar.ErrInvalidLeap) ||
		errors.Is(err, calendar.ErrInvalidDate)
}
