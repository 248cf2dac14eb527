package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mcoot/volleydraft-go/internal/model"
	"github.com/mcoot/volleydraft-go/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeIncompleteRoster   = "INCOMPLETE_ROSTER"
	CodeUnknownPlayer      = "UNKNOWN_PLAYER"
	CodeBudgetExceeded     = "BUDGET_EXCEEDED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Roster validation errors carry their payloads into the message
	var incomplete *model.IncompleteRosterError
	if errors.As(err, &incomplete) {
		return &httpError{http.StatusBadRequest, APIError{CodeIncompleteRoster, "All 6 positions must be filled"}}
	}
	var unknown *model.UnknownPlayerError
	if errors.As(err, &unknown) {
		ids := make([]string, len(unknown.IDs))
		for i, id := range unknown.IDs {
			ids[i] = string(id)
		}
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownPlayer, fmt.Sprintf("Unknown players: %s", strings.Join(ids, ", "))}}
	}
	var overBudget *model.BudgetExceededError
	if errors.As(err, &overBudget) {
		return &httpError{http.StatusBadRequest, APIError{CodeBudgetExceeded, fmt.Sprintf("Budget exceeded. Total: %d/%d", overBudget.Total, model.Budget)}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid email or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrEmailExists):
		return &httpError{http.StatusBadRequest, APIError{CodeEmailExists, "Email already registered"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
