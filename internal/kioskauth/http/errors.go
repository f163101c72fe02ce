package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/posturekit/kioskauth/internal/kioskauth/service"
	"github.com/posturekit/kioskauth/pkg/httpx"
)

// APIError is the wire error shape: `{"error": code, "error_description":
// text}` with an HTTP status that matches the code. It implements the error
// interface so handlers can return it directly.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g. "session_key_not_found")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

var (
	// Missing or malformed request parameters.
	ErrKioskIDRequired = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        "kiosk_id_required",
		Description: "kiosk_id is a required field",
	}

	ErrSessionKeyRequired = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        "session_key_required",
		Description: "session_key is a required field",
	}

	ErrCredentialsRequired = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        "credentials_required",
		Description: "phone_number and password are required fields",
	}

	ErrMobileUIDRequired = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        "mobile_uid_required",
		Description: "mobile_uid is a required field",
	}

	ErrCodeRequired = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        "code_required",
		Description: "code is a required field",
	}

	ErrRefreshTokenRequired = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        "refresh_token_required",
		Description: "refresh_token is a required field",
	}

	// Authentication failures.
	ErrUserNotFound = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        "user_not_found",
		Description: "no account exists for the given phone number",
	}

	ErrIncorrectPassword = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        "incorrect_password",
		Description: "the password does not match",
	}

	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        "unauthorized",
		Description: "no pending verification exists for the given mobile uid",
	}

	ErrInvalidRefreshToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        "invalid_refresh_token",
		Description: "the refresh token is invalid or expired",
	}

	// Lookup failures.
	ErrSessionKeyNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        "session_key_not_found",
		Description: "no session exists for the given session key",
	}

	ErrUserNotBound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        "user_not_bound",
		Description: "no user has been paired into this session yet",
	}

	ErrNoData = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        "no_data",
		Description: "the session is not redeemable",
	}

	ErrVerifyTimeout = &APIError{
		StatusCode:  http.StatusRequestTimeout,
		Code:        "verify_timeout",
		Description: "no verification message arrived before the deadline",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        "server_error",
		Description: "an unexpected error occurred",
	}
)

// mapServiceError translates service-layer sentinels into wire errors.
// Anything unrecognised is a server error; the caller logs it.
func mapServiceError(err error) *APIError {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return ErrSessionKeyNotFound
	case errors.Is(err, service.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return ErrIncorrectPassword
	case errors.Is(err, service.ErrNotBound):
		return ErrUserNotBound
	case errors.Is(err, service.ErrNoData):
		return ErrNoData
	case errors.Is(err, service.ErrUnauthorized):
		return ErrUnauthorized
	case errors.Is(err, service.ErrVerifyTimeout):
		return ErrVerifyTimeout
	default:
		return ErrServerError
	}
}
