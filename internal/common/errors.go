package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrForbidden      = errors.New("forbidden access")
	ErrBadRequest     = errors.New("bad request")
	ErrConflict       = errors.New("resource conflict") // e.g., username already exists
	ErrInternalServer = errors.New("internal server error")

	// Auth flow failures. The distinct login messages mirror the original API
	// contract; note they let a caller tell "no such user" from "wrong
	// password", which is a username-enumeration risk.
	ErrInvalidUser         = errors.New("Invalid user")
	ErrAccountDisabled     = errors.New("Account is disabled. Please contact admin.")
	ErrWrongPassword       = errors.New("Wrong password")
	ErrOtpInvalidOrExpired = errors.New("OTP invalid or expired")
	ErrRoleNotFound        = errors.New("Role does not exist")
	ErrTooManyRequests     = errors.New("too many attempts, try again later")
)

// ValidationErrors collects registration policy violations; surfaced verbatim
// to the caller as a 400.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidUser),
		errors.Is(err, ErrAccountDisabled),
		errors.Is(err, ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrOtpInvalidOrExpired),
		errors.Is(err, ErrRoleNotFound):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // Unique violation
			return http.StatusConflict
		}
	}

	return http.StatusInternalServerError
}

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
