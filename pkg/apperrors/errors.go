package apperrors

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	mssql "github.com/microsoft/go-mssqldb"
)

// Sentinel errors for request-level failures. Handlers translate these to
// HTTP statuses via Classify.
var (
	// ErrInvalidCredentials covers not-found vendors, inactive accounts and
	// password mismatches alike: login fails closed with a uniform 401 so
	// the status never distinguishes "unknown user" from "wrong password".
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidCategory is returned for a purchase-order-draft category
	// outside the closed enum. Unlike an unknown sort column (which silently
	// falls back to the default), this is a hard rejection.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrMissingVendorID is returned when the mandatory tenant filter is
	// absent; it short-circuits before any query is built.
	ErrMissingVendorID = errors.New("vendor ID is required")
)

// AppError carries an HTTP status and a client-safe message alongside the
// underlying cause. Operational errors render their message to clients even
// in production; non-operational ones are suppressed to a generic message.
type AppError struct {
	Code        string // machine-readable error code
	Message     string // client-safe message
	Status      int    // HTTP status
	Operational bool
	Err         error // underlying cause, may be nil
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an operational AppError with the given status, code and message.
func New(status int, code, message string) *AppError {
	return &AppError{
		Code:        code,
		Message:     message,
		Status:      status,
		Operational: true,
	}
}

// Wrap attaches an underlying cause to a new operational AppError.
func Wrap(err error, status int, code, message string) *AppError {
	return &AppError{
		Code:        code,
		Message:     message,
		Status:      status,
		Operational: true,
		Err:         err,
	}
}

// Classify maps an arbitrary error to an AppError with an HTTP status.
//
// Database faults are classified by driver error number or network failure
// kind: authentication failures stay 500, timeouts and connection resets
// become 503. Sentinel request errors map to 400/401. Anything unrecognized
// becomes a non-operational 500 whose detail is suppressed in production.
func Classify(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return Wrap(err, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
	case errors.Is(err, ErrInvalidCategory):
		return Wrap(err, http.StatusBadRequest, "invalid_category", "Invalid category")
	case errors.Is(err, ErrMissingVendorID):
		return Wrap(err, http.StatusBadRequest, "missing_vendor_id", "Vendor ID is required")
	}

	// SQL Server errors carry a server-side error number.
	var sqlErr mssql.Error
	if errors.As(err, &sqlErr) {
		switch sqlErr.Number {
		case 18456, 18452: // login failed / untrusted domain
			return Wrap(err, http.StatusInternalServerError, "db_auth_failed", "Database authentication failed")
		case 2627, 2601: // unique constraint violations
			return Wrap(err, http.StatusConflict, "duplicate_entry", "Duplicate entry found")
		case 547: // foreign key violation
			return Wrap(err, http.StatusBadRequest, "invalid_reference", "Referenced record not found")
		default:
			return Wrap(err, http.StatusInternalServerError, "db_error", "Database operation failed")
		}
	}

	// Timeouts and broken connections are retryable at the caller: 503.
	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(err, http.StatusServiceUnavailable, "db_timeout", "Database connection timeout")
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Wrap(err, http.StatusServiceUnavailable, "db_timeout", "Database connection timeout")
	}
	if isConnectionReset(err) {
		return Wrap(err, http.StatusServiceUnavailable, "db_connection_reset", "Database connection was reset")
	}

	return &AppError{
		Code:        "internal_error",
		Message:     "Something went wrong",
		Status:      http.StatusInternalServerError,
		Operational: false,
		Err:         err,
	}
}

func isConnectionReset(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "connection reset") || strings.Contains(msg, "broken pipe")
}
