package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

const (
	CodeValidation        = "VAL_001"
	CodeUnauthorized      = "AUTH_001"
	CodeForbidden         = "AUTH_002"
	CodeInvalidToken      = "AUTH_003"
	CodeInsufficientFunds = "WAL_001"
	CodeNotFound          = "WAL_404"
	CodeStateConflict     = "WAL_409"
	CodeInvalidSignature  = "SEC_002"
	CodeRateLimited       = "RATE_001"
	CodeInternal          = "SYS_001"
)

// ---- Validation (VAL) ----

// Validation returns a 400 error whose message is surfaced verbatim.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return Validation("Amount must be greater than zero")
}

// ---- Authentication (AUTH) ----

func ErrUnauthorized() *AppError {
	return New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New(CodeForbidden, "Access denied", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Security (SEC) ----

func ErrInvalidSignature() *AppError {
	return New(CodeInvalidSignature, "Invalid signature", http.StatusUnauthorized)
}

// ---- Wallet & Payment (WAL) ----

func ErrInsufficientFunds() *AppError {
	return New(CodeInsufficientFunds, "Insufficient balance in wallet", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// StateConflict reports a record that cannot make the requested transition.
// Rendered as 400 so operators see the message alongside the request.
func StateConflict(message string) *AppError {
	return New(CodeStateConflict, message, http.StatusBadRequest)
}

// ErrAmountMismatch carries both the expected and the observed amount.
func ErrAmountMismatch(expected, observed int64) *AppError {
	return StateConflict(fmt.Sprintf("Amount mismatch: expected %d, observed %d", expected, observed))
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
