package apperror

import (
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

// ---- Bank State Machine (BANK) ----

func ErrPaused() *AppError {
	return New("BANK_001", "Bank is paused", http.StatusServiceUnavailable)
}

func ErrCircuitBreakerActive() *AppError {
	return New("BANK_002", "Circuit breaker is active", http.StatusServiceUnavailable)
}

func ErrBlacklisted() *AppError {
	return New("BANK_003", "Account is blacklisted", http.StatusForbidden)
}

func ErrInsufficientBalance() *AppError {
	return New("BANK_004", "Insufficient deposit balance", http.StatusPaymentRequired)
}

func ErrInsufficientStake() *AppError {
	return New("BANK_005", "Insufficient stake balance", http.StatusPaymentRequired)
}

func ErrLockWindowActive() *AppError {
	return New("BANK_006", "Stake is locked within 24h of last reward settlement", http.StatusConflict)
}

func ErrReserveExceeded() *AppError {
	return New("BANK_007", "Withdrawal exceeds pot money reserve", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("BANK_008", "Invalid amount", http.StatusBadRequest)
}

func ErrBreakerDurationTooLong() *AppError {
	return New("BANK_009", "Circuit breaker duration exceeds the 3 hour ceiling", http.StatusBadRequest)
}

func ErrAccountNotFound() *AppError {
	return New("BANK_010", "Account not found", http.StatusNotFound)
}

// ---- Companion Token (TOKEN) ----

func ErrMaxSupplyViolated() *AppError {
	return New("TOKEN_001", "max supply limit violated", http.StatusUnprocessableEntity)
}

func ErrTokenPaused() *AppError {
	return New("TOKEN_002", "Reward token is paused", http.StatusServiceUnavailable)
}

func ErrInvalidSwapRatio() *AppError {
	return New("TOKEN_003", "invalid input ratio", http.StatusBadRequest)
}

// ---- Authentication & Authorization (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrUnauthorized() *AppError {
	return New("AUTH_004", "Caller is not the owner", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a BANK_008-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("BANK_008", message, http.StatusBadRequest)
}
