// Package errors provides custom error types for the Hucha API.
// All service-layer errors should use AppError so that responses stay
// consistent and never leak internal details to clients. Client-facing
// messages are in Spanish, matching the rest of the API surface.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
// Fields carries the per-field messages of a validation failure.
type AppError struct {
	Code       string              `json:"code"`
	Message    string              `json:"message"`
	StatusCode int                 `json:"-"`
	Internal   error               `json:"-"`
	Fields     map[string][]string `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithFields creates a new AppError carrying a field-keyed validation error map.
func WithFields(sentinel *AppError, fields map[string][]string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Fields:     fields,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "No autenticado", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Credenciales inválidas", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Message: "Error de validación", StatusCode: http.StatusUnprocessableEntity}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "Error interno del servidor", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "Usuario no encontrado", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "Ya existe un usuario con ese correo electrónico", StatusCode: http.StatusUnprocessableEntity}
)

// Category errors. Not-found deliberately collapses "doesn't exist" and
// "belongs to another user" into a single message.
var (
	ErrCategoryNotFound  = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Categoría no encontrada o no pertenece al usuario", StatusCode: http.StatusNotFound}
	ErrDuplicateCategory = &AppError{Code: "DUPLICATE_CATEGORY", Message: "Ya existe una categoría con ese nombre", StatusCode: http.StatusUnprocessableEntity}
	ErrCategoryInUse     = &AppError{Code: "CATEGORY_IN_USE", Message: "No se puede eliminar la categoría porque está en uso en algunas transacciones", StatusCode: http.StatusUnprocessableEntity}
)

// Savings fund errors.
var (
	ErrFundNotFound   = &AppError{Code: "FUND_NOT_FOUND", Message: "El fondo de ahorro no existe o no pertenece al usuario", StatusCode: http.StatusNotFound}
	ErrDuplicateFund  = &AppError{Code: "DUPLICATE_FUND", Message: "Ya existe un fondo de ahorro con ese nombre", StatusCode: http.StatusUnprocessableEntity}
	ErrFundHasBalance = &AppError{Code: "FUND_HAS_BALANCE", Message: "No se puede eliminar un fondo de ahorro con saldo. Primero debes retirar todo el dinero.", StatusCode: http.StatusUnprocessableEntity}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transacción no encontrada o no pertenece al usuario", StatusCode: http.StatusNotFound}
)

// Savings transaction errors.
var (
	ErrInsufficientFunds = &AppError{Code: "INSUFFICIENT_FUNDS", Message: "No hay suficiente saldo en el fondo de ahorro", StatusCode: http.StatusUnprocessableEntity}
	ErrLedgerApply       = &AppError{Code: "LEDGER_APPLY_FAILED", Message: "Error al crear la transacción de ahorro", StatusCode: http.StatusInternalServerError}
)
