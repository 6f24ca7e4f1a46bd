// Package errors defines application errors carrying an HTTP status, a
// stable business code and a user-facing message for the admin panel.
package errors

import (
	"net/http"

	"staradmin/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Messages are user-facing and localized the way
// the admin panel speaks to its operators (Uzbek).
var (
	// Session errors
	ErrLoginFailed = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_FAILED",
		"Login failed",
		"",
	)

	ErrNotAdmin = NewBaseError(
		http.StatusForbidden,
		"NOT_ADMIN",
		"Admin ruxsati yoq. ADMIN_EMAILS ni tekshiring.",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Session is invalid",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Avval tizimga kiring",
		"",
	)

	// Record errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Mahsulot topilmadi",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Buyurtma topilmadi",
		"",
	)

	ErrSectionNotFound = NewBaseError(
		http.StatusNotFound,
		"SECTION_NOT_FOUND",
		"Bo'lim topilmadi",
		"",
	)

	// Input errors
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Ma'lumotlar to'liq emas",
		"",
	)

	ErrPageExists = NewBaseError(
		http.StatusConflict,
		"PAGE_EXISTS",
		"Bu sahifa allaqachon mavjud",
		"",
	)

	ErrPageNameRequired = NewBaseError(
		http.StatusBadRequest,
		"PAGE_NAME_REQUIRED",
		"Sahifa nomini kiriting",
		"",
	)

	ErrHomePageProtected = NewBaseError(
		http.StatusBadRequest,
		"HOME_PAGE_PROTECTED",
		"Asosiy sahifani o'chirib bo'lmaydi",
		"",
	)

	// Upload errors
	ErrNotAnImage = NewBaseError(
		http.StatusBadRequest,
		"NOT_AN_IMAGE",
		"Faqat image fayl yuklash mumkin",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_TOO_LARGE",
		"Rasm hajmi juda katta",
		"",
	)

	ErrUploadTicketInvalid = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_TICKET_INVALID",
		"Upload signing payload is invalid",
		"",
	)
)
