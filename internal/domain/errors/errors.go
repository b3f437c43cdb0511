package errors

import (
	"fmt"
	"net/http"

	"storefront/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so predefined errors
// still match after WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Cart-related errors
	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"quantity must be greater than 0",
		"",
	)

	ErrInvalidCartItemID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CART_ITEM_ID",
		"cart item id must be numeric",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"cart item not found",
		"",
	)

	// Session-related errors
	ErrLoginRequired = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_REQUIRED",
		"please log in to continue",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"email or password is incorrect",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"password confirmation does not match",
		"",
	)

	// Checkout-related errors
	ErrEmptyCheckout = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CHECKOUT",
		"there are no items to check out",
		"",
	)

	ErrCheckoutNotFound = NewBaseError(
		http.StatusNotFound,
		"CHECKOUT_NOT_FOUND",
		"checkout not found",
		"",
	)

	ErrCheckoutCompleted = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_COMPLETED",
		"an order was already placed for this checkout",
		"",
	)

	ErrCheckoutInProgress = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_IN_PROGRESS",
		"an order is already being placed for this checkout",
		"",
	)

	ErrAddressRequired = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_REQUIRED",
		"please select a shipping address",
		"",
	)

	ErrPaymentMethodRequired = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_METHOD_REQUIRED",
		"please select a payment method",
		"",
	)

	ErrPaymentMethodUnavailable = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_METHOD_UNAVAILABLE",
		"the selected payment method is not available",
		"",
	)

	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"address not found",
		"",
	)

	// Storage-related errors
	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"local storage operation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// GatewayError is a failed call to the remote backend, implementing the AppError interface.
// StatusCode is zero when no HTTP response was received.
type GatewayError struct {
	Method      string
	Path        string
	StatusCode  int
	Upstream    string // Message reported by the backend, when any.
	Unavailable bool   // Set when the circuit breaker rejected the call.
	Err         error
}

// NewGatewayError creates a gateway error for a call that got an HTTP response.
func NewGatewayError(method, path string, statusCode int, upstream string) *GatewayError {
	return &GatewayError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Upstream:   upstream,
	}
}

// NewGatewayTransportError creates a gateway error for a call that never got a response.
func NewGatewayTransportError(method, path string, err error) *GatewayError {
	return &GatewayError{
		Method: method,
		Path:   path,
		Err:    err,
	}
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	if e.StatusCode == 0 {
		return errors.Wrapf(e.Err, "gateway %s %s", e.Method, e.Path).Error()
	}
	if e.Upstream == "" {
		return fmt.Sprintf("gateway %s %s: status %d", e.Method, e.Path, e.StatusCode)
	}

	return fmt.Sprintf("gateway %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Upstream)
}

// Unwrap returns the transport error, if any.
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// HTTPCode returns the HTTP status code
func (e *GatewayError) HTTPCode() int {
	switch {
	case e.Unavailable:
		return http.StatusServiceUnavailable
	case e.StatusCode >= 400 && e.StatusCode < 500:
		return e.StatusCode
	default:
		return http.StatusBadGateway
	}
}

// ErrorCode returns the business error code
func (e *GatewayError) ErrorCode() string {
	if e.Unavailable {
		return "GATEWAY_UNAVAILABLE"
	}

	return "GATEWAY_FAILED"
}

// Message returns the user-friendly error message
func (e *GatewayError) Message() string {
	if e.Upstream != "" {
		return e.Upstream
	}
	if e.Unavailable {
		return "the store backend is temporarily unavailable"
	}

	return "the store backend request failed"
}

// Details returns detailed error information
func (e *GatewayError) Details() string {
	return e.Method + " " + e.Path
}

// IsClientError reports whether the backend rejected the request with a 4xx status.
func (e *GatewayError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
