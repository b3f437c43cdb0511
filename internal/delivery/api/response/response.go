// Package response writes the JSON envelope of the local storefront API:
// {"data": ..., "meta": {"request_id": ...}} on success and
// {"error": {"code", "message", "details"}, "meta": {...}} on failure.
package response

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every API response; exactly one of Data and Error is set.
type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
	Meta  MetaInfo   `json:"meta"`
}

// ErrorInfo describes a failed request
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable code, e.g. "CART_ITEM_NOT_FOUND"
	Message string `json:"message"`           // Shopper-facing message
	Details any    `json:"details,omitempty"` // Extra context, 4xx only
}

// MetaInfo carries the request ID the client can quote back
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) MetaInfo {
	return MetaInfo{RequestID: deliverycontext.RequestID(c)}
}

// Success writes data with the given status
func Success(c echo.Context, statusCode int, data any) error {
	if data == nil {
		data = struct{}{}
	}

	return c.JSON(statusCode, Envelope{Data: data, Meta: meta(c)})
}

// Error writes an error envelope.
// Details are dropped for 5xx and auth failures so backend internals and credentials checks stay opaque.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, Envelope{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// BadRequest writes a 400 for input rejected before reaching a usecase
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError writes an opaque 500
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes domain and gateway errors with their own status and code.
// Any other error is returned for the centralized error handler.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	return errors.WithStack(err)
}
