// Package response renders the uniform JSON envelope returned by every endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every response.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Count   *int         `json:"count,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
}

// Success returns a successful response carrying data.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{Success: true, Data: data})
}

// SuccessWithMessage returns a successful response with a message and optional data.
func SuccessWithMessage(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, Envelope{Success: true, Message: message, Data: data})
}

// List returns a successful response with the item count alongside the items.
func List[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	count := len(items)

	return c.JSON(http.StatusOK, Envelope{Success: true, Data: items, Count: &count})
}

// Error returns a failure response with a user-facing message.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Envelope{Success: false, Message: message})
}

// ValidationError returns a 400 listing every rejected field.
func ValidationError(c echo.Context, message string, fields []FieldError) error {
	return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message, Errors: fields})
}
