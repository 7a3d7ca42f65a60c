package middleware

import (
	"log/slog"
	"net/http"

	"estate/internal/delivery/api/response"
	"estate/internal/delivery/api/validator"
	deliverycontext "estate/internal/delivery/context"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if vErr, ok := errors.AsType[*validator.ValidationError](err); ok {
		_ = response.ValidationError(c, domainerrors.ErrValidationFailed.Message(), vErr.Fields)

		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFault(c, err, appErr.ErrorCode())
		}
		// Message() never carries the cause, so 5xx responses stay generic.
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logFault(c, err, "HTTP_ERROR")
		}

		_ = response.Error(c, httpErr.Code, message)

		return
	}

	m.logFault(c, err, domainerrors.ErrInternalError.ErrorCode())
	_ = response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) logFault(c echo.Context, err error, code string) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
		slog.String("code", code),
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

// StatusCode resolves the HTTP status an error will be rendered with.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if _, ok := errors.AsType[*validator.ValidationError](err); ok {
		return http.StatusBadRequest
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
