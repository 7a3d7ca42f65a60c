package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"estate/internal/delivery/api/response"
	"estate/internal/delivery/api/validator"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var logs bytes.Buffer
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/favorites", nil), rec)

	mw.HandleHTTPError(err, c)

	return rec, logs.String()
}

func TestHandleHTTPError_ClientError(t *testing.T) {
	rec, logs := handleError(t, domainerrors.ErrFavoriteNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Favorite not found"}`, rec.Body.String())
	assert.Empty(t, logs)
}

func TestHandleHTTPError_InternalCauseIsLoggedNotSent(t *testing.T) {
	cause := errors.New("pq: connection refused on 10.0.0.5")

	rec, logs := handleError(t, domainerrors.ErrFavoritesFetchFailed.WithCause(cause))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to retrieve favorites"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.Contains(t, logs, "10.0.0.5")
	assert.Contains(t, logs, "FAVORITES_FETCH_FAILED")
}

func TestHandleHTTPError_UnknownErrorIsGeneric(t *testing.T) {
	rec, logs := handleError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error, please try again later"}`, rec.Body.String())
	assert.Contains(t, logs, "boom")
}

func TestHandleHTTPError_ValidationError(t *testing.T) {
	err := &validator.ValidationError{Fields: []response.FieldError{
		{Field: "name", Message: "name is required", Value: ""},
	}}

	rec, _ := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"success": false,
		"message": "Invalid input data",
		"errors": [{"field":"name","message":"name is required","value":""}]
	}`, rec.Body.String())
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec, _ := handleError(t, echo.ErrMethodNotAllowed)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Method Not Allowed"}`, rec.Body.String())
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"app error", domainerrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"wrapped app error", domainerrors.ErrLoginFailed.WithCause(errors.New("db")), http.StatusInternalServerError},
		{"validation", &validator.ValidationError{}, http.StatusBadRequest},
		{"echo", echo.ErrNotFound, http.StatusNotFound},
		{"plain", errors.New("x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}
