package handler

import (
	"net/http"

	"estate/internal/delivery/api/middleware"
	"estate/internal/delivery/api/response"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PropertyHandler serves owner-side property operations.
type PropertyHandler struct {
	propertyUC usecase.PropertyUsecase
}

// NewPropertyHandler is the constructor for PropertyHandler
func NewPropertyHandler(propertyUC usecase.PropertyUsecase) *PropertyHandler {
	return &PropertyHandler{propertyUC: propertyUC}
}

// Delete removes a listing owned by the caller.
func (h *PropertyHandler) Delete(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		return domainerrors.ErrInvalidPropertyID
	}

	if err := h.propertyUC.DeleteProperty(c.Request().Context(), userID, propertyID); err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Property deleted", nil)
}
