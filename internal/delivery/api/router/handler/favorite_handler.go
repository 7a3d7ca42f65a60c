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

// FavoriteHandler serves a user's favorites.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(favoriteUC usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: favoriteUC}
}

// AddFavoriteRequest represents the request body for bookmarking a property.
// Presence of property_id is checked by the use case.
type AddFavoriteRequest struct {
	PropertyID string `json:"property_id"`
}

// List returns the caller's favorites with their count.
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, toFavoritePropertyResponses(favorites))
}

// Add bookmarks a property for the caller.
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidRequestBody
	}

	propertyID := uuid.Nil
	if req.PropertyID != "" {
		if propertyID, err = uuid.Parse(req.PropertyID); err != nil {
			return domainerrors.ErrInvalidPropertyID
		}
	}

	if _, err := h.favoriteUC.AddFavorite(c.Request().Context(), userID, propertyID); err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, "Added to favorites", nil)
}

// Remove deletes the caller's bookmark of a property.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	// A malformed ID cannot match any favorite.
	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		return domainerrors.ErrFavoriteNotFound
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), userID, propertyID); err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Removed from favorites", nil)
}
