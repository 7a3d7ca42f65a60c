package handler

import (
	"net/http"
	"testing"

	domainerrors "estate/internal/domain/errors"
	ucmocks "estate/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPropertyHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{"deleted", nil, http.StatusOK, "Property deleted"},
		{"not owned", domainerrors.ErrPropertyNotFound, http.StatusNotFound, "Property not found"},
		{"store failure", domainerrors.ErrPropertyDeleteFailed, http.StatusInternalServerError, "Failed to delete property"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ownerID := uuid.New()
			propertyID := uuid.New()
			uc := ucmocks.NewMockPropertyUsecase(t)
			uc.EXPECT().DeleteProperty(mock.Anything, ownerID, propertyID).Return(tt.serviceErr)

			e := newTestEcho()
			e.DELETE("/properties/:propertyId", NewPropertyHandler(uc).Delete, asUser(ownerID))

			rec, env := doRequest(t, e, http.MethodDelete, "/properties/"+propertyID.String(), "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, env.Message)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec, env := doRequest(t, e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}
