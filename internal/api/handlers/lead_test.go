package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/carespace/carespace-api/internal/api/handlers"
	appErrors "github.com/carespace/carespace-api/internal/errors"
	"github.com/carespace/carespace-api/internal/models"
	"github.com/carespace/carespace-api/internal/services/mocks"
	"github.com/carespace/carespace-api/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func TestCreateLead(t *testing.T) {
	t.Run("Success - Lead Captured", func(t *testing.T) {
		// Arrange
		mockLeadService := mocks.NewLeadService(t)
		leadHandler := handlers.NewLeadHandler(mockLeadService)

		reqBody := models.CreateLeadRequest{
			Name:    "Asha",
			Phone:   "+91 98765 43210",
			Source:  models.LeadSourceWhatsApp,
			Product: strPtr("ICU Ventilator"),
		}
		created := &models.Lead{
			ID:        uuid.New(),
			Name:      reqBody.Name,
			Phone:     reqBody.Phone,
			Source:    reqBody.Source,
			Product:   reqBody.Product,
			CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		}

		mockLeadService.On("CreateLead", mock.Anything, &reqBody).Return(created, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/leads", testutils.JSONBody(t, reqBody), nil)

		// Act
		leadHandler.CreateLead().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var got models.Lead
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "whatsapp", got.Source)
		assert.Nil(t, got.Message)
		assert.True(t, got.CreatedAt.Equal(created.CreatedAt))
	})

	t.Run("Failure - Missing Phone", func(t *testing.T) {
		// Arrange
		mockLeadService := mocks.NewLeadService(t)
		leadHandler := handlers.NewLeadHandler(mockLeadService)

		mockLeadService.On("CreateLead", mock.Anything, mock.Anything).
			Return(nil, appErrors.ValidationError("Validation failed").WithDetails("Field phone is required")).Once()

		rr := httptest.NewRecorder()
		body := testutils.JSONBody(t, models.CreateLeadRequest{Name: "Asha", Source: "form"})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/leads", body, nil)

		// Act
		leadHandler.CreateLead().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, testutils.DecodeError(t, rr).Code)
	})

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		// Arrange
		mockLeadService := mocks.NewLeadService(t)
		leadHandler := handlers.NewLeadHandler(mockLeadService)

		mockLeadService.On("CreateLead", mock.Anything, mock.Anything).
			Return(nil, appErrors.TooManyRequestsError("Too many submissions. Please try again later.").WithDetails("Retry after 120 seconds")).Once()

		rr := httptest.NewRecorder()
		body := testutils.JSONBody(t, models.CreateLeadRequest{Name: "Asha", Phone: "123", Source: "form"})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/leads", body, nil)

		// Act
		leadHandler.CreateLead().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		errResp := testutils.DecodeError(t, rr)
		assert.Equal(t, appErrors.ErrCodeTooManyRequests, errResp.Code)
		assert.Equal(t, []string{"Retry after 120 seconds"}, errResp.Details)
	})
}

func TestListLeads(t *testing.T) {
	// Arrange
	mockLeadService := mocks.NewLeadService(t)
	leadHandler := handlers.NewLeadHandler(mockLeadService)

	newer := &models.Lead{ID: uuid.New(), Name: "B", Phone: "2", Source: "call", CreatedAt: time.Now().UTC()}
	older := &models.Lead{ID: uuid.New(), Name: "A", Phone: "1", Source: "form", CreatedAt: time.Now().UTC().Add(-time.Hour)}
	mockLeadService.On("ListLeads", mock.Anything).Return([]*models.Lead{newer, older}, nil).Once()

	rr := httptest.NewRecorder()
	req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/leads/", nil, nil)

	// Act
	leadHandler.ListLeads().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.Lead
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
}

func TestGetLead(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockLeadService := mocks.NewLeadService(t)
		leadHandler := handlers.NewLeadHandler(mockLeadService)

		lead := &models.Lead{ID: uuid.New(), Name: "Asha", Phone: "1", Source: "popup"}
		mockLeadService.On("GetLeadByID", mock.Anything, lead.ID.String()).Return(lead, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/leads/"+lead.ID.String(), nil, map[string]string{"id": lead.ID.String()})

		// Act
		leadHandler.GetLead().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Malformed Id", func(t *testing.T) {
		// Arrange
		mockLeadService := mocks.NewLeadService(t)
		leadHandler := handlers.NewLeadHandler(mockLeadService)

		mockLeadService.On("GetLeadByID", mock.Anything, "not-a-uuid").Return(nil, appErrors.NotFoundError("Lead not found")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/leads/not-a-uuid", nil, map[string]string{"id": "not-a-uuid"})

		// Act
		leadHandler.GetLead().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Lead not found", testutils.DecodeError(t, rr).Message)
	})
}
