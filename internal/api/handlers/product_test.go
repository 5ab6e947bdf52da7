package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
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

func int64Ptr(v int64) *int64 { return &v }

func sampleProduct(slug string) *models.Product {
	return &models.Product{
		ID:           uuid.New(),
		Name:         "ICU Ventilator",
		Slug:         slug,
		CategoryID:   uuid.New(),
		CategoryName: "Respiratory",
		CategorySlug: "respiratory",
		Price1Month:  5000,
		Price2Month:  9000,
		Price3Month:  12000,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
}

func TestCreateProduct(t *testing.T) {
	t.Run("Success - Product Created", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		reqBody := models.CreateProductRequest{
			Name:        "ICU Ventilator",
			Slug:        "icu-ventilator",
			CategoryID:  uuid.NewString(),
			Price1Month: int64Ptr(5000),
		}
		expected := sampleProduct(reqBody.Slug)

		mockProductService.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req *models.CreateProductRequest) bool {
			return req.Slug == "icu-ventilator" && *req.Price1Month == 5000
		})).Return(expected, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/products", testutils.JSONBody(t, reqBody), nil)

		// Act
		productHandler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var got models.Product
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, expected.ID, got.ID)
		assert.Equal(t, int64(5000), got.Price1Month)
		assert.Nil(t, got.Price)
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/products", strings.NewReader(`{"name":`), nil)

		// Act
		productHandler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errResp := testutils.DecodeError(t, rr)
		assert.Equal(t, appErrors.ErrCodeBadRequest, errResp.Code)
		assert.Equal(t, "Invalid request body", errResp.Message)
		mockProductService.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Duplicate Slug", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		mockProductService.On("CreateProduct", mock.Anything, mock.Anything).
			Return(nil, appErrors.ValidationError("Product with slug 'icu-ventilator' already exists")).Once()

		rr := httptest.NewRecorder()
		body := testutils.JSONBody(t, models.CreateProductRequest{Name: "x", Slug: "icu-ventilator", CategoryID: uuid.NewString()})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/products", body, nil)

		// Act
		productHandler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errResp := testutils.DecodeError(t, rr)
		assert.Equal(t, appErrors.ErrCodeValidation, errResp.Code)
		assert.Contains(t, errResp.Message, "already exists")
	})

	t.Run("Failure - Unexpected Error Is Not Leaked", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		mockProductService.On("CreateProduct", mock.Anything, mock.Anything).
			Return(nil, errors.New("pq: connection refused")).Once()

		rr := httptest.NewRecorder()
		body := testutils.JSONBody(t, models.CreateProductRequest{Name: "x", Slug: "x", CategoryID: uuid.NewString()})
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/products", body, nil)

		// Act
		productHandler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		errResp := testutils.DecodeError(t, rr)
		assert.Equal(t, appErrors.ErrCodeInternal, errResp.Code)
		assert.NotContains(t, errResp.Message, "pq")
	})
}

func TestListProducts(t *testing.T) {
	t.Run("Success - Raw Tiers", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		products := []*models.Product{sampleProduct("a"), sampleProduct("b")}
		mockProductService.On("ListProducts", mock.Anything).Return(products, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/products", nil, nil)

		// Act
		productHandler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), `"price":`)

		var got []models.Product
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Len(t, got, 2)
	})

	t.Run("Success - Empty List Is An Array", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		mockProductService.On("ListProducts", mock.Anything).Return([]*models.Product{}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/products", nil, nil)

		// Act
		productHandler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		mockProductService.On("ListProducts", mock.Anything).
			Return(nil, appErrors.DatabaseError("Failed to fetch products").WithError(errors.New("timeout"))).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/products", nil, nil)

		// Act
		productHandler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, testutils.DecodeError(t, rr).Code)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("Success - Duration Is Forwarded", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		product := sampleProduct("icu-ventilator")
		product.Price = int64Ptr(9000)
		mockProductService.On("GetProductBySlug", mock.Anything, "icu-ventilator", "2month").Return(product, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/products/icu-ventilator?duration=2month", nil,
			map[string]string{"slug": "icu-ventilator"})

		// Act
		productHandler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.Product
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		require.NotNil(t, got.Price)
		assert.Equal(t, int64(9000), *got.Price)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		mockProductService.On("GetProductBySlug", mock.Anything, "missing", "").
			Return(nil, appErrors.NotFoundError("Product not found")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/products/missing", nil, map[string]string{"slug": "missing"})

		// Act
		productHandler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		errResp := testutils.DecodeError(t, rr)
		assert.Equal(t, appErrors.ErrCodeNotFound, errResp.Code)
		assert.Equal(t, "Product not found", errResp.Message)
	})
}

func TestListProductsByCategory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		mockProductService.On("ListProductsByCategory", mock.Anything, "respiratory", "3month").
			Return([]*models.Product{sampleProduct("icu-ventilator")}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/products/category/respiratory?duration=3month", nil,
			map[string]string{"slug": "respiratory"})

		// Act
		productHandler.ListProductsByCategory().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Unknown Category", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		mockProductService.On("ListProductsByCategory", mock.Anything, "nope", "").
			Return(nil, appErrors.NotFoundError("Category not found")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/products/category/nope", nil, map[string]string{"slug": "nope"})

		// Act
		productHandler.ListProductsByCategory().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListRelatedProducts(t *testing.T) {
	// Arrange
	mockProductService := mocks.NewProductService(t)
	productHandler := handlers.NewProductHandler(mockProductService)

	mockProductService.On("ListRelatedProducts", mock.Anything, "icu-ventilator", "").
		Return([]*models.Product{sampleProduct("bipap"), sampleProduct("cpap")}, nil).Once()

	rr := httptest.NewRecorder()
	req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/products/icu-ventilator/related", nil,
		map[string]string{"slug": "icu-ventilator"})

	// Act
	productHandler.ListRelatedProducts().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Len(t, got, 2)
}

func TestSearchProducts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		results := []*models.ProductSearchResult{{ID: uuid.New(), Name: "ICU Ventilator", Slug: "icu-ventilator", CategoryName: "Respiratory", CategorySlug: "respiratory", Price1Month: 5000}}
		mockProductService.On("SearchProducts", mock.Anything, "VENT").Return(results, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/products/search?q=VENT", nil, nil)

		// Act
		productHandler.SearchProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"category_slug":"respiratory"`)
	})

	t.Run("Failure - Blank Query", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		mockProductService.On("SearchProducts", mock.Anything, "").
			Return(nil, appErrors.ValidationError("Search query is required")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/products/search", nil, nil)

		// Act
		productHandler.SearchProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Search query is required", testutils.DecodeError(t, rr).Message)
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		updated := sampleProduct("icu-ventilator")
		updated.Price2Month = 8500

		mockProductService.On("UpdateProduct", mock.Anything, "icu-ventilator", mock.MatchedBy(func(req *models.UpdateProductRequest) bool {
			return req.Price2Month != nil && *req.Price2Month == 8500 && req.Name == nil
		})).Return(updated, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPut, "/api/products/icu-ventilator",
			strings.NewReader(`{"price_2month":8500}`), map[string]string{"slug": "icu-ventilator"})

		// Act
		productHandler.UpdateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.Product
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, int64(8500), got.Price2Month)
	})

	t.Run("Failure - Empty Body", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPut, "/api/products/icu-ventilator",
			strings.NewReader(""), map[string]string{"slug": "icu-ventilator"})

		// Act
		productHandler.UpdateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		mockProductService.On("DeleteProduct", mock.Anything, "icu-ventilator").Return(nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/api/products/icu-ventilator", nil,
			map[string]string{"slug": "icu-ventilator"})

		// Act
		productHandler.DeleteProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockProductService := mocks.NewProductService(t)
		productHandler := handlers.NewProductHandler(mockProductService)

		mockProductService.On("DeleteProduct", mock.Anything, "missing").Return(appErrors.NotFoundError("Product not found")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/api/products/missing", nil, map[string]string{"slug": "missing"})

		// Act
		productHandler.DeleteProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
