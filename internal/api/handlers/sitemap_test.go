package handlers_test

import (
	"encoding/xml"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/carespace/carespace-api/internal/api/handlers"
	"github.com/carespace/carespace-api/internal/models"
	"github.com/carespace/carespace-api/internal/pkg/clock"
	"github.com/carespace/carespace-api/internal/services/mocks"
	"github.com/carespace/carespace-api/internal/sitemap"
	"github.com/carespace/carespace-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSitemap(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 30, 0, 0, time.UTC)

	t.Run("Success - Categories And Products Listed", func(t *testing.T) {
		// Arrange
		mockCategoryService := mocks.NewCategoryService(t)
		mockProductService := mocks.NewProductService(t)
		sitemapHandler := handlers.NewSitemapHandler(mockCategoryService, mockProductService, "https://carespace.in/", clock.NewMockClock(now))

		mockCategoryService.On("ListCategories", mock.Anything).
			Return([]*models.Category{{Name: "Respiratory", Slug: "respiratory"}}, nil).Once()
		mockProductService.On("ListProducts", mock.Anything).
			Return([]*models.Product{sampleProduct("icu-ventilator")}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/sitemap.xml", nil, nil)

		// Act
		sitemapHandler.Sitemap().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/xml; charset=utf-8", rr.Header().Get("Content-Type"))

		var set sitemap.URLSet
		require.NoError(t, xml.Unmarshal(rr.Body.Bytes(), &set))

		locs := make([]string, 0, len(set.URLs))
		for _, u := range set.URLs {
			locs = append(locs, u.Loc)
			assert.Equal(t, "2025-06-15", u.LastMod)
		}

		assert.Contains(t, locs, "https://carespace.in/")
		assert.Contains(t, locs, "https://carespace.in/category/respiratory")
		assert.Contains(t, locs, "https://carespace.in/product/icu-ventilator")
	})

	t.Run("Failure - Product Listing Fails", func(t *testing.T) {
		// Arrange
		mockCategoryService := mocks.NewCategoryService(t)
		mockProductService := mocks.NewProductService(t)
		sitemapHandler := handlers.NewSitemapHandler(mockCategoryService, mockProductService, "https://carespace.in", clock.NewMockClock(now))

		mockCategoryService.On("ListCategories", mock.Anything).Return([]*models.Category{}, nil).Once()
		mockProductService.On("ListProducts", mock.Anything).Return(nil, errors.New("connection reset")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/sitemap.xml", nil, nil)

		// Act
		sitemapHandler.Sitemap().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	})
}
