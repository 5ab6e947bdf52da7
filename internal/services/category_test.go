package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	cacheMocks "github.com/carespace/carespace-api/internal/cache/mocks"
	appErrors "github.com/carespace/carespace-api/internal/errors"
	"github.com/carespace/carespace-api/internal/models"
	repository "github.com/carespace/carespace-api/internal/repositories"
	"github.com/carespace/carespace-api/internal/repositories/mocks"
	service "github.com/carespace/carespace-api/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func requireAppError(t *testing.T, err error, code string) *appErrors.AppError {
	t.Helper()

	require.Error(t, err)

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr), "expected *AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)

	return appErr
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Create Category", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewCategoryRepository(t)
		categoryService := service.NewCategoryService(mockRepo, nil)

		req := &models.CreateCategoryRequest{
			Name:        "  Respiratory Care ",
			Slug:        "respiratory-care",
			Description: strPtr("Oxygen concentrators and ventilators"),
		}

		mockRepo.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c *models.Category) bool {
			return c.Name == "Respiratory Care" && c.Slug == "respiratory-care" && c.ID != uuid.Nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Category).CreatedAt = time.Now()
		}).Return(nil).Once()

		// Act
		category, err := categoryService.CreateCategory(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Respiratory Care", category.Name)
		assert.Equal(t, 0, category.ProductCount)
		assert.NotEqual(t, uuid.Nil, category.ID)
		assert.Equal(t, "Oxygen concentrators and ventilators", *category.Description)
	})

	t.Run("Failure - Invalid Slug", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewCategoryRepository(t)
		categoryService := service.NewCategoryService(mockRepo, nil)

		req := &models.CreateCategoryRequest{Name: "Beds", Slug: "Hospital Beds"}

		// Act
		category, err := categoryService.CreateCategory(ctx, req)

		// Assert
		assert.Nil(t, category)
		appErr := requireAppError(t, err, appErrors.ErrCodeValidation)
		assert.Contains(t, appErr.Details[0], "slug")
		mockRepo.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Missing Name", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewCategoryRepository(t)
		categoryService := service.NewCategoryService(mockRepo, nil)

		// Act
		category, err := categoryService.CreateCategory(ctx, &models.CreateCategoryRequest{Name: "   ", Slug: "beds"})

		// Assert
		assert.Nil(t, category)
		appErr := requireAppError(t, err, appErrors.ErrCodeValidation)
		assert.Contains(t, appErr.Details, "Field name is required")
	})

	t.Run("Failure - Duplicate Slug", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewCategoryRepository(t)
		categoryService := service.NewCategoryService(mockRepo, nil)

		mockRepo.On("CreateCategory", mock.Anything, mock.AnythingOfType("*models.Category")).
			Return(&repository.ConflictError{Field: "slug", Value: "beds"}).Once()

		// Act
		category, err := categoryService.CreateCategory(ctx, &models.CreateCategoryRequest{Name: "Beds", Slug: "beds"})

		// Assert
		assert.Nil(t, category)
		requireAppError(t, err, appErrors.ErrCodeValidation)
		assert.Contains(t, err.Error(), "Category with slug 'beds' already exists")
	})

	t.Run("Failure - Duplicate Name From Constraint", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewCategoryRepository(t)
		categoryService := service.NewCategoryService(mockRepo, nil)

		mockRepo.On("CreateCategory", mock.Anything, mock.AnythingOfType("*models.Category")).
			Return(&repository.ConflictError{Field: "name"}).Once()

		// Act
		_, err := categoryService.CreateCategory(ctx, &models.CreateCategoryRequest{Name: "Beds", Slug: "beds-2"})

		// Assert
		requireAppError(t, err, appErrors.ErrCodeValidation)
		assert.Contains(t, err.Error(), "Category with name 'Beds' already exists")
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewCategoryRepository(t)
		categoryService := service.NewCategoryService(mockRepo, nil)

		mockRepo.On("CreateCategory", mock.Anything, mock.AnythingOfType("*models.Category")).
			Return(errors.New("connection refused")).Once()

		// Act
		_, err := categoryService.CreateCategory(ctx, &models.CreateCategoryRequest{Name: "Beds", Slug: "beds"})

		// Assert
		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
		assert.Contains(t, err.Error(), "Failed to create category")
	})
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Empty List", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewCategoryRepository(t)
		categoryService := service.NewCategoryService(mockRepo, nil)

		mockRepo.On("ListCategories", mock.Anything).Return([]*models.Category{}, nil).Once()

		// Act
		categories, err := categoryService.ListCategories(ctx)

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, categories)
		assert.Empty(t, categories)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewCategoryRepository(t)
		categoryService := service.NewCategoryService(mockRepo, nil)

		mockRepo.On("ListCategories", mock.Anything).Return(nil, errors.New("boom")).Once()

		// Act
		categories, err := categoryService.ListCategories(ctx)

		// Assert
		assert.Nil(t, categories)
		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestGetCategoryBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Found", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewCategoryRepository(t)
		categoryService := service.NewCategoryService(mockRepo, nil)

		expected := &models.Category{ID: uuid.New(), Name: "Beds", Slug: "beds", ProductCount: 3}
		mockRepo.On("GetCategoryBySlug", mock.Anything, "beds").Return(expected, nil).Once()

		// Act
		category, err := categoryService.GetCategoryBySlug(ctx, "beds")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, category)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewCategoryRepository(t)
		categoryService := service.NewCategoryService(mockRepo, nil)

		mockRepo.On("GetCategoryBySlug", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

		// Act
		category, err := categoryService.GetCategoryBySlug(ctx, "missing")

		// Assert
		assert.Nil(t, category)
		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	t.Run("Success - Deletes Products And Invalidates Cache", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewCategoryRepository(t)
		mockCache := cacheMocks.NewCache(t)
		categoryService := service.NewCategoryService(mockRepo, mockCache)

		mockRepo.On("GetCategoryBySlug", mock.Anything, "beds").Return(&models.Category{ID: categoryID, Slug: "beds"}, nil).Once()
		mockRepo.On("DeleteCategory", mock.Anything, categoryID).Return([]string{"icu-bed", "fowler-bed"}, nil).Once()
		mockCache.On("Delete", mock.Anything, "product:icu-bed", "product:fowler-bed").Return(nil).Once()

		// Act
		err := categoryService.DeleteCategory(ctx, "beds")

		// Assert
		assert.NoError(t, err)
	})

	t.Run("Success - Cache Failure Is Not Fatal", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewCategoryRepository(t)
		mockCache := cacheMocks.NewCache(t)
		categoryService := service.NewCategoryService(mockRepo, mockCache)

		mockRepo.On("GetCategoryBySlug", mock.Anything, "beds").Return(&models.Category{ID: categoryID, Slug: "beds"}, nil).Once()
		mockRepo.On("DeleteCategory", mock.Anything, categoryID).Return([]string{"icu-bed"}, nil).Once()
		mockCache.On("Delete", mock.Anything, "product:icu-bed").Return(errors.New("redis down")).Once()

		// Act
		err := categoryService.DeleteCategory(ctx, "beds")

		// Assert
		assert.NoError(t, err)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo := mocks.NewCategoryRepository(t)
		categoryService := service.NewCategoryService(mockRepo, nil)

		mockRepo.On("GetCategoryBySlug", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

		// Act
		err := categoryService.DeleteCategory(ctx, "missing")

		// Assert
		requireAppError(t, err, appErrors.ErrCodeNotFound)
		mockRepo.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
	})
}
