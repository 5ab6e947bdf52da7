package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/carespace/carespace-api/internal/cache"
	appErrors "github.com/carespace/carespace-api/internal/errors"
	"github.com/carespace/carespace-api/internal/models"
	repository "github.com/carespace/carespace-api/internal/repositories"
	"github.com/carespace/carespace-api/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	DeleteCategory(ctx context.Context, slug string) error
}

type categoryService struct {
	repo     repository.CategoryRepository
	cache    cache.Cache
	validate *validator.Validate
}

// NewCategoryService builds the service. productCache may be nil.
func NewCategoryService(repo repository.CategoryRepository, productCache cache.Cache) CategoryService {
	return &categoryService{
		repo:     repo,
		cache:    productCache,
		validate: validation.New(),
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {

	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.TrimSpace(req.Slug)
	req.Description = optionalText(req.Description)

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	category := &models.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}

	err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			value := req.Slug
			if conflict.Field == "name" {
				value = req.Name
			}
			return nil, conflictError("Category", conflict, value)
		}

		return nil, appErrors.DatabaseError("Failed to create category").WithError(err)
	}

	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}

func (s *categoryService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {

	category, err := s.repo.GetCategoryBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, repoError(err, "Category not found", "Failed to fetch category")
	}

	return category, nil
}

// DeleteCategory removes the category together with all of its products.
func (s *categoryService) DeleteCategory(ctx context.Context, slug string) error {

	category, err := s.repo.GetCategoryBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return repoError(err, "Category not found", "Failed to fetch category")
	}

	removed, err := s.repo.DeleteCategory(ctx, category.ID)
	if err != nil {
		return repoError(err, "Category not found", "Failed to delete category")
	}

	if s.cache != nil && len(removed) > 0 {
		keys := make([]string, 0, len(removed))
		for _, productSlug := range removed {
			keys = append(keys, cache.ProductKey(productSlug))
		}

		if err := s.cache.Delete(ctx, keys...); err != nil {
			slog.WarnContext(ctx, "Failed to invalidate cached products", slog.String("category", category.Slug), slog.String("error", err.Error()))
		}
	}

	return nil
}
