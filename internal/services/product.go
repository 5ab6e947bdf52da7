package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/carespace/carespace-api/internal/cache"
	appErrors "github.com/carespace/carespace-api/internal/errors"
	"github.com/carespace/carespace-api/internal/models"
	"github.com/carespace/carespace-api/internal/pricing"
	repository "github.com/carespace/carespace-api/internal/repositories"
	"github.com/carespace/carespace-api/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RelatedProductsLimit caps the related products returned for a product page.
const RelatedProductsLimit = 4

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	GetProductBySlug(ctx context.Context, slug, duration string) (*models.Product, error)
	ListProductsByCategory(ctx context.Context, categorySlug, duration string) ([]*models.Product, error)
	ListRelatedProducts(ctx context.Context, slug, duration string) ([]*models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]*models.ProductSearchResult, error)
	UpdateProduct(ctx context.Context, slug string, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, slug string) error
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        cache.Cache
	validate     *validator.Validate
}

// NewProductService builds the service. productCache may be nil, in which
// case every read goes to the database.
func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, productCache cache.Cache) ProductService {
	return &productService{
		repo:         repo,
		categoryRepo: categoryRepo,
		cache:        productCache,
		validate:     validation.New(),
	}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.TrimSpace(req.Slug)
	req.CategoryID = strings.TrimSpace(req.CategoryID)

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, appErrors.ValidationError("Category not found").WithError(err)
	}

	product := &models.Product{
		ID:                 uuid.New(),
		Name:               req.Name,
		Slug:               req.Slug,
		CategoryID:         categoryID,
		ImageURL:           optionalText(req.ImageURL),
		Description:        optionalText(req.Description),
		Specifications:     optionalText(req.Specifications),
		KeyFeatures:        optionalText(req.KeyFeatures),
		YoutubeURL:         optionalText(req.YoutubeURL),
		SEOMetaTitle:       optionalText(req.SEOMetaTitle),
		SEOMetaDescription: optionalText(req.SEOMetaDescription),
	}

	// Unset tiers stay 0.
	if req.Price1Month != nil {
		product.Price1Month = *req.Price1Month
	}
	if req.Price2Month != nil {
		product.Price2Month = *req.Price2Month
	}
	if req.Price3Month != nil {
		product.Price3Month = *req.Price3Month
	}

	err = s.repo.CreateProduct(ctx, product)
	if err != nil {
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			return nil, conflictError("Product", conflict, product.Slug)
		}

		return nil, repoError(err, "Product not found", "Failed to create product")
	}

	return product, nil
}

// ListProducts returns every product with its raw price tiers.
func (s *productService) ListProducts(ctx context.Context) ([]*models.Product, error) {

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *productService) GetProductBySlug(ctx context.Context, slug, duration string) (*models.Product, error) {

	product, err := s.loadProduct(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}

	pricing.Apply(duration, product)

	return product, nil
}

func (s *productService) ListProductsByCategory(ctx context.Context, categorySlug, duration string) ([]*models.Product, error) {

	category, err := s.categoryRepo.GetCategoryBySlug(ctx, strings.TrimSpace(categorySlug))
	if err != nil {
		return nil, repoError(err, "Category not found", "Failed to fetch category")
	}

	products, err := s.repo.ListProductsByCategory(ctx, category.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	pricing.Apply(duration, products...)

	return products, nil
}

// ListRelatedProducts returns up to RelatedProductsLimit other products from
// the same category, oldest first.
func (s *productService) ListRelatedProducts(ctx context.Context, slug, duration string) ([]*models.Product, error) {

	product, err := s.loadProduct(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}

	related, err := s.repo.ListRelatedProducts(ctx, product, RelatedProductsLimit)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch related products").WithError(err)
	}

	pricing.Apply(duration, related...)

	return related, nil
}

// SearchProducts matches query case-insensitively against product and
// category names.
func (s *productService) SearchProducts(ctx context.Context, query string) ([]*models.ProductSearchResult, error) {

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, appErrors.ValidationError("Search query is required")
	}

	results, err := s.repo.SearchProducts(ctx, query)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to search products").WithError(err)
	}

	return results, nil
}

func (s *productService) UpdateProduct(ctx context.Context, slug string, req *models.UpdateProductRequest) (*models.Product, error) {

	req.Name = optionalText(req.Name)
	if req.Slug != nil {
		trimmed := strings.TrimSpace(*req.Slug)
		req.Slug = &trimmed
	}
	if req.CategoryID != nil {
		trimmed := strings.TrimSpace(*req.CategoryID)
		req.CategoryID = &trimmed
	}

	if err := validation.Struct(s.validate, req); err != nil {
		return nil, err
	}

	product, err := s.repo.GetProductBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, repoError(err, "Product not found", "Failed to fetch product")
	}

	previousSlug := product.Slug

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, appErrors.ValidationError("Category not found").WithError(err)
		}
		product.CategoryID = categoryID
	}
	if req.Price1Month != nil {
		product.Price1Month = *req.Price1Month
	}
	if req.Price2Month != nil {
		product.Price2Month = *req.Price2Month
	}
	if req.Price3Month != nil {
		product.Price3Month = *req.Price3Month
	}

	// A present but blank optional field clears it.
	if req.ImageURL != nil {
		product.ImageURL = optionalText(req.ImageURL)
	}
	if req.Description != nil {
		product.Description = optionalText(req.Description)
	}
	if req.Specifications != nil {
		product.Specifications = optionalText(req.Specifications)
	}
	if req.KeyFeatures != nil {
		product.KeyFeatures = optionalText(req.KeyFeatures)
	}
	if req.YoutubeURL != nil {
		product.YoutubeURL = optionalText(req.YoutubeURL)
	}
	if req.SEOMetaTitle != nil {
		product.SEOMetaTitle = optionalText(req.SEOMetaTitle)
	}
	if req.SEOMetaDescription != nil {
		product.SEOMetaDescription = optionalText(req.SEOMetaDescription)
	}

	err = s.repo.UpdateProduct(ctx, product)
	if err != nil {
		var conflict *repository.ConflictError
		if errors.As(err, &conflict) {
			return nil, conflictError("Product", conflict, product.Slug)
		}

		return nil, repoError(err, "Product not found", "Failed to update product")
	}

	s.invalidate(ctx, previousSlug, product.Slug)

	// Reload so the category name and slug follow a category change.
	updated, err := s.repo.GetProductBySlug(ctx, product.Slug)
	if err != nil {
		return nil, repoError(err, "Product not found", "Failed to fetch product")
	}

	return updated, nil
}

func (s *productService) DeleteProduct(ctx context.Context, slug string) error {

	product, err := s.repo.GetProductBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return repoError(err, "Product not found", "Failed to fetch product")
	}

	if err := s.repo.DeleteProduct(ctx, product.ID); err != nil {
		return repoError(err, "Product not found", "Failed to delete product")
	}

	s.invalidate(ctx, product.Slug)

	return nil
}

// loadProduct reads a product through the cache. The cached copy never
// carries a projected price.
func (s *productService) loadProduct(ctx context.Context, slug string) (*models.Product, error) {

	key := cache.ProductKey(slug)

	if s.cache != nil {
		var cached models.Product

		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			slog.WarnContext(ctx, "Product cache read failed", slog.String("slug", slug), slog.String("error", err.Error()))
		}

		if found {
			cached.Price = nil
			return &cached, nil
		}
	}

	product, err := s.repo.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, repoError(err, "Product not found", "Failed to fetch product")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, product, 0); err != nil {
			slog.WarnContext(ctx, "Product cache write failed", slog.String("slug", slug), slog.String("error", err.Error()))
		}
	}

	return product, nil
}

func (s *productService) invalidate(ctx context.Context, slugs ...string) {

	if s.cache == nil {
		return
	}

	keys := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		keys = append(keys, cache.ProductKey(slug))
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		slog.WarnContext(ctx, "Failed to invalidate cached product", slog.Any("slugs", slugs), slog.String("error", err.Error()))
	}
}
