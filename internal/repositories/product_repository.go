package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/carespace/carespace-api/internal/models"
	"github.com/carespace/carespace-api/internal/utils"
	"github.com/google/uuid"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.Product, error)
	ListRelatedProducts(ctx context.Context, product *models.Product, limit int) ([]*models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]*models.ProductSearchResult, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productSelect = `
	SELECT p.id, p.name, p.slug, p.category_id, c.name, c.slug,
	       p.price_1month, p.price_2month, p.price_3month,
	       p.image_url, p.description, p.specifications, p.key_features, p.youtube_url,
	       p.seo_meta_title, p.seo_meta_description, p.created_at, p.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}

	err := row.Scan(&product.ID, &product.Name, &product.Slug, &product.CategoryID, &product.CategoryName, &product.CategorySlug,
		&product.Price1Month, &product.Price2Month, &product.Price3Month,
		&product.ImageURL, &product.Description, &product.Specifications, &product.KeyFeatures, &product.YoutubeURL,
		&product.SEOMetaTitle, &product.SEOMetaDescription, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}

	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {

		// FOR SHARE keeps the category alive until this transaction commits.
		err := tx.QueryRowContext(dbCtx, `SELECT name, slug FROM categories WHERE id = $1 FOR SHARE`, product.CategoryID).
			Scan(&product.CategoryName, &product.CategorySlug)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: category %s", ErrInvalidReference, product.CategoryID)
		}
		if err != nil {
			return fmt.Errorf("checking category: %w", err)
		}

		var slugTaken bool

		if err := tx.QueryRowContext(dbCtx, `SELECT EXISTS(SELECT 1 FROM products WHERE slug = $1)`, product.Slug).Scan(&slugTaken); err != nil {
			return fmt.Errorf("checking product slug: %w", err)
		}

		if slugTaken {
			return &ConflictError{Field: "slug", Value: product.Slug}
		}

		query := `
			INSERT INTO products (id, name, slug, category_id, price_1month, price_2month, price_3month,
			                      image_url, description, specifications, key_features, youtube_url,
			                      seo_meta_title, seo_meta_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING created_at, updated_at`

		err = tx.QueryRowContext(dbCtx, query, product.ID, product.Name, product.Slug, product.CategoryID,
			product.Price1Month, product.Price2Month, product.Price3Month,
			product.ImageURL, product.Description, product.Specifications, product.KeyFeatures, product.YoutubeURL,
			product.SEOMetaTitle, product.SEOMetaDescription).Scan(&product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return translateError(err)
		}

		return nil
	})
}

func (r *productRepository) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, productSelect+` WHERE p.slug = $1`, slug))
	if err != nil {
		return nil, translateError(err)
	}

	return product, nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.queryProducts(dbCtx, productSelect+` ORDER BY p.created_at, p.id`)
}

func (r *productRepository) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.queryProducts(dbCtx, productSelect+` WHERE p.category_id = $1 ORDER BY p.created_at, p.id`, categoryID)
}

// ListRelatedProducts returns up to limit siblings of product in insertion order.
func (r *productRepository) ListRelatedProducts(ctx context.Context, product *models.Product, limit int) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := productSelect + `
		WHERE p.category_id = $1 AND p.id <> $2
		ORDER BY p.created_at, p.id
		LIMIT $3`

	return r.queryProducts(dbCtx, query, product.CategoryID, product.ID, limit)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching query as a literal substring.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

func (r *productRepository) SearchProducts(ctx context.Context, query string) ([]*models.ProductSearchResult, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	searchQuery := `
		SELECT p.id, p.name, p.slug, c.name, c.slug, p.price_1month, p.image_url, p.youtube_url
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.name ILIKE $1 OR c.name ILIKE $1
		ORDER BY p.name, p.id`

	rows, err := r.DB.QueryContext(dbCtx, searchQuery, containsPattern(query))
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}

	defer rows.Close()

	results := []*models.ProductSearchResult{}

	for rows.Next() {
		result := &models.ProductSearchResult{}

		if err := rows.Scan(&result.ID, &result.Name, &result.Slug, &result.CategoryName, &result.CategorySlug, &result.Price1Month, &result.ImageURL, &result.YoutubeURL); err != nil {
			return nil, fmt.Errorf("scanning search result: %w", err)
		}

		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET name = $1, slug = $2, category_id = $3, price_1month = $4, price_2month = $5, price_3month = $6,
		    image_url = $7, description = $8, specifications = $9, key_features = $10, youtube_url = $11,
		    seo_meta_title = $12, seo_meta_description = $13, updated_at = NOW()
		WHERE id = $14
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, product.Name, product.Slug, product.CategoryID,
		product.Price1Month, product.Price2Month, product.Price3Month,
		product.ImageURL, product.Description, product.Specifications, product.KeyFeatures, product.YoutubeURL,
		product.SEOMetaTitle, product.SEOMetaDescription, product.ID).Scan(&product.UpdatedAt)

	return translateError(err)
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return ErrNotFound
	}

	return nil
}
