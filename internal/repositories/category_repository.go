package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carespace/carespace-api/internal/models"
	"github.com/carespace/carespace-api/internal/utils"
	"github.com/google/uuid"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	// DeleteCategory removes the category and its products, returning the
	// slugs of the removed products.
	DeleteCategory(ctx context.Context, id uuid.UUID) ([]string, error)
}

type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepo(db *sql.DB) CategoryRepository {
	return &categoryRepository{DB: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {

		var nameTaken, slugTaken bool

		checkQuery := `
			SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1),
			       EXISTS(SELECT 1 FROM categories WHERE slug = $2)`

		if err := tx.QueryRowContext(dbCtx, checkQuery, category.Name, category.Slug).Scan(&nameTaken, &slugTaken); err != nil {
			return fmt.Errorf("checking category uniqueness: %w", err)
		}

		if nameTaken {
			return &ConflictError{Field: "name", Value: category.Name}
		}

		if slugTaken {
			return &ConflictError{Field: "slug", Value: category.Slug}
		}

		query := `
			INSERT INTO categories (id, name, slug, description)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at`

		if err := tx.QueryRowContext(dbCtx, query, category.ID, category.Name, category.Slug, category.Description).Scan(&category.CreatedAt); err != nil {
			return translateError(err)
		}

		category.ProductCount = 0

		return nil
	})
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.name, c.slug, c.description, c.created_at, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.name`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}

	defer rows.Close()

	categories := []*models.Category{}

	for rows.Next() {
		category := &models.Category{}

		if err := rows.Scan(&category.ID, &category.Name, &category.Slug, &category.Description, &category.CreatedAt, &category.ProductCount); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.name, c.slug, c.description, c.created_at, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		WHERE c.slug = $1
		GROUP BY c.id`

	category := &models.Category{}

	err := r.DB.QueryRowContext(dbCtx, query, slug).Scan(&category.ID, &category.Name, &category.Slug, &category.Description, &category.CreatedAt, &category.ProductCount)
	if err != nil {
		return nil, translateError(err)
	}

	return category, nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) ([]string, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var removed []string

	err := withTx(dbCtx, r.DB, func(tx *sql.Tx) error {

		// Products go first and explicitly; the FK cascade is only a backstop.
		rows, err := tx.QueryContext(dbCtx, `DELETE FROM products WHERE category_id = $1 RETURNING slug`, id)
		if err != nil {
			return fmt.Errorf("deleting category products: %w", err)
		}

		for rows.Next() {
			var slug string
			if err := rows.Scan(&slug); err != nil {
				rows.Close()
				return fmt.Errorf("scanning deleted product: %w", err)
			}
			removed = append(removed, slug)
		}

		rows.Close()

		if err := rows.Err(); err != nil {
			return err
		}

		result, err := tx.ExecContext(dbCtx, `DELETE FROM categories WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("deleting category: %w", err)
		}

		deleted, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get deleted rows: %w", err)
		}

		if deleted == 0 {
			return ErrNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}
