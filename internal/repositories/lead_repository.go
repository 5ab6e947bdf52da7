package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carespace/carespace-api/internal/models"
	"github.com/carespace/carespace-api/internal/utils"
	"github.com/google/uuid"
)

type LeadRepository interface {
	CreateLead(ctx context.Context, lead *models.Lead) error
	ListLeads(ctx context.Context) ([]*models.Lead, error)
	GetLeadByID(ctx context.Context, id uuid.UUID) (*models.Lead, error)
}

type leadRepository struct {
	DB *sql.DB
}

func NewLeadRepo(db *sql.DB) LeadRepository {
	return &leadRepository{DB: db}
}

func (r *leadRepository) CreateLead(ctx context.Context, lead *models.Lead) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO leads (id, name, phone, source, product, page_url, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.DB.ExecContext(dbCtx, query, lead.ID, lead.Name, lead.Phone, lead.Source, lead.Product, lead.PageURL, lead.Message, lead.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}

	return nil
}

// ListLeads returns every lead, newest first. There is no pagination.
func (r *leadRepository) ListLeads(ctx context.Context) ([]*models.Lead, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, phone, source, product, page_url, message, created_at
		FROM leads
		ORDER BY created_at DESC, id`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying leads: %w", err)
	}

	defer rows.Close()

	leads := []*models.Lead{}

	for rows.Next() {
		lead := &models.Lead{}

		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Phone, &lead.Source, &lead.Product, &lead.PageURL, &lead.Message, &lead.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning lead: %w", err)
		}

		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return leads, nil
}

func (r *leadRepository) GetLeadByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, phone, source, product, page_url, message, created_at
		FROM leads
		WHERE id = $1`

	lead := &models.Lead{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&lead.ID, &lead.Name, &lead.Phone, &lead.Source, &lead.Product, &lead.PageURL, &lead.Message, &lead.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	return lead, nil
}
