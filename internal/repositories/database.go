package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/carespace/carespace-api/internal/config"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/otel/attribute"
)

// Repository owns the connection pool. It is created once in main and closed
// on shutdown; every repository shares the same *sql.DB.
type Repository struct {
	DB       *sql.DB
	Category CategoryRepository
	Product  ProductRepository
	Lead     LeadRepository
	User     UserRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Test the connection to make sure DB is reachable
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return NewWithDB(db), nil
}

// NewWithDB wires the repositories around an already opened pool.
func NewWithDB(db *sql.DB) *Repository {
	return &Repository{
		DB:       db,
		Category: NewCategoryRepo(db),
		Product:  NewProductRepo(db),
		Lead:     NewLeadRepo(db),
		User:     NewUserRepo(db),
	}
}

func (r *Repository) Close() error {
	return r.DB.Close()
}

// withTx runs fn inside a transaction, rolling back on any error.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return translateError(fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}
