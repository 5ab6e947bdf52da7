package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carespace/carespace-api/internal/models"
	"github.com/carespace/carespace-api/internal/utils"
	"github.com/google/uuid"
)

type UserRepository interface {
	// UpsertGoogleUser matches an existing user by email or google id,
	// links the google id and refreshes name and admin flag, or inserts a
	// new user. user is overwritten with the stored row.
	UpsertGoogleUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `id, email, full_name, google_id, is_active, is_admin, created_at`

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(&user.ID, &user.Email, &user.FullName, &user.GoogleID, &user.IsActive, &user.IsAdmin, &user.CreatedAt)
}

func (r *userRepository) UpsertGoogleUser(ctx context.Context, user *models.User) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {

		var existingID uuid.UUID

		lookup := `SELECT id FROM users WHERE email = $1 OR google_id = $2 LIMIT 1 FOR UPDATE`

		err := tx.QueryRowContext(dbCtx, lookup, user.Email, user.GoogleID).Scan(&existingID)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			insert := `
				INSERT INTO users (id, email, full_name, google_id, is_active, is_admin)
				VALUES ($1, $2, $3, $4, TRUE, $5)
				RETURNING ` + userColumns

			return translateError(scanUser(tx.QueryRowContext(dbCtx, insert, user.ID, user.Email, user.FullName, user.GoogleID, user.IsAdmin), user))

		case err != nil:
			return fmt.Errorf("looking up user: %w", err)
		}

		update := `
			UPDATE users
			SET google_id = COALESCE(google_id, $2),
			    full_name = COALESCE($3, full_name),
			    is_admin = $4
			WHERE id = $1
			RETURNING ` + userColumns

		return translateError(scanUser(tx.QueryRowContext(dbCtx, update, existingID, user.GoogleID, user.FullName, user.IsAdmin), user))
	})
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	user := &models.User{}

	if err := scanUser(r.DB.QueryRowContext(dbCtx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id), user); err != nil {
		return nil, translateError(err)
	}

	return user, nil
}
