package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateEntry   = errors.New("duplicate entry")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// Postgres SQLSTATE codes translated by translateError.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ConflictError reports a uniqueness violation on Field. It is returned both
// by the explicit in-transaction checks and by unique constraint failures, so
// callers see one error kind for either path. Value is empty when the
// conflict came from the constraint.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	switch {
	case e.Field == "":
		return ErrDuplicateEntry.Error()
	case e.Value == "":
		return fmt.Sprintf("duplicate %s", e.Field)
	default:
		return fmt.Sprintf("duplicate %s %q", e.Field, e.Value)
	}
}

func (e *ConflictError) Unwrap() error {
	return ErrDuplicateEntry
}

var constraintFields = map[string]string{
	"categories_name_key": "name",
	"categories_slug_key": "slug",
	"products_slug_key":   "slug",
	"users_email_key":     "email",
	"users_google_id_key": "google_id",
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return &ConflictError{Field: constraintFields[pqErr.Constraint]}
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrInvalidReference, pqErr.Constraint)
		}
	}

	return err
}
