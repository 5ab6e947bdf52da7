package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, translateError(nil))
	})

	t.Run("no rows", func(t *testing.T) {
		assert.ErrorIs(t, translateError(fmt.Errorf("scan: %w", sql.ErrNoRows)), ErrNotFound)
	})

	t.Run("unique violation on known constraint", func(t *testing.T) {
		err := translateError(&pq.Error{Code: "23505", Constraint: "categories_slug_key"})

		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "slug", conflict.Field)
		assert.ErrorIs(t, err, ErrDuplicateEntry)
		assert.Equal(t, "duplicate slug", err.Error())
	})

	t.Run("unique violation on unknown constraint", func(t *testing.T) {
		err := translateError(&pq.Error{Code: "23505", Constraint: "something_else"})

		assert.ErrorIs(t, err, ErrDuplicateEntry)
		assert.Equal(t, "duplicate entry", err.Error())
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := translateError(&pq.Error{Code: "23503", Constraint: "products_category_id_fkey"})

		assert.ErrorIs(t, err, ErrInvalidReference)
		assert.Contains(t, err.Error(), "products_category_id_fkey")
	})

	t.Run("other errors pass through", func(t *testing.T) {
		original := errors.New("connection reset")

		assert.Same(t, original, translateError(original))
	})
}

func TestConflictError_Message(t *testing.T) {
	assert.Equal(t, `duplicate name "Beds"`, (&ConflictError{Field: "name", Value: "Beds"}).Error())
}
