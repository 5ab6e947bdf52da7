package service

import (
	"errors"
	"fmt"
	"strings"

	appErrors "github.com/carespace/carespace-api/internal/errors"
	repository "github.com/carespace/carespace-api/internal/repositories"
)

// conflictError turns a repository uniqueness failure into the ValidationError
// clients see, whether it came from the in-transaction check or the constraint.
func conflictError(entity string, conflict *repository.ConflictError, fallbackValue string) *appErrors.AppError {

	value := conflict.Value
	if value == "" {
		value = fallbackValue
	}

	if conflict.Field == "" {
		return appErrors.ValidationError(fmt.Sprintf("%s already exists", entity)).WithError(conflict)
	}

	return appErrors.ValidationError(fmt.Sprintf("%s with %s '%s' already exists", entity, conflict.Field, value)).WithError(conflict)
}

// repoError maps repository sentinels onto AppErrors. Anything unknown is a
// DatabaseError carrying dbMessage.
func repoError(err error, notFoundMessage, dbMessage string) *appErrors.AppError {

	if appErr, ok := appErrors.IsAppError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return appErrors.NotFoundError(notFoundMessage).WithError(err)
	case errors.Is(err, repository.ErrInvalidReference):
		return appErrors.ValidationError("Category not found").WithError(err)
	default:
		return appErrors.DatabaseError(dbMessage).WithError(err)
	}
}

// optionalText trims s and treats a blank value as absent.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
