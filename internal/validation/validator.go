package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	appErrors "github.com/carespace/carespace-api/internal/errors"
	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// IsSlug reports whether s is a non-empty lowercase, digit and hyphen string.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// New returns a validator with the catalog rules registered. Field names in
// errors use the json tag so messages match the request payload.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return IsSlug(fl.Field().String())
	})

	return v
}

// Struct validates data and converts failures into a ValidationError carrying
// one detail line per violated field.
func Struct(validate *validator.Validate, data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return appErrors.InternalError("Unexpected validation error").WithError(err)
	}

	var details []string

	for _, fe := range validationErrs {
		details = append(details, message(fe))
	}

	return appErrors.ValidationError("Validation failed").WithDetails(details...).WithError(err)
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("Field %s is required", err.Field())
	case "email":
		return fmt.Sprintf("Field %s must be a valid email address", err.Field())
	case "slug":
		return fmt.Sprintf("Field %s must contain only lowercase letters, digits and hyphens", err.Field())
	case "uuid":
		return fmt.Sprintf("Field %s must be a valid id", err.Field())
	case "min":
		return fmt.Sprintf("Field %s must be at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("Field %s must be at most %s characters", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("Field %s must be greater than or equal to %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param())
	}
}
