// Package validation builds the shared go-playground validator and maps its
// failures onto the application's ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"foundation-registry/internal/cnpj"
	apperrors "foundation-registry/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// New returns a validator with the notblank and cnpj tags registered.
// Field names in errors follow the json tag.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = cnpj.RegisterValidation(v)
	return v
}

// ToAppError converts a validator failure into *apperrors.ValidationError,
// reporting the first failing field. Other errors are returned unchanged.
func ToAppError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.NewValidationError(fe.Field(), message(fe))
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return apperrors.NewValidationError("", invalid.Error())
	}
	return err
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case cnpj.Tag:
		return "invalid CNPJ"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
