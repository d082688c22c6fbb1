package repository

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aliskhannn/git-tutor/internal/domain/entities"
)

// validate is shared by the static table loaders.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Use YAML tag name for field names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(validateQuestion, entities.Question{})

	return v
}

// validateQuestion checks that the correct index points at an existing option.
func validateQuestion(sl validator.StructLevel) {
	q := sl.Current().Interface().(entities.Question)
	if q.Correct >= len(q.Options) {
		sl.ReportError(q.Correct, "correct", "Correct", "correct_in_options", "")
	}
}

// describeValidation turns a validation error into a single readable line.
func describeValidation(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		msg := fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		parts = append(parts, msg)
	}

	return strings.Join(parts, "; ")
}
