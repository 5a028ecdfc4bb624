package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func fieldMessage(e validator.FieldError) string {
	human := formatFieldName(e.Field())
	switch e.Tag() {
	case "required", "required_if", "required_without":
		return fmt.Sprintf("%s is required", human)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", human)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", human, e.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", human, e.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must not be greater than %s", human, e.Param())
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid UUID", human)
	case "datetime":
		return fmt.Sprintf("%s must match the format %s", human, e.Param())
	case "gtefield", "gtfield":
		return fmt.Sprintf("%s must be after %s", human, formatFieldName(e.Param()))
	default:
		return fmt.Sprintf("%s is invalid", human)
	}
}

// MapValidationError converts binding errors into a 422 AppError carrying
// one message list per json field name.
func MapValidationError(err error) error {
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make(map[string][]string, len(errs))
		for _, e := range errs {
			fields[e.Field()] = append(fields[e.Field()], fieldMessage(e))
		}
		first := errs[0]
		return &AppError{
			Code:       CodeValidationError,
			Message:    fieldMessage(first),
			HTTPStatus: http.StatusUnprocessableEntity,
			Fields:     fields,
			Err:        err,
		}
	}

	return Wrap(err, CodeInvalidInput, "Invalid input", http.StatusBadRequest)
}
