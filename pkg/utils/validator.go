package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"task-manager/domain/apperrors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// ValidateStruct returns nil or an *apperrors.ValidationError listing every
// violated constraint in struct declaration order.
func ValidateStruct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return &apperrors.ValidationError{}
	}

	return &apperrors.ValidationError{Violations: GetValidationErrors(fieldErrors)}
}

// GetValidationErrors converts validator errors into field violations, keeping their order.
func GetValidationErrors(fieldErrors validator.ValidationErrors) []apperrors.FieldViolation {
	violations := make([]apperrors.FieldViolation, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, apperrors.FieldViolation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}
	return violations
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return fmt.Sprintf("%s is mandatory", fe.Field())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
