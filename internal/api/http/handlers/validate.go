package handlers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

var validate = validator.New()

// checkRequest validates a decoded request body against its struct tags and
// folds violations into a single validation error.
func checkRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("invalid payload")
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email", field))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("field %s must be at least %s", field, fieldErr.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s must not be empty", field))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", field))
		}
	}
	return apperrors.NewValidationError(strings.Join(msgs, ", "))
}
