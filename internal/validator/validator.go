package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps struct tag validation for request DTOs.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Custom validators
	v.RegisterValidation("record_id", validateRecordID)

	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Fields flattens a validation failure into per-field messages suitable
// for an API response. Non-validation errors come back as a single
// "request" entry.
func Fields(err error) map[string]string {
	if err == nil {
		return nil
	}
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["request"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		out[strings.ToLower(fe.Field())] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "record_id":
		return "must be a record id like table:key"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// validateRecordID accepts SurrealDB-style ids, e.g. party:x7f2.
func validateRecordID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	parts := strings.SplitN(id, ":", 2)
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}
