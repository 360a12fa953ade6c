package validator

import (
	"github.com/go-playground/validator/v10"

	ierr "github.com/buildhaven/billing-dashboard/internal/errors"
)

var validate = newValidate()

// Request structs carry gin binding tags; validating on the same tag
// keeps handler-level and service-level validation identical
func newValidate() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func NewValidator() *validator.Validate {
	return validate
}

// ValidateRequest runs struct-tag validation on an API request and
// converts failures into a validation error with per-field details
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, err := range validateErrs {
				details[err.Field()] = err.Error()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}
