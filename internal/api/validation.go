package api

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/user-api/internal/domain"
	"github.com/phrazzld/user-api/internal/service"
)

// Global validator instance for reuse
var validate = validator.New()

// dateOfBirthLayouts are the accepted textual forms for dates of birth.
var dateOfBirthLayouts = []string{service.DateFormat, time.RFC3339}

// ParseDateOfBirth parses a date of birth from its textual request form.
func ParseDateOfBirth(value string) (time.Time, error) {
	var err error
	for _, layout := range dateOfBirthLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// ValidateUserForm runs all field-level rules over a form request and
// returns the list of violations, empty when the form is valid. It is
// pure and synchronous; callers reject the request before any service
// call when the list is non-empty.
func ValidateUserForm(req UserFormRequest) []FieldViolation {
	var violations []FieldViolation

	if err := validate.Struct(req); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			violations = append(violations, FieldViolation{
				Field:   "form",
				Message: "Invalid form data.",
			})
			return violations
		}
		for _, fe := range fieldErrors {
			violations = append(violations, fieldViolationFor(fe))
		}
	}

	// The date rules below need a parseable value; skip them when the
	// struct rules already flagged the field.
	if req.DateOfBirth == "" {
		return violations
	}

	dob, err := ParseDateOfBirth(req.DateOfBirth)
	if err != nil {
		violations = append(violations, FieldViolation{
			Field:   "date_of_birth",
			Message: "Date of birth must be a valid date.",
		})
		return violations
	}

	if domain.AgeAt(dob, time.Now()) < domain.MinAge {
		violations = append(violations, FieldViolation{
			Field:   "date_of_birth",
			Message: "User must be at least 18 years old.",
		})
	}

	return violations
}

// fieldViolationFor maps a validator field error to the message catalog
// for the user form.
func fieldViolationFor(fe validator.FieldError) FieldViolation {
	switch fe.Field() {
	case "Email":
		switch fe.Tag() {
		case "required":
			return FieldViolation{Field: "email", Message: "Email is required."}
		case "max":
			return FieldViolation{Field: "email", Message: "Email must be at most 128 characters."}
		default:
			return FieldViolation{Field: "email", Message: "Invalid email format."}
		}
	case "FirstName":
		if fe.Tag() == "required" {
			return FieldViolation{Field: "first_name", Message: "First name is required."}
		}
		return FieldViolation{Field: "first_name", Message: "First name must be at most 128 characters."}
	case "LastName":
		return FieldViolation{Field: "last_name", Message: "Last name must be at most 128 characters."}
	case "DateOfBirth":
		return FieldViolation{Field: "date_of_birth", Message: "Date of birth is required."}
	default:
		return FieldViolation{Field: fe.Field(), Message: "Invalid value."}
	}
}
