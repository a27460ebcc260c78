package api

// Common request/response structures

// UserFormRequest defines the payload for the create and update user
// endpoints. It is the untrusted external representation; the date of
// birth stays a string until validation has parsed it.
type UserFormRequest struct {
	Email       string `json:"email"         validate:"required,max=128,email"`
	FirstName   string `json:"first_name"    validate:"required,max=128"`
	LastName    string `json:"last_name"     validate:"omitempty,max=128"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
}

// FieldViolation describes a single field-level validation failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the body returned when form validation fails.
// Validation failures are reported as a per-field list, separate from the
// typed business errors that come back through the service.
type ValidationErrorResponse struct {
	Errors []FieldViolation `json:"errors"`
}
