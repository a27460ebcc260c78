package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// The field-specific errors below wrap it, so callers can match the
	// whole class with errors.Is(err, ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email format", ErrValidation)

	// ErrEmptyEmail is returned when the email is missing.
	ErrEmptyEmail = fmt.Errorf("%w: email cannot be empty", ErrValidation)

	// ErrEmailTooLong is returned when the email exceeds 128 characters.
	ErrEmailTooLong = fmt.Errorf("%w: email must be at most 128 characters", ErrValidation)

	// ErrEmptyFirstName is returned when the first name is missing.
	ErrEmptyFirstName = fmt.Errorf("%w: first name cannot be empty", ErrValidation)

	// ErrFirstNameTooLong is returned when the first name exceeds 128 characters.
	ErrFirstNameTooLong = fmt.Errorf("%w: first name must be at most 128 characters", ErrValidation)

	// ErrLastNameTooLong is returned when the last name exceeds 128 characters.
	ErrLastNameTooLong = fmt.Errorf("%w: last name must be at most 128 characters", ErrValidation)

	// ErrEmptyDateOfBirth is returned when the date of birth is missing.
	ErrEmptyDateOfBirth = fmt.Errorf("%w: date of birth cannot be empty", ErrValidation)

	// ErrUnderage is returned when the date of birth yields an age below 18.
	ErrUnderage = fmt.Errorf("%w: user must be at least 18 years old", ErrValidation)
)
