package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field length and age limits enforced on User entities.
const (
	// MaxFieldLength is the maximum length, in characters, for email and
	// name fields.
	MaxFieldLength = 128

	// MinAge is the minimum age, in years, a user must have at creation
	// or update time.
	MinAge = 18
)

// User represents a registered user record.
// It is the canonical, store-resident representation; external input and
// output use the form/DTO shapes defined by the service and API layers.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

// NewUser creates a new User with the given details.
// It generates a new UUID for the user ID.
// Returns an error if validation fails.
func NewUser(email, firstName, lastName string, dateOfBirth time.Time) (*User, error) {
	user := &User{
		ID:          uuid.New(),
		Email:       email,
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: dateOfBirth,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
// The HTTP layer validates forms before the service runs; this is the
// last line of defense for users constructed programmatically.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrInvalidID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	// Lengths count characters, not bytes, matching the form validation.
	if utf8.RuneCountInString(u.Email) > MaxFieldLength {
		return ErrEmailTooLong
	}
	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.FirstName == "" {
		return ErrEmptyFirstName
	}
	if utf8.RuneCountInString(u.FirstName) > MaxFieldLength {
		return ErrFirstNameTooLong
	}

	// Last name is optional but still bounded.
	if utf8.RuneCountInString(u.LastName) > MaxFieldLength {
		return ErrLastNameTooLong
	}

	if u.DateOfBirth.IsZero() {
		return ErrEmptyDateOfBirth
	}
	if u.Age(time.Now()) < MinAge {
		return ErrUnderage
	}

	return nil
}

// Age returns the user's age in whole years at the given reference time.
func (u *User) Age(at time.Time) int {
	return AgeAt(u.DateOfBirth, at)
}

// AgeAt computes an age in whole years from a date of birth, using the
// standard "has the birthday occurred yet this year" adjustment.
func AgeAt(dateOfBirth, at time.Time) int {
	age := at.Year() - dateOfBirth.Year()
	if dateOfBirth.AddDate(age, 0, 0).After(at) {
		age--
	}
	return age
}

// TODO: Replace this basic email validation with a more robust library.
// This implementation is intentionally simple and has limitations.
//
// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format.
func validateEmailFormat(email string) bool {
	// Should have exactly one @ with a dotted domain after it.
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex == -1 || atIndex == 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 { // minimum would be "a.b"
		return false
	}

	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	if dotIndex == -1 || dotIndex == 0 || dotIndex == len(domainPart)-1 {
		return false
	}

	return true
}
