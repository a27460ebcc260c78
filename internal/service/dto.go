package service

import (
	"time"

	"github.com/phrazzld/user-api/internal/domain"
)

// DateFormat is the wire format for dates of birth in DTOs.
const DateFormat = "2006-01-02"

// UserForm is the validated input to create/update operations. The HTTP
// layer parses and validates the untrusted request payload before
// building one of these; by the time a form reaches the service its
// fields are well-formed, though business rules (uniqueness, existence)
// are still the service's job.
type UserForm struct {
	Email       string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
}

// UserDto is the externally-shaped representation of a User, derived from
// the entity per request and never stored.
type UserDto struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
}

// NewUserDto maps a User entity to its DTO representation.
func NewUserDto(user *domain.User) UserDto {
	return UserDto{
		ID:          user.ID.String(),
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		DateOfBirth: user.DateOfBirth.Format(DateFormat),
	}
}

// NewUserDtos maps a slice of User entities to DTOs.
func NewUserDtos(users []*domain.User) []UserDto {
	dtos := make([]UserDto, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, NewUserDto(user))
	}
	return dtos
}
