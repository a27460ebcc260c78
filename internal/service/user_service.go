package service

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/user-api/internal/domain"
	"github.com/phrazzld/user-api/internal/store"
)

// UserService provides user CRUD operations with business-rule enforcement:
// case-insensitive email uniqueness, existence checks, and pagination
// validation. Every operation reports its outcome through a Result.
type UserService interface {
	// CreateUser creates a new user from the form, rejecting emails that
	// are already registered (case-insensitively).
	CreateUser(ctx context.Context, form UserForm) Result[UserDto]

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID uuid.UUID) Result[UserDto]

	// GetUsers returns a page of users. Page numbers start at 1; a page
	// beyond the stored data yields an empty success, not a failure.
	GetUsers(ctx context.Context, pageNumber, pageSize int) Result[[]UserDto]

	// UpdateUser replaces the mutable fields of an existing user,
	// preserving the ID and re-checking email uniqueness when the email
	// changes.
	UpdateUser(ctx context.Context, userID uuid.UUID, form UserForm) Result[UserDto]

	// DeleteUser removes a user by ID. The success payload is an empty
	// DTO; callers treat it as "no content".
	DeleteUser(ctx context.Context, userID uuid.UUID) Result[UserDto]
}

// UserServiceImpl implements the UserService interface on top of a keyed
// store of users.
//
// The uniqueness and existence checks are read-then-write sequences
// against a snapshot; the store guards individual operations but not the
// sequence, so two concurrent creates with the same email can both pass
// the check before either writes. That race is a documented property of
// this design, accepted because the store is the only shared state and
// last write wins.
type UserServiceImpl struct {
	users  store.KeyedStore[uuid.UUID, *domain.User]
	logger *slog.Logger
}

// NewUserService creates a new UserService backed by the given store.
func NewUserService(users store.KeyedStore[uuid.UUID, *domain.User], logger *slog.Logger) UserService {
	return &UserServiceImpl{
		users:  users,
		logger: logger.With("component", "user_service"),
	}
}

// CreateUser creates a new user from the form.
func (s *UserServiceImpl) CreateUser(ctx context.Context, form UserForm) Result[UserDto] {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list users for uniqueness check", "error", err)
		return Failure[UserDto](ErrInternal)
	}

	if emailTaken(users, form.Email, uuid.Nil) {
		s.logger.Debug("attempted to create user with registered email", "email", form.Email)
		return Failure[UserDto](ErrEmailAlreadyRegistered)
	}

	user := &domain.User{
		ID:          uuid.New(),
		Email:       form.Email,
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		DateOfBirth: form.DateOfBirth,
	}

	if err := s.users.Add(ctx, user.ID, user); err != nil {
		s.logger.Error("failed to store user", "error", err, "user_id", user.ID)
		return Failure[UserDto](ErrInternal)
	}

	s.logger.Info("user created", "user_id", user.ID, "email", user.Email)
	return Success(NewUserDto(user))
}

// GetUser retrieves a user by ID.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) Result[UserDto] {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to fetch user", "error", err, "user_id", userID)
			return Failure[UserDto](ErrInternal)
		}
		s.logger.Debug("user not found", "user_id", userID)
		return Failure[UserDto](ErrUserNotFound)
	}
	return Success(NewUserDto(user))
}

// GetUsers returns a page of users.
func (s *UserServiceImpl) GetUsers(ctx context.Context, pageNumber, pageSize int) Result[[]UserDto] {
	if pageNumber <= 0 || pageSize <= 0 {
		s.logger.Debug("invalid pagination parameters",
			"page_number", pageNumber,
			"page_size", pageSize)
		return Failure[[]UserDto](ErrInvalidPagination)
	}

	users, err := s.users.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return Failure[[]UserDto](ErrInternal)
	}

	// The store returns values in unspecified order; sort by ID so pages
	// are disjoint across calls against an unchanged store.
	slices.SortFunc(users, func(a, b *domain.User) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	// Guard the skip computation against overflow: a page whose offset
	// exceeds the addressable range cannot hold any users anyway.
	if pageNumber-1 > (math.MaxInt-1)/pageSize {
		return Success([]UserDto{})
	}

	skip := (pageNumber - 1) * pageSize
	if skip >= len(users) {
		return Success([]UserDto{})
	}

	end := len(users)
	if pageSize < end-skip {
		end = skip + pageSize
	}

	return Success(NewUserDtos(users[skip:end]))
}

// UpdateUser replaces the mutable fields of an existing user in place.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, userID uuid.UUID, form UserForm) Result[UserDto] {
	existing, err := s.users.Get(ctx, userID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to fetch user", "error", err, "user_id", userID)
			return Failure[UserDto](ErrInternal)
		}
		s.logger.Debug("user not found for update", "user_id", userID)
		return Failure[UserDto](ErrUserNotFound)
	}

	if !strings.EqualFold(existing.Email, form.Email) {
		users, err := s.users.GetAll(ctx)
		if err != nil {
			s.logger.Error("failed to list users for uniqueness check", "error", err)
			return Failure[UserDto](ErrInternal)
		}
		if emailTaken(users, form.Email, userID) {
			s.logger.Debug("attempted to update user to registered email",
				"user_id", userID,
				"email", form.Email)
			return Failure[UserDto](ErrEmailAlreadyRegistered)
		}
	}

	updated := &domain.User{
		ID:          existing.ID,
		Email:       form.Email,
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		DateOfBirth: form.DateOfBirth,
	}

	if err := s.users.Update(ctx, userID, updated); err != nil {
		s.logger.Error("failed to update user", "error", err, "user_id", userID)
		return Failure[UserDto](ErrInternal)
	}

	s.logger.Info("user updated", "user_id", userID, "email", updated.Email)
	return Success(NewUserDto(updated))
}

// DeleteUser removes a user by ID.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) Result[UserDto] {
	if _, err := s.users.Get(ctx, userID); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to fetch user", "error", err, "user_id", userID)
			return Failure[UserDto](ErrInternal)
		}
		s.logger.Debug("user not found for delete", "user_id", userID)
		return Failure[UserDto](ErrUserNotFound)
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", userID)
		return Failure[UserDto](ErrInternal)
	}

	s.logger.Info("user deleted", "user_id", userID)
	return Success(UserDto{})
}

// emailTaken reports whether any user other than exclude already uses the
// email, compared case-insensitively.
func emailTaken(users []*domain.User, email string, exclude uuid.UUID) bool {
	for _, user := range users {
		if user.ID != exclude && strings.EqualFold(user.Email, email) {
			return true
		}
	}
	return false
}
