package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/user-api/internal/api/shared"
	"github.com/phrazzld/user-api/internal/service"
)

// UserHandler handles the user CRUD API requests.
type UserHandler struct {
	userService     service.UserService
	defaultPageSize int
	logger          *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService service.UserService, defaultPageSize int, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService:     userService,
		defaultPageSize: defaultPageSize,
		logger:          logger.With("component", "user_handler"),
	}
}

// respondWithResult folds a service Result into an HTTP response: the
// success value is written with the given status, a typed error with its
// classification code as status.
func respondWithResult[T any](w http.ResponseWriter, r *http.Request, status int, res service.Result[T]) {
	service.Match(res,
		func(value T) struct{} {
			shared.RespondWithJSON(w, r, status, value)
			return struct{}{}
		},
		func(err *service.Error) struct{} {
			shared.RespondWithError(w, r, err.Code, err.Message)
			return struct{}{}
		},
	)
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserFormRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if violations := ValidateUserForm(req); len(violations) > 0 {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, ValidationErrorResponse{Errors: violations})
		return
	}

	form, err := formFromRequest(req)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result := h.userService.CreateUser(r.Context(), form)
	respondWithResult(w, r, http.StatusCreated, result)
}

// GetUser handles GET /api/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		h.logger.Debug("invalid user id in path", "error", err)
		shared.RespondWithError(w, r, service.ErrInvalidID.Code, service.ErrInvalidID.Message)
		return
	}

	result := h.userService.GetUser(r.Context(), id)
	respondWithResult(w, r, http.StatusOK, result)
}

// GetUsers handles GET /api/users with page/size query parameters.
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	page, size, err := getPageParams(r, h.defaultPageSize)
	if err != nil {
		h.logger.Debug("invalid pagination query", "error", err)
		shared.RespondWithError(w, r, service.ErrInvalidPagination.Code, service.ErrInvalidPagination.Message)
		return
	}

	result := h.userService.GetUsers(r.Context(), page, size)
	respondWithResult(w, r, http.StatusOK, result)
}

// UpdateUser handles PUT /api/users/{id}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		h.logger.Debug("invalid user id in path", "error", err)
		shared.RespondWithError(w, r, service.ErrInvalidID.Code, service.ErrInvalidID.Message)
		return
	}

	var req UserFormRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if violations := ValidateUserForm(req); len(violations) > 0 {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, ValidationErrorResponse{Errors: violations})
		return
	}

	form, err := formFromRequest(req)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result := h.userService.UpdateUser(r.Context(), id, form)
	respondWithResult(w, r, http.StatusOK, result)
}

// DeleteUser handles DELETE /api/users/{id}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		h.logger.Debug("invalid user id in path", "error", err)
		shared.RespondWithError(w, r, service.ErrInvalidID.Code, service.ErrInvalidID.Message)
		return
	}

	result := h.userService.DeleteUser(r.Context(), id)
	service.Match(result,
		func(service.UserDto) struct{} {
			w.WriteHeader(http.StatusNoContent)
			return struct{}{}
		},
		func(err *service.Error) struct{} {
			shared.RespondWithError(w, r, err.Code, err.Message)
			return struct{}{}
		},
	)
}

// formFromRequest converts a validated request payload into the service
// form, parsing the date of birth. Validation has already checked the
// value, so a parse failure here means the two fell out of sync.
func formFromRequest(req UserFormRequest) (service.UserForm, error) {
	dob, err := ParseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return service.UserForm{}, err
	}
	return service.UserForm{
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
	}, nil
}
