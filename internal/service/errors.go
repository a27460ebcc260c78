package service

// Error is a typed business error carrying a human-readable message and a
// numeric classification code. The boundary layer reuses the code as an
// HTTP status, but within the service it is an opaque classification.
type Error struct {
	Message string
	Code    int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NewError creates a typed Error with the given message and code.
func NewError(message string, code int) *Error {
	return &Error{Message: message, Code: code}
}

// Fixed catalog of expected business failures. These are outcomes, not
// exceptions: they always travel through the Result channel.
var (
	// ErrEmailAlreadyRegistered indicates a create/update targets an email
	// already used by a different user.
	ErrEmailAlreadyRegistered = NewError("user email is already registered", 409)

	// ErrUserNotFound indicates a lookup, update, or delete by identifier
	// found no record.
	ErrUserNotFound = NewError("user does not exist", 404)

	// ErrInvalidID indicates an identifier is not a valid UUID. Reserved:
	// the service operations never raise it themselves, but the HTTP
	// layer uses it when a path identifier fails to parse.
	ErrInvalidID = NewError("the provided id is not a valid UUID", 400)

	// ErrInvalidPagination indicates a page number or page size <= 0.
	ErrInvalidPagination = NewError("invalid pagination parameters", 400)
)

// ErrInternal classifies unexpected infrastructure failures, such as a
// canceled context surfacing from the store. It is outside the business
// catalog above; operations only produce it when the store itself fails.
var ErrInternal = NewError("internal error", 500)
