package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// getPathUUID extracts a UUID from the URL path parameters.
// Returns an error when the parameter is missing or not a valid UUID.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("path parameter %q is required", paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("path parameter %q is not a valid UUID: %w", paramName, err)
	}

	return id, nil
}

// getPageParams reads the page and size query parameters, applying the
// defaults (page 1, configured page size) when a parameter is omitted.
// Non-integer values are an error; out-of-range values are passed through
// for the service to classify.
func getPageParams(r *http.Request, defaultPageSize int) (int, int, error) {
	page := 1
	size := defaultPageSize

	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("page must be an integer: %w", err)
		}
		page = parsed
	}

	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("size must be an integer: %w", err)
		}
		size = parsed
	}

	return page, size, nil
}
