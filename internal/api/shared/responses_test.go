package shared_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/user-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)

	shared.RespondWithJSON(recorder, req, http.StatusCreated, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "value", body["key"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("without trace ID", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)

		shared.RespondWithError(recorder, req, http.StatusNotFound, "user does not exist")

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var body shared.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "user does not exist", body.Error)
		assert.Empty(t, body.TraceID)
	})

	t.Run("with trace ID from context", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req = req.WithContext(shared.SetTraceID(req.Context()))

		shared.RespondWithError(recorder, req, http.StatusConflict, "conflict")

		var body shared.ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, shared.GetTraceID(req.Context()), body.TraceID)
		assert.Len(t, body.TraceID, shared.TraceIDLength*2)
	})
}

func TestTraceIDContext(t *testing.T) {
	t.Parallel()

	t.Run("missing trace ID yields empty string", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		assert.Empty(t, shared.GetTraceID(req.Context()))
	})

	t.Run("trace IDs are unique", func(t *testing.T) {
		a := shared.SetTraceID(httptest.NewRequest("GET", "/", nil).Context())
		b := shared.SetTraceID(httptest.NewRequest("GET", "/", nil).Context())
		assert.NotEqual(t, shared.GetTraceID(a), shared.GetTraceID(b))
	})
}
