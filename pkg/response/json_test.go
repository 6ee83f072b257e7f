package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrEshboboyev/api-versioning/pkg/response"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	err := response.JSON(w, http.StatusOK, map[string]string{"id": "123"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, map[string]string{"id": "123"}, got)
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	response.NoContent(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestError(t *testing.T) {
	t.Parallel()

	decode := func(t *testing.T, w *httptest.ResponseRecorder) response.ErrorDetail {
		t.Helper()
		var envelope struct {
			Error response.ErrorDetail `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		return envelope.Error
	}

	t.Run("http error", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		response.Error(w, response.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		detail := decode(t, w)
		assert.Equal(t, "not_found", detail.Code)
	})

	t.Run("unsupported version is a client error distinct from not found", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		response.Error(w, response.ErrUnsupportedVersion)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		detail := decode(t, w)
		assert.Equal(t, "unsupported_api_version", detail.Code)
	})

	t.Run("validation error carries field details", func(t *testing.T) {
		t.Parallel()
		valErr := response.NewValidationError()
		valErr.Add("name", "name is required")

		w := httptest.NewRecorder()
		response.Error(w, valErr)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		detail := decode(t, w)
		assert.Equal(t, "validation_error", detail.Code)
		assert.Equal(t, []string{"name is required"}, detail.Details["name"])
	})

	t.Run("unknown error does not leak internals", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		response.Error(w, errors.New("pg: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		detail := decode(t, w)
		assert.Equal(t, "internal_server_error", detail.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}
