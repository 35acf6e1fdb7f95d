package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nglmq/upc-validator/internal/config"
	"github.com/nglmq/upc-validator/internal/storage/memory"
)

func TestRegistrationHandle(t *testing.T) {
	config.JWTSecret = "test-secret"
	store := memory.New()
	handler := RegistrationHandle(store)

	t.Run("registers and issues token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/register",
			strings.NewReader(`{"login":"gopher","password":"s3cret"}`))
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("Authorization"))
	})

	t.Run("duplicate login conflicts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/register",
			strings.NewReader(`{"login":"gopher","password":"s3cret"}`))
		w := httptest.NewRecorder()

		handler(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/register",
			strings.NewReader(`{"login":"nopass"}`))
		w := httptest.NewRecorder()

		handler(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/register",
			strings.NewReader(`not json`))
		w := httptest.NewRecorder()

		handler(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
