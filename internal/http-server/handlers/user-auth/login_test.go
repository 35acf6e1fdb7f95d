package user_auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nglmq/upc-validator/internal/config"
	"github.com/nglmq/upc-validator/internal/storage/memory"
)

func TestLoginHandle(t *testing.T) {
	config.JWTSecret = "test-secret"
	store := memory.New()
	require.NoError(t, store.SaveUser(context.Background(), "gopher", "s3cret"))

	handler := LoginHandle(store)

	t.Run("valid credentials issue token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/login",
			strings.NewReader(`{"login":"gopher","password":"s3cret"}`))
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("Authorization"))
	})

	t.Run("wrong password unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/login",
			strings.NewReader(`{"login":"gopher","password":"wrong"}`))
		w := httptest.NewRecorder()

		handler(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/user/login",
			strings.NewReader(`{"login":"nobody","password":"s3cret"}`))
		w := httptest.NewRecorder()

		handler(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
