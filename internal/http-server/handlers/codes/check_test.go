package codes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nglmq/upc-validator/internal/auth"
	"github.com/nglmq/upc-validator/internal/config"
	"github.com/nglmq/upc-validator/internal/storage/memory"
)

func authToken(t *testing.T, login string) string {
	t.Helper()

	config.JWTSecret = "test-secret"
	token, err := auth.BuildJWTString(login)
	require.NoError(t, err)
	return token
}

func TestCheckCodeHandle(t *testing.T) {
	store := memory.New()
	handler := CheckCodeHandle(store, nil, nil)
	token := authToken(t, "gopher")

	tests := []struct {
		name       string
		token      string
		body       string
		wantStatus int
		wantValid  bool
	}{
		{
			name:       "valid code",
			token:      token,
			body:       "036000241457",
			wantStatus: http.StatusOK,
			wantValid:  true,
		},
		{
			name:       "wrong check digit",
			token:      token,
			body:       "036000241452",
			wantStatus: http.StatusOK,
			wantValid:  false,
		},
		{
			name:       "no auth header",
			token:      "",
			body:       "036000241457",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			token:      "garbage",
			body:       "036000241457",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty body",
			token:      token,
			body:       "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short code",
			token:      token,
			body:       "0360002414",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "non-digit in code",
			token:      token,
			body:       "03600x241457",
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/user/codes", strings.NewReader(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			w := httptest.NewRecorder()

			handler(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var result CheckResult
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
				assert.Equal(t, tt.body, result.Code)
				assert.Equal(t, tt.wantValid, result.Valid)
			}
		})
	}
}

func TestCheckCodePersistsVerdicts(t *testing.T) {
	store := memory.New()
	handler := CheckCodeHandle(store, nil, nil)
	token := authToken(t, "gopher")

	for _, body := range []string{"036000241457", "036000241452"} {
		req := httptest.NewRequest(http.MethodPost, "/api/user/codes", strings.NewReader(body))
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()

		handler(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	checks, err := store.GetChecks(context.Background(), "gopher")
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.True(t, checks[0].Valid)
	assert.False(t, checks[1].Valid)
}
