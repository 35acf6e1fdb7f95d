package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nglmq/upc-validator/internal/config"
)

func TestJWTRoundTrip(t *testing.T) {
	config.JWTSecret = "test-secret"

	token, err := BuildJWTString("gopher")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, "gopher", GetUserID(token))
}

func TestGetUserIDInvalidToken(t *testing.T) {
	config.JWTSecret = "test-secret"

	assert.Empty(t, GetUserID("not-a-token"))

	token, err := BuildJWTString("gopher")
	require.NoError(t, err)

	config.JWTSecret = "another-secret"
	assert.Empty(t, GetUserID(token))
}
