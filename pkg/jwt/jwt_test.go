package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewService("test-secret-key")

	token, err := service.GenerateToken("user-123", "editor")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "editor", claims.Role)
}

func TestValidateToken_CarriesRole(t *testing.T) {
	service := NewService("test-secret-key")

	for _, role := range []string{"admin", "ideator", "filmer", "editor", "revisions", "poster"} {
		token, err := service.GenerateToken("user-1", role)
		assert.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, role, claims.Role)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	service := NewService("test-secret-key")

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)

	_, err = service.ValidateToken("")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewService("secret-key-1")
	verifier := NewService("secret-key-2")

	token, err := issuer.GenerateToken("user-123", "admin")
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestGenerateToken_SetsExpiry(t *testing.T) {
	service := NewService("test-secret-key")

	token, err := service.GenerateToken("user-123", "poster")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
	assert.True(t, claims.ExpiresAt.Before(time.Now().Add(25*time.Hour)))
}
