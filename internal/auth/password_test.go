package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	assert.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	assert.True(t, VerifyPassword(hash, "rahasia123"))
	assert.False(t, VerifyPassword(hash, "rahasia124"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestHashIsSalted(t *testing.T) {
	h1, err := HashPassword("rahasia123")
	assert.NoError(t, err)
	h2, err := HashPassword("rahasia123")
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.Empty(t, ValidatePasswordStrength("rahasia123"))
	assert.Empty(t, ValidatePasswordStrength("12345678"))
	assert.Equal(t, "password must be at least 8 characters", ValidatePasswordStrength("pendek"))
	assert.NotEmpty(t, ValidatePasswordStrength(""))
}

func TestGenerateRefreshToken(t *testing.T) {
	tok, err := GenerateRefreshToken()
	assert.NoError(t, err)
	// 64 random bytes, hex encoded
	assert.Len(t, tok, 128)

	other, err := GenerateRefreshToken()
	assert.NoError(t, err)
	assert.NotEqual(t, tok, other)
}
