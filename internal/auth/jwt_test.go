package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"apotek-backend/internal/config"
	"apotek-backend/internal/models"
)

func testConfig(secret string, hours int) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = hours
	cfg.JWT.Issuer = "apotek-backend"
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewJWTManager(testConfig("test-secret", 24))
	user := &models.User{ID: 42, Email: "apoteker@apotek.test", Role: "admin"}

	tok, err := m.GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, tok)

	claims, err := m.ValidateToken(tok)
	assert.NoError(t, err)
	if assert.NotNil(t, claims) {
		assert.Equal(t, 42, claims.UserID)
		assert.Equal(t, "apoteker@apotek.test", claims.Email)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "apotek-backend", claims.Issuer)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	m := NewJWTManager(testConfig("test-secret", -1))
	tok, err := m.GenerateToken(&models.User{ID: 1, Email: "a@b.co", Role: "user"})
	assert.NoError(t, err)

	claims, err := m.ValidateToken(tok)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := NewJWTManager(testConfig("secret-one", 24))
	verifier := NewJWTManager(testConfig("secret-two", 24))

	tok, err := issuer.GenerateToken(&models.User{ID: 1, Email: "a@b.co", Role: "user"})
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(tok)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateGarbageToken(t *testing.T) {
	m := NewJWTManager(testConfig("test-secret", 24))
	claims, err := m.ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
