package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"apotek-backend/internal/apperr"
	"apotek-backend/internal/models"
)

func TestRegisterRequiresAllFields(t *testing.T) {
	s := NewUserService(nil, nil, nil, nil)

	for _, req := range []*models.RegisterRequest{
		{Email: "a@b.co", Password: "rahasia123"},
		{Username: "budi", Password: "rahasia123"},
		{Username: "budi", Email: "a@b.co"},
	} {
		_, err := s.Register(context.Background(), req)
		assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	}
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	s := NewUserService(nil, nil, nil, nil)
	_, err := s.Register(context.Background(), &models.RegisterRequest{
		Username: "budi",
		Email:    "not-an-email",
		Password: "rahasia123",
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "email")
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	s := NewUserService(nil, nil, nil, nil)
	_, err := s.Register(context.Background(), &models.RegisterRequest{
		Username: "budi",
		Email:    "budi@apotek.test",
		Password: "pendek",
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "at least 8 characters")
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	s := NewUserService(nil, nil, nil, nil)
	_, err := s.Register(context.Background(), &models.RegisterRequest{
		Username: "budi",
		Email:    "budi@apotek.test",
		Password: "rahasia123",
		Role:     "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "invalid role")
}

func TestLoginRequiresCredentials(t *testing.T) {
	s := NewUserService(nil, nil, nil, nil)

	_, err := s.Login(context.Background(), &models.LoginRequest{Password: "rahasia123"})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))

	_, err = s.Login(context.Background(), &models.LoginRequest{Username: "budi"})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

func TestRefreshRequiresToken(t *testing.T) {
	s := NewUserService(nil, nil, nil, nil)
	_, err := s.Refresh(context.Background(), "")
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

func TestLogoutWithoutTokenIsNoop(t *testing.T) {
	s := NewUserService(nil, nil, nil, nil)
	assert.NoError(t, s.Logout(context.Background(), ""))
}
