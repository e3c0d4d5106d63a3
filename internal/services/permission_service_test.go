package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"apotek-backend/internal/apperr"
)

func TestPermissionsByRoleRejectsUnknownRole(t *testing.T) {
	s := NewPermissionService(nil)

	_, err := s.ByRole(context.Background(), "superuser")
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "unknown role")

	_, err = s.ByRole(context.Background(), "")
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}
