package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"apotek-backend/internal/services"
)

func TestPermissionsForActorRequiresAuthenticatedContext(t *testing.T) {
	h := NewPermissionHandler(services.NewPermissionService(nil))

	r := httptest.NewRequest("GET", "/api/auth/permissions", nil)
	w := httptest.NewRecorder()
	h.ForActor(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
