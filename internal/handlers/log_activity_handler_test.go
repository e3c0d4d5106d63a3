package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"apotek-backend/internal/services"
)

func TestLogCreateRejectsInvalidBody(t *testing.T) {
	h := NewLogActivityHandler(services.NewLogActivityService(nil))

	r := httptest.NewRequest("POST", "/api/logs", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.Create(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestLogCreateRejectsEmptyAksi(t *testing.T) {
	h := NewLogActivityHandler(services.NewLogActivityService(nil))

	r := httptest.NewRequest("POST", "/api/logs", strings.NewReader(`{"aksi":"  "}`))
	w := httptest.NewRecorder()
	h.Create(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "aksi is required")
}

func TestLogGetRejectsBadID(t *testing.T) {
	h := NewLogActivityHandler(services.NewLogActivityService(nil))

	r := httptest.NewRequest("GET", "/api/logs/abc", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "abc"})
	w := httptest.NewRecorder()
	h.Get(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid log id")
}
