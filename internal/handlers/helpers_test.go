package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"apotek-backend/internal/apperr"
	"apotek-backend/pkg/utils"
)

func TestParsePagination(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/barang", nil)
	page, limit := parsePagination(r)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	r = httptest.NewRequest("GET", "/api/barang?page=3&limit=25", nil)
	page, limit = parsePagination(r)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)

	// Out-of-range and garbage values fall back to defaults
	r = httptest.NewRequest("GET", "/api/barang?page=-1&limit=500", nil)
	page, limit = parsePagination(r)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	r = httptest.NewRequest("GET", "/api/barang?page=abc&limit=xyz", nil)
	page, limit = parsePagination(r)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestParseDateParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/logs?startDate=2026-08-01", nil)
	d, err := parseDateParam(r, "startDate")
	assert.NoError(t, err)
	if assert.NotNil(t, d) {
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *d)
	}

	// Absent param is nil, not an error
	d, err = parseDateParam(r, "endDate")
	assert.NoError(t, err)
	assert.Nil(t, d)

	r = httptest.NewRequest("GET", "/api/logs?startDate=01-08-2026", nil)
	d, err = parseDateParam(r, "startDate")
	assert.Nil(t, d)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

func TestGetIPAddress(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.5:52110"
	assert.Equal(t, "10.0.0.5", getIPAddress(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", getIPAddress(r))
}

func TestWriteErrStatusAndEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	writeErr(w, apperr.NotFound("barang not found"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp utils.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "not found: barang not found", resp.Message)
}

func TestWriteErrHidesInternalDetailInProduction(t *testing.T) {
	SetProduction(false)
	w := httptest.NewRecorder()
	writeErr(w, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp utils.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp.Message)
	assert.Equal(t, "pq: connection refused", resp.Error)

	SetProduction(true)
	defer SetProduction(false)

	w = httptest.NewRecorder()
	writeErr(w, errors.New("pq: connection refused"))
	var prodResp utils.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &prodResp))
	assert.Equal(t, "Internal server error", prodResp.Message)
	assert.Empty(t, prodResp.Error)
}
