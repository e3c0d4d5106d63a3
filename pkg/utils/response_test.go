package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)

	p = NewPagination(1, 10, 10)
	assert.Equal(t, 1, p.TotalPages)

	p = NewPagination(2, 10, 11)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 11, p.Total)
	assert.Equal(t, 2, p.TotalPages)

	p = NewPagination(1, 0, 5)
	assert.Equal(t, 0, p.TotalPages)
}

func TestSuccessEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, http.StatusCreated, "Barang created", map[string]int{"id_barang": 3})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Barang created", resp.Message)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Error)
}

func TestErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusNotFound, "Supplier not found", "")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Supplier not found", resp.Message)
	// omitempty keeps empty data/error out of the payload
	assert.NotContains(t, w.Body.String(), `"data"`)
	assert.NotContains(t, w.Body.String(), `"error"`)
}
