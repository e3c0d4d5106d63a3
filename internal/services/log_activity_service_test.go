package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"apotek-backend/internal/apperr"
	"apotek-backend/internal/models"
)

func TestLogRecordRequiresAksi(t *testing.T) {
	s := NewLogActivityService(nil)
	_, err := s.Record(context.Background(), &models.CreateLogRequest{Aksi: "  "})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

func TestLogSearchRequiresTerm(t *testing.T) {
	s := NewLogActivityService(nil)
	_, _, err := s.Search(context.Background(), "", 1, 10)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

func TestLogPurgeRequiresPositiveDays(t *testing.T) {
	s := NewLogActivityService(nil)

	_, err := s.Purge(context.Background(), 0)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))

	_, err = s.Purge(context.Background(), -7)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}
