package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"apotek-backend/internal/apperr"
	"apotek-backend/internal/models"
)

func TestTransaksiKeluarCreateRequiresDateAndTujuan(t *testing.T) {
	s := NewTransaksiKeluarService(nil)
	details := []models.CreateDetailKeluarRequest{{IDBarang: 1, Jumlah: 2}}

	_, err := s.Create(context.Background(), 1, &models.CreateTransaksiKeluarRequest{
		Tujuan:  "IGD",
		Details: details,
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "tanggal_keluar")

	_, err = s.Create(context.Background(), 1, &models.CreateTransaksiKeluarRequest{
		TanggalKeluar: time.Now(),
		Tujuan:        "   ",
		Details:       details,
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "tujuan")
}

func TestTransaksiKeluarCreateRequiresDetails(t *testing.T) {
	s := NewTransaksiKeluarService(nil)
	_, err := s.Create(context.Background(), 1, &models.CreateTransaksiKeluarRequest{
		TanggalKeluar: time.Now(),
		Tujuan:        "Poli Umum",
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

func TestTransaksiKeluarCreateRejectsBadDetail(t *testing.T) {
	s := NewTransaksiKeluarService(nil)
	now := time.Now()

	_, err := s.Create(context.Background(), 1, &models.CreateTransaksiKeluarRequest{
		TanggalKeluar: now,
		Tujuan:        "IGD",
		Details:       []models.CreateDetailKeluarRequest{{IDBarang: 0, Jumlah: 2}},
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))

	_, err = s.Create(context.Background(), 1, &models.CreateTransaksiKeluarRequest{
		TanggalKeluar: now,
		Tujuan:        "IGD",
		Details:       []models.CreateDetailKeluarRequest{{IDBarang: 1, Jumlah: 0}},
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "jumlah")
}

func TestTransaksiKeluarUpdateHeaderRejectsEmptyPatch(t *testing.T) {
	s := NewTransaksiKeluarService(nil)
	_, err := s.UpdateHeader(context.Background(), 1, models.TransaksiKeluarPatch{})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}
