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

// Validation runs before any repository call, so a nil repo exercises every
// rejection path.

func TestTransaksiMasukCreateRequiresDate(t *testing.T) {
	s := NewTransaksiMasukService(nil)
	_, err := s.Create(context.Background(), 1, &models.CreateTransaksiMasukRequest{
		Details: []models.CreateDetailMasukRequest{{IDBarang: 1, Jumlah: 5, HargaSatuan: 1000}},
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "tanggal_masuk")
}

func TestTransaksiMasukCreateRequiresDetails(t *testing.T) {
	s := NewTransaksiMasukService(nil)
	_, err := s.Create(context.Background(), 1, &models.CreateTransaksiMasukRequest{
		TanggalMasuk: time.Now(),
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "detail")
}

func TestTransaksiMasukCreateRejectsBadDetail(t *testing.T) {
	s := NewTransaksiMasukService(nil)
	now := time.Now()

	_, err := s.Create(context.Background(), 1, &models.CreateTransaksiMasukRequest{
		TanggalMasuk: now,
		Details:      []models.CreateDetailMasukRequest{{IDBarang: 0, Jumlah: 5, HargaSatuan: 1000}},
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "id_barang")

	_, err = s.Create(context.Background(), 1, &models.CreateTransaksiMasukRequest{
		TanggalMasuk: now,
		Details:      []models.CreateDetailMasukRequest{{IDBarang: 1, Jumlah: 0, HargaSatuan: 1000}},
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "jumlah")

	_, err = s.Create(context.Background(), 1, &models.CreateTransaksiMasukRequest{
		TanggalMasuk: now,
		Details:      []models.CreateDetailMasukRequest{{IDBarang: 1, Jumlah: 5, HargaSatuan: -1}},
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "harga_satuan")
}

func TestTransaksiMasukCreateRejectsOneBadLineAmongMany(t *testing.T) {
	s := NewTransaksiMasukService(nil)
	_, err := s.Create(context.Background(), 1, &models.CreateTransaksiMasukRequest{
		TanggalMasuk: time.Now(),
		Details: []models.CreateDetailMasukRequest{
			{IDBarang: 1, Jumlah: 5, HargaSatuan: 1000},
			{IDBarang: 2, Jumlah: -3, HargaSatuan: 500},
		},
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}

func TestTransaksiMasukUpdateHeaderRejectsEmptyPatch(t *testing.T) {
	s := NewTransaksiMasukService(nil)
	_, err := s.UpdateHeader(context.Background(), 1, models.TransaksiMasukPatch{})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
}
