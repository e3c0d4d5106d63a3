package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"apotek-backend/internal/apperr"
	"apotek-backend/internal/models"
)

func TestBarangCreateRequiresName(t *testing.T) {
	s := NewBarangService(nil)
	_, err := s.Create(context.Background(), &models.CreateBarangRequest{
		NamaBarang: "   ",
		Satuan:     "tablet",
		Jenis:      "obat",
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "nama_barang")
}

func TestBarangCreateRejectsUnknownSatuan(t *testing.T) {
	s := NewBarangService(nil)
	_, err := s.Create(context.Background(), &models.CreateBarangRequest{
		NamaBarang: "Paracetamol 500mg",
		Satuan:     "karton",
		Jenis:      "obat",
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "satuan must be one of")
}

func TestBarangCreateRejectsUnknownJenis(t *testing.T) {
	s := NewBarangService(nil)
	_, err := s.Create(context.Background(), &models.CreateBarangRequest{
		NamaBarang: "Paracetamol 500mg",
		Satuan:     "tablet",
		Jenis:      "makanan",
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "jenis must be one of")
}

func TestBarangCreateRejectsNegativeStokMinimal(t *testing.T) {
	s := NewBarangService(nil)
	_, err := s.Create(context.Background(), &models.CreateBarangRequest{
		NamaBarang:  "Paracetamol 500mg",
		Satuan:      "tablet",
		Jenis:       "obat",
		StokMinimal: -5,
	})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "stok_minimal")
}

func TestSupplierCreateRequiresName(t *testing.T) {
	s := NewSupplierService(nil)
	_, err := s.Create(context.Background(), &models.CreateSupplierRequest{NamaSupplier: ""})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "nama_supplier")
}

func TestKaryawanCreateRequiresNameAndJabatan(t *testing.T) {
	s := NewKaryawanService(nil)

	_, err := s.Create(context.Background(), &models.CreateKaryawanRequest{Jabatan: "apoteker"})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "nama_karyawan")

	_, err = s.Create(context.Background(), &models.CreateKaryawanRequest{NamaKaryawan: "Siti"})
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))
	assert.Contains(t, err.Error(), "jabatan")
}
