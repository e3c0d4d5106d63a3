package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"apotek-backend/internal/apperr"
	"apotek-backend/internal/cache"
	"apotek-backend/internal/models"
	"apotek-backend/internal/repositories"
)

type BarangService struct {
	Repo *repositories.BarangRepository
}

func NewBarangService(repo *repositories.BarangRepository) *BarangService {
	return &BarangService{Repo: repo}
}

func validSatuan(s string) bool {
	for _, v := range models.BarangSatuanValues {
		if s == v {
			return true
		}
	}
	return false
}

func validJenis(s string) bool {
	for _, v := range models.BarangJenisValues {
		if s == v {
			return true
		}
	}
	return false
}

func (s *BarangService) Create(ctx context.Context, req *models.CreateBarangRequest) (*models.Barang, error) {
	if strings.TrimSpace(req.NamaBarang) == "" {
		return nil, apperr.BadRequest("nama_barang is required")
	}
	if !validSatuan(req.Satuan) {
		return nil, apperr.BadRequest("satuan must be one of: %s", strings.Join(models.BarangSatuanValues, ", "))
	}
	if !validJenis(req.Jenis) {
		return nil, apperr.BadRequest("jenis must be one of: %s", strings.Join(models.BarangJenisValues, ", "))
	}
	if req.StokMinimal < 0 {
		return nil, apperr.BadRequest("stok_minimal cannot be negative")
	}

	b := &models.Barang{
		NamaBarang:  req.NamaBarang,
		Satuan:      req.Satuan,
		Jenis:       req.Jenis,
		StokMinimal: req.StokMinimal,
		Lokasi:      req.Lokasi,
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}

	cache.InvalidateBarangCaches(ctx)
	return b, nil
}

func (s *BarangService) Get(ctx context.Context, id int) (*models.Barang, error) {
	b, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("barang not found")
		}
		return nil, err
	}
	return b, nil
}

func (s *BarangService) List(ctx context.Context, f models.BarangFilter) ([]*models.Barang, int, error) {
	if f.Jenis != "" && !validJenis(f.Jenis) {
		return nil, 0, apperr.BadRequest("jenis must be one of: %s", strings.Join(models.BarangJenisValues, ", "))
	}
	if f.Satuan != "" && !validSatuan(f.Satuan) {
		return nil, 0, apperr.BadRequest("satuan must be one of: %s", strings.Join(models.BarangSatuanValues, ", "))
	}
	return s.Repo.List(ctx, f)
}

func (s *BarangService) Update(ctx context.Context, id int, p models.BarangPatch) (*models.Barang, error) {
	if p.IsEmpty() {
		return nil, apperr.BadRequest("nothing to update")
	}
	if p.NamaBarang != nil && strings.TrimSpace(*p.NamaBarang) == "" {
		return nil, apperr.BadRequest("nama_barang cannot be empty")
	}
	if p.Satuan != nil && !validSatuan(*p.Satuan) {
		return nil, apperr.BadRequest("satuan must be one of: %s", strings.Join(models.BarangSatuanValues, ", "))
	}
	if p.Jenis != nil && !validJenis(*p.Jenis) {
		return nil, apperr.BadRequest("jenis must be one of: %s", strings.Join(models.BarangJenisValues, ", "))
	}
	if p.StokMinimal != nil && *p.StokMinimal < 0 {
		return nil, apperr.BadRequest("stok_minimal cannot be negative")
	}

	affected, err := s.Repo.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperr.NotFound("barang not found")
	}

	cache.InvalidateBarangCaches(ctx)
	return s.Get(ctx, id)
}

func (s *BarangService) Delete(ctx context.Context, id int) error {
	affected, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("barang not found")
	}

	cache.InvalidateBarangCaches(ctx)
	return nil
}
