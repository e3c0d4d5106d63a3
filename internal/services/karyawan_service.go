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

type KaryawanService struct {
	Repo *repositories.KaryawanRepository
}

func NewKaryawanService(repo *repositories.KaryawanRepository) *KaryawanService {
	return &KaryawanService{Repo: repo}
}

func (s *KaryawanService) Create(ctx context.Context, req *models.CreateKaryawanRequest) (*models.Karyawan, error) {
	if strings.TrimSpace(req.NamaKaryawan) == "" {
		return nil, apperr.BadRequest("nama_karyawan is required")
	}
	if strings.TrimSpace(req.Jabatan) == "" {
		return nil, apperr.BadRequest("jabatan is required")
	}

	if req.NIP != nil && *req.NIP != "" {
		if existing, _ := s.Repo.GetByNIP(ctx, *req.NIP); existing != nil && existing.IDKaryawan != 0 {
			return nil, apperr.Conflict("karyawan with this NIP already exists")
		}
	}

	k := &models.Karyawan{
		NamaKaryawan: req.NamaKaryawan,
		Jabatan:      req.Jabatan,
		NIP:          req.NIP,
		NoHP:         req.NoHP,
		Alamat:       req.Alamat,
	}
	if err := s.Repo.Create(ctx, k); err != nil {
		return nil, conflictOnUnique(err, "karyawan with this NIP already exists")
	}

	cache.InvalidateKaryawanCaches(ctx)
	return k, nil
}

func (s *KaryawanService) Get(ctx context.Context, id int) (*models.Karyawan, error) {
	k, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("karyawan not found")
		}
		return nil, err
	}
	return k, nil
}

func (s *KaryawanService) List(ctx context.Context, f models.KaryawanFilter) ([]*models.Karyawan, int, error) {
	return s.Repo.List(ctx, f)
}

func (s *KaryawanService) Update(ctx context.Context, id int, p models.KaryawanPatch) (*models.Karyawan, error) {
	if p.IsEmpty() {
		return nil, apperr.BadRequest("nothing to update")
	}
	if p.NamaKaryawan != nil && strings.TrimSpace(*p.NamaKaryawan) == "" {
		return nil, apperr.BadRequest("nama_karyawan cannot be empty")
	}
	if p.Jabatan != nil && strings.TrimSpace(*p.Jabatan) == "" {
		return nil, apperr.BadRequest("jabatan cannot be empty")
	}
	if p.NIP != nil && *p.NIP != "" {
		if existing, _ := s.Repo.GetByNIP(ctx, *p.NIP); existing != nil && existing.IDKaryawan != 0 && existing.IDKaryawan != id {
			return nil, apperr.Conflict("karyawan with this NIP already exists")
		}
	}

	affected, err := s.Repo.Update(ctx, id, p)
	if err != nil {
		return nil, conflictOnUnique(err, "karyawan with this NIP already exists")
	}
	if affected == 0 {
		return nil, apperr.NotFound("karyawan not found")
	}

	cache.InvalidateKaryawanCaches(ctx)
	return s.Get(ctx, id)
}

// Deactivate soft-deletes an employee. Deactivating an already inactive
// employee is reported as not found to keep the operation explicit.
func (s *KaryawanService) Deactivate(ctx context.Context, id int) error {
	affected, err := s.Repo.Deactivate(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		// Distinguish missing from already-inactive
		if _, err := s.Repo.Get(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperr.NotFound("karyawan not found")
			}
			return err
		}
		return nil
	}

	cache.InvalidateKaryawanCaches(ctx)
	return nil
}
