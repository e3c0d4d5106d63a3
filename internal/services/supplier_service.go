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

type SupplierService struct {
	Repo *repositories.SupplierRepository
}

func NewSupplierService(repo *repositories.SupplierRepository) *SupplierService {
	return &SupplierService{Repo: repo}
}

func (s *SupplierService) Create(ctx context.Context, req *models.CreateSupplierRequest) (*models.Supplier, error) {
	if strings.TrimSpace(req.NamaSupplier) == "" {
		return nil, apperr.BadRequest("nama_supplier is required")
	}

	if existing, _ := s.Repo.GetByName(ctx, req.NamaSupplier); existing != nil && existing.IDSupplier != 0 {
		return nil, apperr.Conflict("supplier with this name already exists")
	}

	sup := &models.Supplier{
		NamaSupplier: req.NamaSupplier,
		Alamat:       req.Alamat,
		Kontak:       req.Kontak,
	}
	if err := s.Repo.Create(ctx, sup); err != nil {
		return nil, conflictOnUnique(err, "supplier with this name already exists")
	}

	cache.InvalidateSupplierCaches(ctx)
	return sup, nil
}

func (s *SupplierService) Get(ctx context.Context, id int) (*models.Supplier, error) {
	sup, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("supplier not found")
		}
		return nil, err
	}
	return sup, nil
}

func (s *SupplierService) List(ctx context.Context, f models.SupplierFilter) ([]*models.Supplier, int, error) {
	return s.Repo.List(ctx, f)
}

func (s *SupplierService) Update(ctx context.Context, id int, p models.SupplierPatch) (*models.Supplier, error) {
	if p.IsEmpty() {
		return nil, apperr.BadRequest("nothing to update")
	}
	if p.NamaSupplier != nil {
		if strings.TrimSpace(*p.NamaSupplier) == "" {
			return nil, apperr.BadRequest("nama_supplier cannot be empty")
		}
		if existing, _ := s.Repo.GetByName(ctx, *p.NamaSupplier); existing != nil && existing.IDSupplier != 0 && existing.IDSupplier != id {
			return nil, apperr.Conflict("supplier with this name already exists")
		}
	}

	affected, err := s.Repo.Update(ctx, id, p)
	if err != nil {
		return nil, conflictOnUnique(err, "supplier with this name already exists")
	}
	if affected == 0 {
		return nil, apperr.NotFound("supplier not found")
	}

	cache.InvalidateSupplierCaches(ctx)
	return s.Get(ctx, id)
}

func (s *SupplierService) Delete(ctx context.Context, id int) error {
	affected, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("supplier not found")
	}

	cache.InvalidateSupplierCaches(ctx)
	return nil
}
