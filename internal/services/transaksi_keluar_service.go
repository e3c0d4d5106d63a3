package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"apotek-backend/internal/apperr"
	"apotek-backend/internal/models"
	"apotek-backend/internal/repositories"
)

type TransaksiKeluarService struct {
	Repo *repositories.TransaksiKeluarRepository
}

func NewTransaksiKeluarService(repo *repositories.TransaksiKeluarRepository) *TransaksiKeluarService {
	return &TransaksiKeluarService{Repo: repo}
}

func validateDetailKeluar(idBarang, jumlah int) error {
	if idBarang <= 0 {
		return apperr.BadRequest("id_barang is required for every detail")
	}
	if jumlah <= 0 {
		return apperr.BadRequest("jumlah must be greater than zero")
	}
	return nil
}

// Create validates every line before any write, then persists header and
// details as one atomic unit. tujuan is required for outbound movement.
func (s *TransaksiKeluarService) Create(ctx context.Context, actorID int, req *models.CreateTransaksiKeluarRequest) (*models.TransaksiKeluar, error) {
	if req.TanggalKeluar.IsZero() {
		return nil, apperr.BadRequest("tanggal_keluar is required")
	}
	if strings.TrimSpace(req.Tujuan) == "" {
		return nil, apperr.BadRequest("tujuan is required")
	}
	if len(req.Details) == 0 {
		return nil, apperr.BadRequest("at least one detail is required")
	}
	for _, d := range req.Details {
		if err := validateDetailKeluar(d.IDBarang, d.Jumlah); err != nil {
			return nil, err
		}
	}

	t := &models.TransaksiKeluar{
		TanggalKeluar: req.TanggalKeluar,
		Tujuan:        req.Tujuan,
		IDUser:        actorID,
		Keterangan:    req.Keterangan,
	}
	for _, d := range req.Details {
		t.Details = append(t.Details, models.DetailTransaksiKeluar{
			IDBarang: d.IDBarang,
			Jumlah:   d.Jumlah,
		})
	}

	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TransaksiKeluarService) Get(ctx context.Context, id int) (*models.TransaksiKeluar, error) {
	t, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("transaksi keluar not found")
		}
		return nil, err
	}
	return t, nil
}

func (s *TransaksiKeluarService) List(ctx context.Context, f models.TransaksiKeluarFilter) ([]*models.TransaksiKeluar, int, error) {
	return s.Repo.List(ctx, f)
}

func (s *TransaksiKeluarService) UpdateHeader(ctx context.Context, id int, p models.TransaksiKeluarPatch) (*models.TransaksiKeluar, error) {
	if p.IsEmpty() {
		return nil, apperr.BadRequest("nothing to update")
	}
	if p.Tujuan != nil && strings.TrimSpace(*p.Tujuan) == "" {
		return nil, apperr.BadRequest("tujuan cannot be empty")
	}

	affected, err := s.Repo.UpdateHeader(ctx, id, p)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperr.NotFound("transaksi keluar not found")
	}
	return s.Get(ctx, id)
}

func (s *TransaksiKeluarService) Delete(ctx context.Context, id int) error {
	affected, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("transaksi keluar not found")
	}
	return nil
}

func (s *TransaksiKeluarService) AddDetail(ctx context.Context, transaksiID int, req *models.CreateDetailKeluarRequest) (*models.DetailTransaksiKeluar, error) {
	if err := validateDetailKeluar(req.IDBarang, req.Jumlah); err != nil {
		return nil, err
	}

	if _, err := s.Repo.Get(ctx, transaksiID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("transaksi keluar not found")
		}
		return nil, err
	}

	d := &models.DetailTransaksiKeluar{
		IDTransaksiKeluar: transaksiID,
		IDBarang:          req.IDBarang,
		Jumlah:            req.Jumlah,
	}
	if err := s.Repo.AddDetail(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *TransaksiKeluarService) UpdateDetail(ctx context.Context, transaksiID, detailID int, p models.DetailKeluarPatch) (*models.DetailTransaksiKeluar, error) {
	if p.IsEmpty() {
		return nil, apperr.BadRequest("nothing to update")
	}
	if p.IDBarang != nil && *p.IDBarang <= 0 {
		return nil, apperr.BadRequest("id_barang is required for every detail")
	}
	if p.Jumlah != nil && *p.Jumlah <= 0 {
		return nil, apperr.BadRequest("jumlah must be greater than zero")
	}

	affected, err := s.Repo.UpdateDetail(ctx, transaksiID, detailID, p)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperr.NotFound("detail not found")
	}
	return s.Repo.GetDetail(ctx, transaksiID, detailID)
}

func (s *TransaksiKeluarService) DeleteDetail(ctx context.Context, transaksiID, detailID int) error {
	affected, err := s.Repo.DeleteDetail(ctx, transaksiID, detailID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("detail not found")
	}
	return nil
}
