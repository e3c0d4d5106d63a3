package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"apotek-backend/internal/apperr"
	"apotek-backend/internal/models"
	"apotek-backend/internal/repositories"
)

type TransaksiMasukService struct {
	Repo *repositories.TransaksiMasukRepository
}

func NewTransaksiMasukService(repo *repositories.TransaksiMasukRepository) *TransaksiMasukService {
	return &TransaksiMasukService{Repo: repo}
}

func validateDetailMasuk(idBarang, jumlah int, hargaSatuan float64) error {
	if idBarang <= 0 {
		return apperr.BadRequest("id_barang is required for every detail")
	}
	if jumlah <= 0 {
		return apperr.BadRequest("jumlah must be greater than zero")
	}
	if hargaSatuan < 0 {
		return apperr.BadRequest("harga_satuan cannot be negative")
	}
	return nil
}

// Create validates every line before any write, then persists header and
// details as one atomic unit.
func (s *TransaksiMasukService) Create(ctx context.Context, actorID int, req *models.CreateTransaksiMasukRequest) (*models.TransaksiMasuk, error) {
	if req.TanggalMasuk.IsZero() {
		return nil, apperr.BadRequest("tanggal_masuk is required")
	}
	if len(req.Details) == 0 {
		return nil, apperr.BadRequest("at least one detail is required")
	}
	for _, d := range req.Details {
		if err := validateDetailMasuk(d.IDBarang, d.Jumlah, d.HargaSatuan); err != nil {
			return nil, err
		}
	}

	t := &models.TransaksiMasuk{
		TanggalMasuk: req.TanggalMasuk,
		IDSupplier:   req.IDSupplier,
		IDUser:       actorID,
		Keterangan:   req.Keterangan,
	}
	for _, d := range req.Details {
		t.Details = append(t.Details, models.DetailTransaksiMasuk{
			IDBarang:          d.IDBarang,
			Jumlah:            d.Jumlah,
			HargaSatuan:       d.HargaSatuan,
			TanggalKadaluarsa: d.TanggalKadaluarsa,
		})
	}

	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TransaksiMasukService) Get(ctx context.Context, id int) (*models.TransaksiMasuk, error) {
	t, err := s.Repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("transaksi masuk not found")
		}
		return nil, err
	}
	return t, nil
}

func (s *TransaksiMasukService) List(ctx context.Context, f models.TransaksiMasukFilter) ([]*models.TransaksiMasuk, int, error) {
	return s.Repo.List(ctx, f)
}

func (s *TransaksiMasukService) UpdateHeader(ctx context.Context, id int, p models.TransaksiMasukPatch) (*models.TransaksiMasuk, error) {
	if p.IsEmpty() {
		return nil, apperr.BadRequest("nothing to update")
	}
	if p.TanggalMasuk != nil && p.TanggalMasuk.IsZero() {
		return nil, apperr.BadRequest("tanggal_masuk cannot be empty")
	}

	affected, err := s.Repo.UpdateHeader(ctx, id, p)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperr.NotFound("transaksi masuk not found")
	}
	return s.Get(ctx, id)
}

func (s *TransaksiMasukService) Delete(ctx context.Context, id int) error {
	affected, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("transaksi masuk not found")
	}
	return nil
}

// AddDetail appends a line to an existing header.
func (s *TransaksiMasukService) AddDetail(ctx context.Context, transaksiID int, req *models.CreateDetailMasukRequest) (*models.DetailTransaksiMasuk, error) {
	if err := validateDetailMasuk(req.IDBarang, req.Jumlah, req.HargaSatuan); err != nil {
		return nil, err
	}

	// Header must exist before we attach a line to it
	if _, err := s.Repo.Get(ctx, transaksiID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("transaksi masuk not found")
		}
		return nil, err
	}

	d := &models.DetailTransaksiMasuk{
		IDTransaksiMasuk:  transaksiID,
		IDBarang:          req.IDBarang,
		Jumlah:            req.Jumlah,
		HargaSatuan:       req.HargaSatuan,
		TanggalKadaluarsa: req.TanggalKadaluarsa,
	}
	if err := s.Repo.AddDetail(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *TransaksiMasukService) UpdateDetail(ctx context.Context, transaksiID, detailID int, p models.DetailMasukPatch) (*models.DetailTransaksiMasuk, error) {
	if p.IsEmpty() {
		return nil, apperr.BadRequest("nothing to update")
	}
	if p.IDBarang != nil && *p.IDBarang <= 0 {
		return nil, apperr.BadRequest("id_barang is required for every detail")
	}
	if p.Jumlah != nil && *p.Jumlah <= 0 {
		return nil, apperr.BadRequest("jumlah must be greater than zero")
	}
	if p.HargaSatuan != nil && *p.HargaSatuan < 0 {
		return nil, apperr.BadRequest("harga_satuan cannot be negative")
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

func (s *TransaksiMasukService) DeleteDetail(ctx context.Context, transaksiID, detailID int) error {
	affected, err := s.Repo.DeleteDetail(ctx, transaksiID, detailID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("detail not found")
	}
	return nil
}
