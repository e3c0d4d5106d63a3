package repositories

import (
	"context"
	"fmt"
	"strings"

	"apotek-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TransaksiKeluarRepository struct {
	DB *pgxpool.Pool
}

func NewTransaksiKeluarRepository(db *pgxpool.Pool) *TransaksiKeluarRepository {
	return &TransaksiKeluarRepository{DB: db}
}

// Create inserts the header and all detail rows in one transaction.
func (r *TransaksiKeluarRepository) Create(ctx context.Context, t *models.TransaksiKeluar) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO transaksi_keluar(tanggal_keluar, tujuan, id_user, keterangan)
		 VALUES($1, $2, $3, $4)
		 RETURNING id_transaksi_keluar, created_at, updated_at`,
		t.TanggalKeluar, t.Tujuan, t.IDUser, t.Keterangan,
	).Scan(&t.IDTransaksiKeluar, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return err
	}

	for i := range t.Details {
		d := &t.Details[i]
		d.IDTransaksiKeluar = t.IDTransaksiKeluar
		err = tx.QueryRow(ctx,
			`INSERT INTO detail_transaksi_keluar(id_transaksi_keluar, id_barang, jumlah)
			 VALUES($1, $2, $3)
			 RETURNING id_detail_keluar`,
			d.IDTransaksiKeluar, d.IDBarang, d.Jumlah,
		).Scan(&d.IDDetailKeluar)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *TransaksiKeluarRepository) Get(ctx context.Context, id int) (*models.TransaksiKeluar, error) {
	var t models.TransaksiKeluar
	err := r.DB.QueryRow(ctx,
		`SELECT id_transaksi_keluar, tanggal_keluar, tujuan, id_user, keterangan, created_at, updated_at
         FROM transaksi_keluar WHERE id_transaksi_keluar=$1`, id,
	).Scan(&t.IDTransaksiKeluar, &t.TanggalKeluar, &t.Tujuan, &t.IDUser,
		&t.Keterangan, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}

	details, err := r.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Details = details
	return &t, nil
}

func (r *TransaksiKeluarRepository) GetDetails(ctx context.Context, transaksiID int) ([]models.DetailTransaksiKeluar, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id_detail_keluar, id_transaksi_keluar, id_barang, jumlah
         FROM detail_transaksi_keluar
         WHERE id_transaksi_keluar=$1
         ORDER BY id_detail_keluar ASC`, transaksiID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := []models.DetailTransaksiKeluar{}
	for rows.Next() {
		var d models.DetailTransaksiKeluar
		if err := rows.Scan(&d.IDDetailKeluar, &d.IDTransaksiKeluar, &d.IDBarang, &d.Jumlah); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// List filters: date range on tanggal_keluar plus case-insensitive substring
// match on tujuan.
func (r *TransaksiKeluarRepository) List(ctx context.Context, f models.TransaksiKeluarFilter) ([]*models.TransaksiKeluar, int, error) {
	where := `WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if f.StartDate != nil {
		where += fmt.Sprintf(` AND tanggal_keluar >= $%d`, idx)
		args = append(args, *f.StartDate)
		idx++
	}
	if f.EndDate != nil {
		where += fmt.Sprintf(` AND tanggal_keluar <= $%d`, idx)
		args = append(args, *f.EndDate)
		idx++
	}
	if f.Tujuan != "" {
		where += fmt.Sprintf(` AND tujuan ILIKE $%d`, idx)
		args = append(args, "%"+f.Tujuan+"%")
		idx++
	}

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM transaksi_keluar `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		`SELECT id_transaksi_keluar, tanggal_keluar, tujuan, id_user, keterangan, created_at, updated_at
         FROM transaksi_keluar %s
         ORDER BY tanggal_keluar DESC, created_at DESC
         LIMIT $%d OFFSET $%d`, where, idx, idx+1)
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []*models.TransaksiKeluar
	for rows.Next() {
		var t models.TransaksiKeluar
		err := rows.Scan(&t.IDTransaksiKeluar, &t.TanggalKeluar, &t.Tujuan,
			&t.IDUser, &t.Keterangan, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, &t)
	}
	return list, total, rows.Err()
}

func (r *TransaksiKeluarRepository) UpdateHeader(ctx context.Context, id int, p models.TransaksiKeluarPatch) (int, error) {
	set := []string{}
	args := []interface{}{}
	idx := 1

	if p.TanggalKeluar != nil {
		set = append(set, fmt.Sprintf("tanggal_keluar=$%d", idx))
		args = append(args, *p.TanggalKeluar)
		idx++
	}
	if p.Tujuan != nil {
		set = append(set, fmt.Sprintf("tujuan=$%d", idx))
		args = append(args, *p.Tujuan)
		idx++
	}
	if p.Keterangan != nil {
		set = append(set, fmt.Sprintf("keterangan=$%d", idx))
		args = append(args, *p.Keterangan)
		idx++
	}

	set = append(set, "updated_at=CURRENT_TIMESTAMP")
	query := fmt.Sprintf(`UPDATE transaksi_keluar SET %s WHERE id_transaksi_keluar=$%d`,
		strings.Join(set, ", "), idx)
	args = append(args, id)

	tag, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *TransaksiKeluarRepository) Delete(ctx context.Context, id int) (int, error) {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM transaksi_keluar WHERE id_transaksi_keluar=$1`, id)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *TransaksiKeluarRepository) AddDetail(ctx context.Context, d *models.DetailTransaksiKeluar) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO detail_transaksi_keluar(id_transaksi_keluar, id_barang, jumlah)
         VALUES($1, $2, $3)
         RETURNING id_detail_keluar`,
		d.IDTransaksiKeluar, d.IDBarang, d.Jumlah,
	).Scan(&d.IDDetailKeluar)
}

func (r *TransaksiKeluarRepository) GetDetail(ctx context.Context, transaksiID, detailID int) (*models.DetailTransaksiKeluar, error) {
	var d models.DetailTransaksiKeluar
	err := r.DB.QueryRow(ctx,
		`SELECT id_detail_keluar, id_transaksi_keluar, id_barang, jumlah
         FROM detail_transaksi_keluar
         WHERE id_transaksi_keluar=$1 AND id_detail_keluar=$2`, transaksiID, detailID,
	).Scan(&d.IDDetailKeluar, &d.IDTransaksiKeluar, &d.IDBarang, &d.Jumlah)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *TransaksiKeluarRepository) UpdateDetail(ctx context.Context, transaksiID, detailID int, p models.DetailKeluarPatch) (int, error) {
	set := []string{}
	args := []interface{}{}
	idx := 1

	if p.IDBarang != nil {
		set = append(set, fmt.Sprintf("id_barang=$%d", idx))
		args = append(args, *p.IDBarang)
		idx++
	}
	if p.Jumlah != nil {
		set = append(set, fmt.Sprintf("jumlah=$%d", idx))
		args = append(args, *p.Jumlah)
		idx++
	}

	query := fmt.Sprintf(
		`UPDATE detail_transaksi_keluar SET %s WHERE id_transaksi_keluar=$%d AND id_detail_keluar=$%d`,
		strings.Join(set, ", "), idx, idx+1)
	args = append(args, transaksiID, detailID)

	tag, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *TransaksiKeluarRepository) DeleteDetail(ctx context.Context, transaksiID, detailID int) (int, error) {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM detail_transaksi_keluar WHERE id_transaksi_keluar=$1 AND id_detail_keluar=$2`,
		transaksiID, detailID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
