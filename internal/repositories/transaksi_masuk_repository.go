package repositories

import (
	"context"
	"fmt"
	"strings"

	"apotek-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TransaksiMasukRepository struct {
	DB *pgxpool.Pool
}

func NewTransaksiMasukRepository(db *pgxpool.Pool) *TransaksiMasukRepository {
	return &TransaksiMasukRepository{DB: db}
}

// Create inserts the header and all detail rows in one transaction. If any
// detail insert fails the whole operation rolls back, leaving no partial
// transaction visible.
func (r *TransaksiMasukRepository) Create(ctx context.Context, t *models.TransaksiMasuk) error {
	// Start transaction
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Insert header
	err = tx.QueryRow(ctx,
		`INSERT INTO transaksi_masuk(tanggal_masuk, id_supplier, id_user, keterangan)
		 VALUES($1, $2, $3, $4)
		 RETURNING id_transaksi_masuk, created_at, updated_at`,
		t.TanggalMasuk, t.IDSupplier, t.IDUser, t.Keterangan,
	).Scan(&t.IDTransaksiMasuk, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return err
	}

	// Insert detail rows in input order
	for i := range t.Details {
		d := &t.Details[i]
		d.IDTransaksiMasuk = t.IDTransaksiMasuk
		err = tx.QueryRow(ctx,
			`INSERT INTO detail_transaksi_masuk(id_transaksi_masuk, id_barang, jumlah, harga_satuan, tanggal_kadaluarsa)
			 VALUES($1, $2, $3, $4, $5)
			 RETURNING id_detail_masuk`,
			d.IDTransaksiMasuk, d.IDBarang, d.Jumlah, d.HargaSatuan, d.TanggalKadaluarsa,
		).Scan(&d.IDDetailMasuk)
		if err != nil {
			return err
		}
		d.TotalHarga = float64(d.Jumlah) * d.HargaSatuan
	}

	// Commit transaction
	return tx.Commit(ctx)
}

// Get retrieves a header with its details ordered by detail id
func (r *TransaksiMasukRepository) Get(ctx context.Context, id int) (*models.TransaksiMasuk, error) {
	var t models.TransaksiMasuk
	err := r.DB.QueryRow(ctx,
		`SELECT id_transaksi_masuk, tanggal_masuk, id_supplier, id_user, keterangan, created_at, updated_at
         FROM transaksi_masuk WHERE id_transaksi_masuk=$1`, id,
	).Scan(&t.IDTransaksiMasuk, &t.TanggalMasuk, &t.IDSupplier, &t.IDUser,
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

// GetDetails returns the detail rows of one header, ordered by detail id.
// total_harga is computed in SQL and never stored.
func (r *TransaksiMasukRepository) GetDetails(ctx context.Context, transaksiID int) ([]models.DetailTransaksiMasuk, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id_detail_masuk, id_transaksi_masuk, id_barang, jumlah, harga_satuan, tanggal_kadaluarsa,
		        (jumlah * harga_satuan) AS total_harga
         FROM detail_transaksi_masuk
         WHERE id_transaksi_masuk=$1
         ORDER BY id_detail_masuk ASC`, transaksiID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := []models.DetailTransaksiMasuk{}
	for rows.Next() {
		var d models.DetailTransaksiMasuk
		err := rows.Scan(&d.IDDetailMasuk, &d.IDTransaksiMasuk, &d.IDBarang,
			&d.Jumlah, &d.HargaSatuan, &d.TanggalKadaluarsa, &d.TotalHarga)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// List returns one page of headers plus the unpaged total. Filters are ANDed:
// date range on tanggal_masuk and exact supplier match.
func (r *TransaksiMasukRepository) List(ctx context.Context, f models.TransaksiMasukFilter) ([]*models.TransaksiMasuk, int, error) {
	where := `WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if f.StartDate != nil {
		where += fmt.Sprintf(` AND tanggal_masuk >= $%d`, idx)
		args = append(args, *f.StartDate)
		idx++
	}
	if f.EndDate != nil {
		where += fmt.Sprintf(` AND tanggal_masuk <= $%d`, idx)
		args = append(args, *f.EndDate)
		idx++
	}
	if f.IDSupplier != nil {
		where += fmt.Sprintf(` AND id_supplier = $%d`, idx)
		args = append(args, *f.IDSupplier)
		idx++
	}

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM transaksi_masuk `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		`SELECT id_transaksi_masuk, tanggal_masuk, id_supplier, id_user, keterangan, created_at, updated_at
         FROM transaksi_masuk %s
         ORDER BY tanggal_masuk DESC, created_at DESC
         LIMIT $%d OFFSET $%d`, where, idx, idx+1)
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []*models.TransaksiMasuk
	for rows.Next() {
		var t models.TransaksiMasuk
		err := rows.Scan(&t.IDTransaksiMasuk, &t.TanggalMasuk, &t.IDSupplier,
			&t.IDUser, &t.Keterangan, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, &t)
	}
	return list, total, rows.Err()
}

// UpdateHeader applies a patch to header scalar fields only. Details are
// never touched here.
func (r *TransaksiMasukRepository) UpdateHeader(ctx context.Context, id int, p models.TransaksiMasukPatch) (int, error) {
	set := []string{}
	args := []interface{}{}
	idx := 1

	if p.TanggalMasuk != nil {
		set = append(set, fmt.Sprintf("tanggal_masuk=$%d", idx))
		args = append(args, *p.TanggalMasuk)
		idx++
	}
	if p.IDSupplier != nil {
		set = append(set, fmt.Sprintf("id_supplier=$%d", idx))
		args = append(args, *p.IDSupplier)
		idx++
	}
	if p.Keterangan != nil {
		set = append(set, fmt.Sprintf("keterangan=$%d", idx))
		args = append(args, *p.Keterangan)
		idx++
	}

	set = append(set, "updated_at=CURRENT_TIMESTAMP")
	query := fmt.Sprintf(`UPDATE transaksi_masuk SET %s WHERE id_transaksi_masuk=$%d`,
		strings.Join(set, ", "), idx)
	args = append(args, id)

	tag, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// Delete removes the header; the cascade removes its details.
func (r *TransaksiMasukRepository) Delete(ctx context.Context, id int) (int, error) {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM transaksi_masuk WHERE id_transaksi_masuk=$1`, id)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// AddDetail appends one line to an existing header.
func (r *TransaksiMasukRepository) AddDetail(ctx context.Context, d *models.DetailTransaksiMasuk) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO detail_transaksi_masuk(id_transaksi_masuk, id_barang, jumlah, harga_satuan, tanggal_kadaluarsa)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id_detail_masuk`,
		d.IDTransaksiMasuk, d.IDBarang, d.Jumlah, d.HargaSatuan, d.TanggalKadaluarsa,
	).Scan(&d.IDDetailMasuk)
	if err != nil {
		return err
	}
	d.TotalHarga = float64(d.Jumlah) * d.HargaSatuan
	return nil
}

// GetDetail fetches one line, scoped to its header so details of other
// headers are never exposed.
func (r *TransaksiMasukRepository) GetDetail(ctx context.Context, transaksiID, detailID int) (*models.DetailTransaksiMasuk, error) {
	var d models.DetailTransaksiMasuk
	err := r.DB.QueryRow(ctx,
		`SELECT id_detail_masuk, id_transaksi_masuk, id_barang, jumlah, harga_satuan, tanggal_kadaluarsa,
		        (jumlah * harga_satuan) AS total_harga
         FROM detail_transaksi_masuk
         WHERE id_transaksi_masuk=$1 AND id_detail_masuk=$2`, transaksiID, detailID,
	).Scan(&d.IDDetailMasuk, &d.IDTransaksiMasuk, &d.IDBarang,
		&d.Jumlah, &d.HargaSatuan, &d.TanggalKadaluarsa, &d.TotalHarga)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *TransaksiMasukRepository) UpdateDetail(ctx context.Context, transaksiID, detailID int, p models.DetailMasukPatch) (int, error) {
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
	if p.HargaSatuan != nil {
		set = append(set, fmt.Sprintf("harga_satuan=$%d", idx))
		args = append(args, *p.HargaSatuan)
		idx++
	}
	if p.TanggalKadaluarsa != nil {
		set = append(set, fmt.Sprintf("tanggal_kadaluarsa=$%d", idx))
		args = append(args, *p.TanggalKadaluarsa)
		idx++
	}

	query := fmt.Sprintf(
		`UPDATE detail_transaksi_masuk SET %s WHERE id_transaksi_masuk=$%d AND id_detail_masuk=$%d`,
		strings.Join(set, ", "), idx, idx+1)
	args = append(args, transaksiID, detailID)

	tag, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *TransaksiMasukRepository) DeleteDetail(ctx context.Context, transaksiID, detailID int) (int, error) {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM detail_transaksi_masuk WHERE id_transaksi_masuk=$1 AND id_detail_masuk=$2`,
		transaksiID, detailID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
