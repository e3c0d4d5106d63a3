package repositories

import (
	"context"
	"fmt"
	"strings"

	"apotek-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BarangRepository struct {
	DB *pgxpool.Pool
}

func NewBarangRepository(db *pgxpool.Pool) *BarangRepository {
	return &BarangRepository{DB: db}
}

const barangColumns = `id_barang, nama_barang, satuan, jenis, stok_minimal, lokasi, created_at, updated_at`

func scanBarang(row interface{ Scan(...interface{}) error }) (*models.Barang, error) {
	var b models.Barang
	err := row.Scan(&b.IDBarang, &b.NamaBarang, &b.Satuan, &b.Jenis,
		&b.StokMinimal, &b.Lokasi, &b.CreatedAt, &b.UpdatedAt)
	return &b, err
}

func (r *BarangRepository) Create(ctx context.Context, b *models.Barang) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO barang(nama_barang, satuan, jenis, stok_minimal, lokasi)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id_barang, created_at, updated_at`,
		b.NamaBarang, b.Satuan, b.Jenis, b.StokMinimal, b.Lokasi,
	).Scan(&b.IDBarang, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BarangRepository) Get(ctx context.Context, id int) (*models.Barang, error) {
	return scanBarang(r.DB.QueryRow(ctx,
		`SELECT `+barangColumns+` FROM barang WHERE id_barang=$1`, id))
}

func (r *BarangRepository) List(ctx context.Context, f models.BarangFilter) ([]*models.Barang, int, error) {
	where := `WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if f.Search != "" {
		where += fmt.Sprintf(` AND nama_barang ILIKE $%d`, idx)
		args = append(args, "%"+f.Search+"%")
		idx++
	}
	if f.Jenis != "" {
		where += fmt.Sprintf(` AND jenis = $%d`, idx)
		args = append(args, f.Jenis)
		idx++
	}
	if f.Satuan != "" {
		where += fmt.Sprintf(` AND satuan = $%d`, idx)
		args = append(args, f.Satuan)
		idx++
	}

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM barang `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+barangColumns+` FROM barang %s ORDER BY nama_barang ASC LIMIT $%d OFFSET $%d`,
		where, idx, idx+1)
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*models.Barang
	for rows.Next() {
		b, err := scanBarang(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, rows.Err()
}

// Update applies a patch, touching only the columns set in it. Returns
// pgx-style affected count so callers can translate 0 to not-found.
func (r *BarangRepository) Update(ctx context.Context, id int, p models.BarangPatch) (int, error) {
	set := []string{}
	args := []interface{}{}
	idx := 1

	if p.NamaBarang != nil {
		set = append(set, fmt.Sprintf("nama_barang=$%d", idx))
		args = append(args, *p.NamaBarang)
		idx++
	}
	if p.Satuan != nil {
		set = append(set, fmt.Sprintf("satuan=$%d", idx))
		args = append(args, *p.Satuan)
		idx++
	}
	if p.Jenis != nil {
		set = append(set, fmt.Sprintf("jenis=$%d", idx))
		args = append(args, *p.Jenis)
		idx++
	}
	if p.StokMinimal != nil {
		set = append(set, fmt.Sprintf("stok_minimal=$%d", idx))
		args = append(args, *p.StokMinimal)
		idx++
	}
	if p.Lokasi != nil {
		set = append(set, fmt.Sprintf("lokasi=$%d", idx))
		args = append(args, *p.Lokasi)
		idx++
	}

	set = append(set, "updated_at=CURRENT_TIMESTAMP")
	query := fmt.Sprintf(`UPDATE barang SET %s WHERE id_barang=$%d`, strings.Join(set, ", "), idx)
	args = append(args, id)

	tag, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// Delete removes the row permanently. Items are hard-deleted.
func (r *BarangRepository) Delete(ctx context.Context, id int) (int, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM barang WHERE id_barang=$1`, id)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
