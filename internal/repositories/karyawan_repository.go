package repositories

import (
	"context"
	"fmt"
	"strings"

	"apotek-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type KaryawanRepository struct {
	DB *pgxpool.Pool
}

func NewKaryawanRepository(db *pgxpool.Pool) *KaryawanRepository {
	return &KaryawanRepository{DB: db}
}

const karyawanColumns = `id_karyawan, nama_karyawan, jabatan, nip, no_hp, alamat, status_aktif, created_at, updated_at`

func scanKaryawan(row interface{ Scan(...interface{}) error }) (*models.Karyawan, error) {
	var k models.Karyawan
	err := row.Scan(&k.IDKaryawan, &k.NamaKaryawan, &k.Jabatan, &k.NIP,
		&k.NoHP, &k.Alamat, &k.StatusAktif, &k.CreatedAt, &k.UpdatedAt)
	return &k, err
}

func (r *KaryawanRepository) Create(ctx context.Context, k *models.Karyawan) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO karyawan(nama_karyawan, jabatan, nip, no_hp, alamat, status_aktif)
         VALUES($1, $2, $3, $4, $5, TRUE)
         RETURNING id_karyawan, status_aktif, created_at, updated_at`,
		k.NamaKaryawan, k.Jabatan, k.NIP, k.NoHP, k.Alamat,
	).Scan(&k.IDKaryawan, &k.StatusAktif, &k.CreatedAt, &k.UpdatedAt)
}

func (r *KaryawanRepository) Get(ctx context.Context, id int) (*models.Karyawan, error) {
	return scanKaryawan(r.DB.QueryRow(ctx,
		`SELECT `+karyawanColumns+` FROM karyawan WHERE id_karyawan=$1`, id))
}

func (r *KaryawanRepository) GetByNIP(ctx context.Context, nip string) (*models.Karyawan, error) {
	return scanKaryawan(r.DB.QueryRow(ctx,
		`SELECT `+karyawanColumns+` FROM karyawan WHERE nip=$1`, nip))
}

func (r *KaryawanRepository) List(ctx context.Context, f models.KaryawanFilter) ([]*models.Karyawan, int, error) {
	where := `WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if f.Search != "" {
		where += fmt.Sprintf(` AND nama_karyawan ILIKE $%d`, idx)
		args = append(args, "%"+f.Search+"%")
		idx++
	}
	if f.Jabatan != "" {
		where += fmt.Sprintf(` AND jabatan = $%d`, idx)
		args = append(args, f.Jabatan)
		idx++
	}
	if f.StatusAktif != nil {
		where += fmt.Sprintf(` AND status_aktif = $%d`, idx)
		args = append(args, *f.StatusAktif)
		idx++
	}

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM karyawan `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+karyawanColumns+` FROM karyawan %s ORDER BY nama_karyawan ASC LIMIT $%d OFFSET $%d`,
		where, idx, idx+1)
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var karyawan []*models.Karyawan
	for rows.Next() {
		k, err := scanKaryawan(rows)
		if err != nil {
			return nil, 0, err
		}
		karyawan = append(karyawan, k)
	}
	return karyawan, total, rows.Err()
}

func (r *KaryawanRepository) Update(ctx context.Context, id int, p models.KaryawanPatch) (int, error) {
	set := []string{}
	args := []interface{}{}
	idx := 1

	if p.NamaKaryawan != nil {
		set = append(set, fmt.Sprintf("nama_karyawan=$%d", idx))
		args = append(args, *p.NamaKaryawan)
		idx++
	}
	if p.Jabatan != nil {
		set = append(set, fmt.Sprintf("jabatan=$%d", idx))
		args = append(args, *p.Jabatan)
		idx++
	}
	if p.NIP != nil {
		set = append(set, fmt.Sprintf("nip=$%d", idx))
		args = append(args, *p.NIP)
		idx++
	}
	if p.NoHP != nil {
		set = append(set, fmt.Sprintf("no_hp=$%d", idx))
		args = append(args, *p.NoHP)
		idx++
	}
	if p.Alamat != nil {
		set = append(set, fmt.Sprintf("alamat=$%d", idx))
		args = append(args, *p.Alamat)
		idx++
	}
	if p.StatusAktif != nil {
		set = append(set, fmt.Sprintf("status_aktif=$%d", idx))
		args = append(args, *p.StatusAktif)
		idx++
	}

	set = append(set, "updated_at=CURRENT_TIMESTAMP")
	query := fmt.Sprintf(`UPDATE karyawan SET %s WHERE id_karyawan=$%d`, strings.Join(set, ", "), idx)
	args = append(args, id)

	tag, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// Deactivate soft-deletes an employee; the row stays for historical
// references.
func (r *KaryawanRepository) Deactivate(ctx context.Context, id int) (int, error) {
	tag, err := r.DB.Exec(ctx,
		`UPDATE karyawan SET status_aktif=FALSE, updated_at=CURRENT_TIMESTAMP
         WHERE id_karyawan=$1 AND status_aktif=TRUE`, id)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
