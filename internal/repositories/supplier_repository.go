package repositories

import (
	"context"
	"fmt"
	"strings"

	"apotek-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SupplierRepository struct {
	DB *pgxpool.Pool
}

func NewSupplierRepository(db *pgxpool.Pool) *SupplierRepository {
	return &SupplierRepository{DB: db}
}

const supplierColumns = `id_supplier, nama_supplier, alamat, kontak, created_at, updated_at`

func scanSupplier(row interface{ Scan(...interface{}) error }) (*models.Supplier, error) {
	var s models.Supplier
	err := row.Scan(&s.IDSupplier, &s.NamaSupplier, &s.Alamat, &s.Kontak, &s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func (r *SupplierRepository) Create(ctx context.Context, s *models.Supplier) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO supplier(nama_supplier, alamat, kontak)
         VALUES($1, $2, $3)
         RETURNING id_supplier, created_at, updated_at`,
		s.NamaSupplier, s.Alamat, s.Kontak,
	).Scan(&s.IDSupplier, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SupplierRepository) Get(ctx context.Context, id int) (*models.Supplier, error) {
	return scanSupplier(r.DB.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM supplier WHERE id_supplier=$1`, id))
}

func (r *SupplierRepository) GetByName(ctx context.Context, name string) (*models.Supplier, error) {
	return scanSupplier(r.DB.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM supplier WHERE nama_supplier=$1`, name))
}

func (r *SupplierRepository) List(ctx context.Context, f models.SupplierFilter) ([]*models.Supplier, int, error) {
	where := `WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if f.Search != "" {
		where += fmt.Sprintf(` AND nama_supplier ILIKE $%d`, idx)
		args = append(args, "%"+f.Search+"%")
		idx++
	}

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM supplier `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+supplierColumns+` FROM supplier %s ORDER BY nama_supplier ASC LIMIT $%d OFFSET $%d`,
		where, idx, idx+1)
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var suppliers []*models.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, 0, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, total, rows.Err()
}

func (r *SupplierRepository) Update(ctx context.Context, id int, p models.SupplierPatch) (int, error) {
	set := []string{}
	args := []interface{}{}
	idx := 1

	if p.NamaSupplier != nil {
		set = append(set, fmt.Sprintf("nama_supplier=$%d", idx))
		args = append(args, *p.NamaSupplier)
		idx++
	}
	if p.Alamat != nil {
		set = append(set, fmt.Sprintf("alamat=$%d", idx))
		args = append(args, *p.Alamat)
		idx++
	}
	if p.Kontak != nil {
		set = append(set, fmt.Sprintf("kontak=$%d", idx))
		args = append(args, *p.Kontak)
		idx++
	}

	set = append(set, "updated_at=CURRENT_TIMESTAMP")
	query := fmt.Sprintf(`UPDATE supplier SET %s WHERE id_supplier=$%d`, strings.Join(set, ", "), idx)
	args = append(args, id)

	tag, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// Delete removes the row permanently. Suppliers are hard-deleted; inbound
// headers keep a NULL supplier via ON DELETE SET NULL.
func (r *SupplierRepository) Delete(ctx context.Context, id int) (int, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM supplier WHERE id_supplier=$1`, id)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
