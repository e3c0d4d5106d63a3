package repositories

import (
	"context"

	"apotek-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PermissionRepository struct {
	DB *pgxpool.Pool
}

func NewPermissionRepository(db *pgxpool.Pool) *PermissionRepository {
	return &PermissionRepository{DB: db}
}

// List returns every seeded permission.
func (r *PermissionRepository) List(ctx context.Context) ([]models.Permission, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, description FROM permissions ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perms := []models.Permission{}
	for rows.Next() {
		var p models.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}

// ByRole returns the permissions assigned to one role.
func (r *PermissionRepository) ByRole(ctx context.Context, role string) ([]models.Permission, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT p.id, p.name, p.description
         FROM permissions p
         JOIN role_permissions rp ON rp.permission_id = p.id
         WHERE rp.role = $1
         ORDER BY p.name ASC`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perms := []models.Permission{}
	for rows.Next() {
		var p models.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}
