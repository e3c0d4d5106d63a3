package repositories

import (
	"context"
	"fmt"

	"apotek-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, username, email, password, role, is_active, id_karyawan, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Password,
		&user.Role, &user.IsActive, &user.IDKaryawan, &user.CreatedAt, &user.UpdatedAt)
	return &user, err
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if u.Role == "" {
		u.Role = "user" // Default role
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO users(username, email, password, role, is_active, id_karyawan)
         VALUES($1, $2, $3, $4, TRUE, $5)
         RETURNING id, is_active, created_at, updated_at`,
		u.Username, u.Email, u.Password, u.Role, u.IDKaryawan,
	).Scan(&u.ID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) Get(ctx context.Context, id int) (*models.User, error) {
	return scanUser(r.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, id))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return scanUser(r.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username=$1`, username))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`, email))
}

// List returns one page of users plus the unpaged total. Search matches
// username or email as a case-insensitive substring.
func (r *UserRepository) List(ctx context.Context, f models.UserFilter) ([]*models.User, int, error) {
	where := `WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if f.Search != "" {
		where += fmt.Sprintf(` AND (username ILIKE $%d OR email ILIKE $%d)`, idx, idx)
		args = append(args, "%"+f.Search+"%")
		idx++
	}
	if f.Role != "" {
		where += fmt.Sprintf(` AND role = $%d`, idx)
		args = append(args, f.Role)
		idx++
	}
	if !f.IncludeInactive {
		where += ` AND is_active = TRUE`
	}

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+userColumns+` FROM users %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, idx, idx+1)
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	return users, total, rows.Err()
}

// Update mutates profile fields only; password changes go through
// UpdatePassword.
func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE users SET username=$1, email=$2, role=$3, id_karyawan=$4, updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		u.Username, u.Email, u.Role, u.IDKaryawan, u.ID)
	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, hashed string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE users SET password=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		hashed, userID)
	return err
}

// SetActiveStatus flips the soft-delete flag; user rows are never removed.
func (r *UserRepository) SetActiveStatus(ctx context.Context, userID int, isActive bool) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE users SET is_active=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		isActive, userID)
	return err
}
