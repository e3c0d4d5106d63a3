package repositories

import (
	"context"
	"fmt"
	"time"

	"apotek-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LogActivityRepository struct {
	DB *pgxpool.Pool
}

func NewLogActivityRepository(db *pgxpool.Pool) *LogActivityRepository {
	return &LogActivityRepository{DB: db}
}

// Create appends one audit record. Waktu defaults to now when zero.
func (r *LogActivityRepository) Create(ctx context.Context, req *models.CreateLogRequest) (*models.LogActivity, error) {
	waktu := req.Waktu
	if waktu.IsZero() {
		waktu = time.Now()
	}

	var l models.LogActivity
	err := r.DB.QueryRow(ctx,
		`INSERT INTO log_activity(id_user, waktu, aksi, deskripsi, ip_address)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id_log, id_user, waktu, aksi, deskripsi, ip_address, created_at`,
		req.IDUser, waktu, req.Aksi, req.Deskripsi, req.IPAddress,
	).Scan(&l.IDLog, &l.IDUser, &l.Waktu, &l.Aksi, &l.Deskripsi, &l.IPAddress, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

const logSelect = `SELECT l.id_log, l.id_user, u.username, l.waktu, l.aksi, l.deskripsi, l.ip_address, l.created_at
         FROM log_activity l
         LEFT JOIN users u ON u.id = l.id_user`

func (r *LogActivityRepository) scanLogs(rows interface {
	Next() bool
	Scan(...interface{}) error
	Err() error
	Close()
}) ([]*models.LogActivity, error) {
	defer rows.Close()

	var logs []*models.LogActivity
	for rows.Next() {
		var l models.LogActivity
		err := rows.Scan(&l.IDLog, &l.IDUser, &l.Username, &l.Waktu,
			&l.Aksi, &l.Deskripsi, &l.IPAddress, &l.CreatedAt)
		if err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}

// Get fetches one record by id, with the username joined in.
func (r *LogActivityRepository) Get(ctx context.Context, id int) (*models.LogActivity, error) {
	var l models.LogActivity
	err := r.DB.QueryRow(ctx, logSelect+` WHERE l.id_log = $1`, id).
		Scan(&l.IDLog, &l.IDUser, &l.Username, &l.Waktu,
			&l.Aksi, &l.Deskripsi, &l.IPAddress, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns one page of records, newest first, plus the unpaged total.
func (r *LogActivityRepository) List(ctx context.Context, f models.LogFilter) ([]*models.LogActivity, int, error) {
	where := `WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if f.IDUser != nil {
		where += fmt.Sprintf(` AND l.id_user = $%d`, idx)
		args = append(args, *f.IDUser)
		idx++
	}
	if f.Aksi != "" {
		where += fmt.Sprintf(` AND l.aksi = $%d`, idx)
		args = append(args, f.Aksi)
		idx++
	}
	if f.StartDate != nil {
		where += fmt.Sprintf(` AND l.waktu >= $%d`, idx)
		args = append(args, *f.StartDate)
		idx++
	}
	if f.EndDate != nil {
		where += fmt.Sprintf(` AND l.waktu <= $%d`, idx)
		args = append(args, *f.EndDate)
		idx++
	}
	if f.IPAddress != "" {
		where += fmt.Sprintf(` AND l.ip_address = $%d`, idx)
		args = append(args, f.IPAddress)
		idx++
	}

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM log_activity l `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`%s %s ORDER BY l.waktu DESC LIMIT $%d OFFSET $%d`,
		logSelect, where, idx, idx+1)
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	logs, err := r.scanLogs(rows)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// Search matches a term as a case-insensitive substring of aksi or
// deskripsi.
func (r *LogActivityRepository) Search(ctx context.Context, term string, page, limit int) ([]*models.LogActivity, int, error) {
	pattern := "%" + term + "%"

	var total int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM log_activity l WHERE l.aksi ILIKE $1 OR l.deskripsi ILIKE $1`,
		pattern).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx,
		logSelect+` WHERE l.aksi ILIKE $1 OR l.deskripsi ILIKE $1
         ORDER BY l.waktu DESC LIMIT $2 OFFSET $3`,
		pattern, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	logs, err := r.scanLogs(rows)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *LogActivityRepository) ByUser(ctx context.Context, userID, page, limit int) ([]*models.LogActivity, int, error) {
	var total int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM log_activity l WHERE l.id_user = $1`, userID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx,
		logSelect+` WHERE l.id_user = $1
         ORDER BY l.waktu DESC LIMIT $2 OFFSET $3`,
		userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	logs, err := r.scanLogs(rows)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// Statistics returns counts grouped by aksi, optionally within a date range.
func (r *LogActivityRepository) Statistics(ctx context.Context, startDate, endDate *time.Time) ([]models.LogStatistic, error) {
	where := `WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if startDate != nil {
		where += fmt.Sprintf(` AND waktu >= $%d`, idx)
		args = append(args, *startDate)
		idx++
	}
	if endDate != nil {
		where += fmt.Sprintf(` AND waktu <= $%d`, idx)
		args = append(args, *endDate)
		idx++
	}

	query := fmt.Sprintf(
		`SELECT aksi, COUNT(*) FROM log_activity %s GROUP BY aksi ORDER BY COUNT(*) DESC`, where)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.LogStatistic{}
	for rows.Next() {
		var s models.LogStatistic
		if err := rows.Scan(&s.Aksi, &s.Count); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// PurgeOlderThan deletes records older than the given number of days and
// returns the count removed. This is the only delete path; records are never
// updated or removed individually.
func (r *LogActivityRepository) PurgeOlderThan(ctx context.Context, days int) (int, error) {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM log_activity WHERE waktu < NOW() - ($1 || ' days')::interval`, days)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
