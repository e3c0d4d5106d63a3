package repositories

import (
	"context"

	"apotek-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RefreshTokenRepository struct {
	DB *pgxpool.Pool
}

func NewRefreshTokenRepository(db *pgxpool.Pool) *RefreshTokenRepository {
	return &RefreshTokenRepository{DB: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, t *models.RefreshToken) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO refresh_tokens(user_id, token, expires_at)
         VALUES($1, $2, $3)
         RETURNING id, is_revoked, created_at, updated_at`,
		t.UserID, t.Token, t.ExpiresAt,
	).Scan(&t.ID, &t.IsRevoked, &t.CreatedAt, &t.UpdatedAt)
}

// GetValid returns the token row only if it is usable right now: not
// revoked, not expired, and its user still active. pgx.ErrNoRows otherwise.
func (r *RefreshTokenRepository) GetValid(ctx context.Context, token string) (*models.RefreshToken, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT rt.id, rt.user_id, rt.token, rt.expires_at, rt.is_revoked, rt.created_at, rt.updated_at
         FROM refresh_tokens rt
         JOIN users u ON u.id = rt.user_id
         WHERE rt.token = $1
           AND rt.is_revoked = FALSE
           AND rt.expires_at > NOW()
           AND u.is_active = TRUE`, token)

	var t models.RefreshToken
	err := row.Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.IsRevoked, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Revoke marks a single token revoked. Revoking an unknown token is a no-op.
func (r *RefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE refresh_tokens SET is_revoked=TRUE, updated_at=CURRENT_TIMESTAMP
         WHERE token=$1 AND is_revoked=FALSE`, token)
	return err
}

// RevokeAllForUser revokes every live token of a user (logout everywhere).
func (r *RefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE refresh_tokens SET is_revoked=TRUE, updated_at=CURRENT_TIMESTAMP
         WHERE user_id=$1 AND is_revoked=FALSE`, userID)
	return err
}

// DeleteExpired removes rows that can never be used again and returns the
// number deleted.
func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) (int, error) {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at < NOW() OR is_revoked = TRUE`)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
