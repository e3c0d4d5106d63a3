package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apotek-backend/internal/models"
)

func newTestToken(userID int, expiresAt time.Time) *models.RefreshToken {
	return &models.RefreshToken{
		UserID:    userID,
		Token:     fmt.Sprintf("tok-%d-%d", userID, time.Now().UnixNano()),
		ExpiresAt: expiresAt,
	}
}

func TestRefreshTokenGetValid(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewRefreshTokenRepository(pool)

	user := createTestUser(t, pool)

	tok := newTestToken(user.ID, time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, tok))

	got, err := repo.GetValid(ctx, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, tok.Token, got.Token)
}

func TestRefreshTokenGetValidRejectsExpired(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewRefreshTokenRepository(pool)

	user := createTestUser(t, pool)

	tok := newTestToken(user.ID, time.Now().Add(-time.Minute))
	require.NoError(t, repo.Create(ctx, tok))

	_, err := repo.GetValid(ctx, tok.Token)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestRefreshTokenGetValidRejectsRevoked(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewRefreshTokenRepository(pool)

	user := createTestUser(t, pool)

	tok := newTestToken(user.ID, time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, tok))
	require.NoError(t, repo.Revoke(ctx, tok.Token))

	_, err := repo.GetValid(ctx, tok.Token)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestRefreshTokenGetValidRejectsInactiveUser(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewRefreshTokenRepository(pool)

	user := createTestUser(t, pool)

	tok := newTestToken(user.ID, time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, tok))

	require.NoError(t, NewUserRepository(pool).SetActiveStatus(ctx, user.ID, false))

	_, err := repo.GetValid(ctx, tok.Token)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
