package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"apotek-backend/internal/models"
)

// Integration tests below run against a real database when TEST_DATABASE_URL
// is set, e.g. postgres://postgres@localhost:5432/apotek_test. They are
// skipped otherwise.

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	// The migration file is idempotent (IF NOT EXISTS / ON CONFLICT), so it
	// is safe to apply on every run.
	schema, err := os.ReadFile("../../migrations/001_init.sql")
	require.NoError(t, err)
	_, err = pool.Exec(context.Background(), string(schema))
	require.NoError(t, err)

	return pool
}

func createTestUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()

	suffix := time.Now().UnixNano()
	u := &models.User{
		Username: fmt.Sprintf("tester-%d", suffix),
		Email:    fmt.Sprintf("tester-%d@apotek.test", suffix),
		Password: "not-a-real-hash",
		Role:     "admin",
	}
	require.NoError(t, NewUserRepository(pool).Create(context.Background(), u))
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM users WHERE id=$1`, u.ID)
	})
	return u
}

func createTestBarang(t *testing.T, pool *pgxpool.Pool) *models.Barang {
	t.Helper()

	b := &models.Barang{
		NamaBarang:  fmt.Sprintf("Paracetamol %d", time.Now().UnixNano()),
		Satuan:      "tablet",
		Jenis:       "obat",
		StokMinimal: 10,
	}
	require.NoError(t, NewBarangRepository(pool).Create(context.Background(), b))
	t.Cleanup(func() {
		pool.Exec(context.Background(), `DELETE FROM barang WHERE id_barang=$1`, b.IDBarang)
	})
	return b
}
