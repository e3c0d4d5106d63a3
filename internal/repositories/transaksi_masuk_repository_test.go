package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apotek-backend/internal/models"
)

func TestTransaksiMasukCreateIsAtomic(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewTransaksiMasukRepository(pool)

	user := createTestUser(t, pool)
	barang := createTestBarang(t, pool)

	// Second detail references a barang id that does not exist, so the FK
	// insert fails mid-transaction. The header written before it must be
	// rolled back with it.
	trx := &models.TransaksiMasuk{
		TanggalMasuk: time.Now(),
		IDUser:       user.ID,
		Details: []models.DetailTransaksiMasuk{
			{IDBarang: barang.IDBarang, Jumlah: 5, HargaSatuan: 1000},
			{IDBarang: -1, Jumlah: 3, HargaSatuan: 500},
		},
	}
	err := repo.Create(ctx, trx)
	require.Error(t, err)

	var headers int
	err = pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM transaksi_masuk WHERE id_user=$1`, user.ID).Scan(&headers)
	require.NoError(t, err)
	assert.Equal(t, 0, headers)
}

func TestTransaksiMasukDetailsOrderedByID(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewTransaksiMasukRepository(pool)

	user := createTestUser(t, pool)
	barang := createTestBarang(t, pool)

	trx := &models.TransaksiMasuk{
		TanggalMasuk: time.Now(),
		IDUser:       user.ID,
		Details: []models.DetailTransaksiMasuk{
			{IDBarang: barang.IDBarang, Jumlah: 1, HargaSatuan: 100},
			{IDBarang: barang.IDBarang, Jumlah: 2, HargaSatuan: 200},
			{IDBarang: barang.IDBarang, Jumlah: 3, HargaSatuan: 300},
		},
	}
	require.NoError(t, repo.Create(ctx, trx))
	t.Cleanup(func() {
		pool.Exec(ctx, `DELETE FROM transaksi_masuk WHERE id_transaksi_masuk=$1`, trx.IDTransaksiMasuk)
	})

	details, err := repo.GetDetails(ctx, trx.IDTransaksiMasuk)
	require.NoError(t, err)
	require.Len(t, details, 3)
	for i := 1; i < len(details); i++ {
		assert.Greater(t, details[i].IDDetailMasuk, details[i-1].IDDetailMasuk)
	}
	// Insertion order is preserved by the id ordering.
	assert.Equal(t, 1, details[0].Jumlah)
	assert.Equal(t, 2, details[1].Jumlah)
	assert.Equal(t, 3, details[2].Jumlah)
}

func TestTransaksiMasukDeleteCascadesDetails(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewTransaksiMasukRepository(pool)

	user := createTestUser(t, pool)
	barang := createTestBarang(t, pool)

	trx := &models.TransaksiMasuk{
		TanggalMasuk: time.Now(),
		IDUser:       user.ID,
		Details: []models.DetailTransaksiMasuk{
			{IDBarang: barang.IDBarang, Jumlah: 4, HargaSatuan: 250},
			{IDBarang: barang.IDBarang, Jumlah: 6, HargaSatuan: 125},
		},
	}
	require.NoError(t, repo.Create(ctx, trx))

	affected, err := repo.Delete(ctx, trx.IDTransaksiMasuk)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	var orphans int
	err = pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM detail_transaksi_masuk WHERE id_transaksi_masuk=$1`,
		trx.IDTransaksiMasuk).Scan(&orphans)
	require.NoError(t, err)
	assert.Equal(t, 0, orphans)
}
