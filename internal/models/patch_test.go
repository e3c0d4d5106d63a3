package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchIsEmpty(t *testing.T) {
	assert.True(t, (&UserPatch{}).IsEmpty())
	assert.True(t, BarangPatch{}.IsEmpty())
	assert.True(t, SupplierPatch{}.IsEmpty())
	assert.True(t, KaryawanPatch{}.IsEmpty())
	assert.True(t, TransaksiMasukPatch{}.IsEmpty())
	assert.True(t, TransaksiKeluarPatch{}.IsEmpty())
	assert.True(t, DetailMasukPatch{}.IsEmpty())
	assert.True(t, DetailKeluarPatch{}.IsEmpty())
}

func TestPatchNotEmptyWithSingleField(t *testing.T) {
	name := "PT Kimia Farma"
	assert.False(t, SupplierPatch{NamaSupplier: &name}.IsEmpty())

	active := false
	assert.False(t, (&UserPatch{IsActive: &active}).IsEmpty())

	jumlah := 3
	assert.False(t, DetailKeluarPatch{Jumlah: &jumlah}.IsEmpty())
}
