package models

import "time"

// TransaksiMasuk is an inbound stock transaction header. Detail rows are
// owned exclusively by their header and removed with it via cascade.
type TransaksiMasuk struct {
	IDTransaksiMasuk int                   `json:"id_transaksi_masuk"`
	TanggalMasuk     time.Time             `json:"tanggal_masuk"`
	IDSupplier       *int                  `json:"id_supplier,omitempty"`
	IDUser           int                   `json:"id_user"`
	Keterangan       *string               `json:"keterangan,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
	Details          []DetailTransaksiMasuk `json:"details,omitempty"`
}

// DetailTransaksiMasuk is a single inbound line item. TotalHarga is computed
// in SQL at read time (jumlah * harga_satuan) and never stored.
type DetailTransaksiMasuk struct {
	IDDetailMasuk     int        `json:"id_detail_masuk"`
	IDTransaksiMasuk  int        `json:"id_transaksi_masuk"`
	IDBarang          int        `json:"id_barang"`
	Jumlah            int        `json:"jumlah"`
	HargaSatuan       float64    `json:"harga_satuan"`
	TanggalKadaluarsa *time.Time `json:"tanggal_kadaluarsa,omitempty"`
	TotalHarga        float64    `json:"total_harga"`
}

// TransaksiKeluar is an outbound stock transaction header.
type TransaksiKeluar struct {
	IDTransaksiKeluar int                     `json:"id_transaksi_keluar"`
	TanggalKeluar     time.Time               `json:"tanggal_keluar"`
	Tujuan            string                  `json:"tujuan"`
	IDUser            int                     `json:"id_user"`
	Keterangan        *string                 `json:"keterangan,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
	Details           []DetailTransaksiKeluar `json:"details,omitempty"`
}

// DetailTransaksiKeluar carries item and quantity only. Outbound movement is
// not a sale in this model, so there is no price column.
type DetailTransaksiKeluar struct {
	IDDetailKeluar    int `json:"id_detail_keluar"`
	IDTransaksiKeluar int `json:"id_transaksi_keluar"`
	IDBarang          int `json:"id_barang"`
	Jumlah            int `json:"jumlah"`
}

// Create requests carry the full detail set; creation is all-or-nothing.

type CreateTransaksiMasukRequest struct {
	TanggalMasuk time.Time                   `json:"tanggal_masuk"`
	IDSupplier   *int                        `json:"id_supplier"`
	Keterangan   *string                     `json:"keterangan"`
	Details      []CreateDetailMasukRequest  `json:"details"`
}

type CreateDetailMasukRequest struct {
	IDBarang          int        `json:"id_barang"`
	Jumlah            int        `json:"jumlah"`
	HargaSatuan       float64    `json:"harga_satuan"`
	TanggalKadaluarsa *time.Time `json:"tanggal_kadaluarsa"`
}

type CreateTransaksiKeluarRequest struct {
	TanggalKeluar time.Time                   `json:"tanggal_keluar"`
	Tujuan        string                      `json:"tujuan"`
	Keterangan    *string                     `json:"keterangan"`
	Details       []CreateDetailKeluarRequest `json:"details"`
}

type CreateDetailKeluarRequest struct {
	IDBarang int `json:"id_barang"`
	Jumlah   int `json:"jumlah"`
}

// Header patches mutate scalar header fields only; details are never touched
// by a header update.

type TransaksiMasukPatch struct {
	TanggalMasuk *time.Time `json:"tanggal_masuk"`
	IDSupplier   *int       `json:"id_supplier"`
	Keterangan   *string    `json:"keterangan"`
}

func (p TransaksiMasukPatch) IsEmpty() bool {
	return p.TanggalMasuk == nil && p.IDSupplier == nil && p.Keterangan == nil
}

type TransaksiKeluarPatch struct {
	TanggalKeluar *time.Time `json:"tanggal_keluar"`
	Tujuan        *string    `json:"tujuan"`
	Keterangan    *string    `json:"keterangan"`
}

func (p TransaksiKeluarPatch) IsEmpty() bool {
	return p.TanggalKeluar == nil && p.Tujuan == nil && p.Keterangan == nil
}

type DetailMasukPatch struct {
	IDBarang          *int       `json:"id_barang"`
	Jumlah            *int       `json:"jumlah"`
	HargaSatuan       *float64   `json:"harga_satuan"`
	TanggalKadaluarsa *time.Time `json:"tanggal_kadaluarsa"`
}

func (p DetailMasukPatch) IsEmpty() bool {
	return p.IDBarang == nil && p.Jumlah == nil && p.HargaSatuan == nil &&
		p.TanggalKadaluarsa == nil
}

type DetailKeluarPatch struct {
	IDBarang *int `json:"id_barang"`
	Jumlah   *int `json:"jumlah"`
}

func (p DetailKeluarPatch) IsEmpty() bool {
	return p.IDBarang == nil && p.Jumlah == nil
}

// List filters. All conditions are ANDed together.

type TransaksiMasukFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	IDSupplier *int
	Page       int
	Limit      int
}

type TransaksiKeluarFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Tujuan    string
	Page      int
	Limit     int
}
