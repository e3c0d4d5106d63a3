package models

import "time"

// Barang is a trackable stock item. There is no on-hand quantity column;
// current stock is derivable from transaction details.
type Barang struct {
	IDBarang    int       `json:"id_barang"`
	NamaBarang  string    `json:"nama_barang"`
	Satuan      string    `json:"satuan"`
	Jenis       string    `json:"jenis"`
	StokMinimal int       `json:"stok_minimal"`
	Lokasi      *string   `json:"lokasi,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Allowed enum values for Barang fields.
var (
	BarangSatuanValues = []string{"pcs", "botol", "tablet"}
	BarangJenisValues  = []string{"obat", "alkes", "habis_pakai"}
)

type CreateBarangRequest struct {
	NamaBarang  string  `json:"nama_barang"`
	Satuan      string  `json:"satuan"`
	Jenis       string  `json:"jenis"`
	StokMinimal int     `json:"stok_minimal"`
	Lokasi      *string `json:"lokasi"`
}

// BarangPatch carries a partial update. Nil fields are left untouched.
type BarangPatch struct {
	NamaBarang  *string `json:"nama_barang"`
	Satuan      *string `json:"satuan"`
	Jenis       *string `json:"jenis"`
	StokMinimal *int    `json:"stok_minimal"`
	Lokasi      *string `json:"lokasi"`
}

func (p BarangPatch) IsEmpty() bool {
	return p.NamaBarang == nil && p.Satuan == nil && p.Jenis == nil &&
		p.StokMinimal == nil && p.Lokasi == nil
}

// BarangFilter narrows list queries.
type BarangFilter struct {
	Search string
	Jenis  string
	Satuan string
	Page   int
	Limit  int
}
