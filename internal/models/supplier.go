package models

import "time"

// Supplier is a vendor that inbound stock is purchased from.
type Supplier struct {
	IDSupplier   int       `json:"id_supplier"`
	NamaSupplier string    `json:"nama_supplier"`
	Alamat       *string   `json:"alamat,omitempty"`
	Kontak       *string   `json:"kontak,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateSupplierRequest struct {
	NamaSupplier string  `json:"nama_supplier"`
	Alamat       *string `json:"alamat"`
	Kontak       *string `json:"kontak"`
}

type SupplierPatch struct {
	NamaSupplier *string `json:"nama_supplier"`
	Alamat       *string `json:"alamat"`
	Kontak       *string `json:"kontak"`
}

func (p SupplierPatch) IsEmpty() bool {
	return p.NamaSupplier == nil && p.Alamat == nil && p.Kontak == nil
}

type SupplierFilter struct {
	Search string
	Page   int
	Limit  int
}
