package models

import "time"

// Karyawan is an employee record. Employees are soft-deleted (status_aktif
// flips to false) so historical references stay valid.
type Karyawan struct {
	IDKaryawan   int       `json:"id_karyawan"`
	NamaKaryawan string    `json:"nama_karyawan"`
	Jabatan      string    `json:"jabatan"`
	NIP          *string   `json:"nip,omitempty"`
	NoHP         *string   `json:"no_hp,omitempty"`
	Alamat       *string   `json:"alamat,omitempty"`
	StatusAktif  bool      `json:"status_aktif"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateKaryawanRequest struct {
	NamaKaryawan string  `json:"nama_karyawan"`
	Jabatan      string  `json:"jabatan"`
	NIP          *string `json:"nip"`
	NoHP         *string `json:"no_hp"`
	Alamat       *string `json:"alamat"`
}

type KaryawanPatch struct {
	NamaKaryawan *string `json:"nama_karyawan"`
	Jabatan      *string `json:"jabatan"`
	NIP          *string `json:"nip"`
	NoHP         *string `json:"no_hp"`
	Alamat       *string `json:"alamat"`
	StatusAktif  *bool   `json:"status_aktif"`
}

func (p KaryawanPatch) IsEmpty() bool {
	return p.NamaKaryawan == nil && p.Jabatan == nil && p.NIP == nil &&
		p.NoHP == nil && p.Alamat == nil && p.StatusAktif == nil
}

type KaryawanFilter struct {
	Search      string
	Jabatan     string
	StatusAktif *bool
	Page        int
	Limit       int
}
