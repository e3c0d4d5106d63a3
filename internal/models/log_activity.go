package models

import "time"

// LogActivity is an append-only audit record. IDUser is nullable because
// system and unauthenticated actions may still log.
type LogActivity struct {
	IDLog      int       `json:"id_log"`
	IDUser     *int      `json:"id_user,omitempty"`
	Username   *string   `json:"username,omitempty"`
	Waktu      time.Time `json:"waktu"`
	Aksi       string    `json:"aksi"`
	Deskripsi  *string   `json:"deskripsi,omitempty"`
	IPAddress  *string   `json:"ip_address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateLogRequest is the write shape. Waktu defaults to now when zero.
type CreateLogRequest struct {
	IDUser    *int      `json:"id_user"`
	Waktu     time.Time `json:"waktu"`
	Aksi      string    `json:"aksi"`
	Deskripsi *string   `json:"deskripsi"`
	IPAddress *string   `json:"ip_address"`
}

type LogFilter struct {
	IDUser    *int
	Aksi      string
	StartDate *time.Time
	EndDate   *time.Time
	IPAddress string
	Page      int
	Limit     int
}

// LogStatistic is one grouped row of the statistics query.
type LogStatistic struct {
	Aksi  string `json:"aksi"`
	Count int    `json:"count"`
}
