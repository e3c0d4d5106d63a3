package services

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"apotek-backend/internal/apperr"
)

func TestConflictOnUniqueMapsDuplicateKey(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "supplier_nama_supplier_key"}

	err := conflictOnUnique(dup, "supplier with this name already exists")
	assert.Equal(t, http.StatusConflict, apperr.Status(err))
	assert.Contains(t, err.Error(), "already exists")

	// Wrapped errors are still recognized
	err = conflictOnUnique(fmt.Errorf("insert supplier: %w", dup), "supplier with this name already exists")
	assert.Equal(t, http.StatusConflict, apperr.Status(err))
}

func TestConflictOnUniquePassesOtherErrorsThrough(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, fk, conflictOnUnique(fk, "unused"))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, conflictOnUnique(plain, "unused"))
	assert.Equal(t, http.StatusInternalServerError, apperr.Status(conflictOnUnique(plain, "unused")))
}
