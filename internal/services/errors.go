package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"apotek-backend/internal/apperr"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// conflictOnUnique converts a unique-constraint violation into a Conflict
// error. Services check uniqueness before writing, but two concurrent writers
// can both pass the check; the constraint is the real arbiter and its
// violation must read as 409, not 500.
func conflictOnUnique(err error, format string, args ...interface{}) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Conflict(format, args...)
	}
	return err
}
