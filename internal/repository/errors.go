package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes, https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrCheckViolation            = "23514"
	PgErrStringDataRightTruncation = "22001"
)

// PgErrorCode returns the SQLSTATE carried by err, or "" when err did not come
// from Postgres.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
