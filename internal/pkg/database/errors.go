package database

import (
	"errors"

	"github.com/jackc/pgconn"
)

// Postgres error codes used for classification
const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is a unique-constraint
// violation from the postgres driver.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
