// file: internals/helpers/pg.go
package helper

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsUniqueViolation detects a Postgres unique violation (code "23505")
// without importing pgx/pgconn, so it stays portable across drivers.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

// IsNotFound reports gorm's record-not-found.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
