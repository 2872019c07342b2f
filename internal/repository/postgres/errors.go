package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// rejection reports whether err is the store refusing a statement, as
// opposed to a connection or context failure, and returns its reason.
func rejection(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Message, true
	}
	if errors.Is(err, sql.ErrNoRows) {
		return "record no longer exists", true
	}
	return "", false
}

func isIntegrityViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Class().Name() == "integrity_constraint_violation"
}
