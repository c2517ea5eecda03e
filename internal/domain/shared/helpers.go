package shared

import (
	"strings"
)

// IsUniqueConstraintError reconhece violações de índice único no Postgres e no SQLite.
func IsUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "23505") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "unique constraint") ||
		strings.Contains(errStr, "idx_users_email")
}
