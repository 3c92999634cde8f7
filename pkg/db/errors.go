package db

import "strings"

// IsUniqueViolation reports whether the provided error references a unique
// constraint failure. Covers the postgres and sqlite message shapes so the
// register path can catch a duplicate-email race behind the upfront check.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
