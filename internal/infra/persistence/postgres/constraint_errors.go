package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint checks prefer GORM's translated errors and fall back to the driver message,
// which covers both PostgreSQL SQLSTATE codes and SQLite's "constraint failed" wording.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return errorMessageContains(err, "23505", "duplicate key", "unique constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return errorMessageContains(err, "23503", "foreign key constraint")
}

func isNotNullConstraintViolation(err error) bool {
	return errorMessageContains(err, "23502", "null value", "not null constraint failed")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return errorMessageContains(err, "23514", "check constraint")
}

func errorMessageContains(err error, fragments ...string) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, fragment := range fragments {
		if strings.Contains(msg, fragment) {
			return true
		}
	}

	return false
}
