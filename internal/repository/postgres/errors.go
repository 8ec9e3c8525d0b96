package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/clinicware/dental-admin/internal/repository"
)

const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

// readErr maps read failures onto the repository sentinels.
func readErr(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, repository.ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// writeErr maps insert/update failures. A foreign-key violation here means
// the input referenced a missing row, not a blocked delete.
func writeErr(err error, what string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: %w", what, repository.ErrForeignKey)
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w", what, repository.ErrDuplicate)
		}
	}
	return fmt.Errorf("failed to write %s: %w", what, err)
}

// deleteErr maps delete failures; a foreign-key violation is a restrict rule.
func deleteErr(err error, what string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return fmt.Errorf("%s: %w", what, repository.ErrRestricted)
	}
	return fmt.Errorf("failed to delete %s: %w", what, err)
}
