package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"catalogodeleite/internal/domain"
)

// SQLSTATE codes the storage layer translates.
const (
	UniqueViolation = "23505"
)

// ClassifyError translates driver faults into domain fault classes.
// A unique violation is wrapped with domain.ErrDuplicateKey, keeping the
// original error in the chain. Any other error is returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == UniqueViolation {
		return fmt.Errorf("%w (constraint %s): %w", domain.ErrDuplicateKey, pgErr.ConstraintName, err)
	}
	return err
}
