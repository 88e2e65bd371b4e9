package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// MapError translates a pgx error for entity id into a domain error.
// Context cancellation is left as is. Aborted transactions map to a state
// conflict and keep the driver error in the chain so TxManager can retry them.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	subject := fmt.Sprintf("%s %s", entity, id)

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", subject, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", subject, err)
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%s: %w", subject, domain.ErrAlreadyExists)
	case codeForeignKeyViolation:
		// A dangling reference means the parent record is gone.
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	case codeCheckViolation:
		return fmt.Errorf("%s: %w", subject, domain.NewValidationError(pgErr.ConstraintName, "violates check constraint"))
	case codeSerializationFailure, codeDeadlockDetected:
		return fmt.Errorf("%s: %w: %w", subject, domain.NewStateConflict("write", ""), err)
	}
	return fmt.Errorf("%s: %w", subject, err)
}

// IsRetryable reports whether err aborted a transaction that can be replayed.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}
