// Package e defines the sentinel errors shared across storage, service
// and transport layers, plus helpers that map driver errors onto them.
package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain sentinels. Handlers translate these into HTTP status codes, so
// everything below the transport layer wraps one of them.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidRadius      = errors.New("invalid radius")
	ErrQueueEmpty         = errors.New("notification queue is empty")
)

// Infrastructure sentinels produced by WrapError.
var (
	ErrInternal        = errors.New("internal error")
	ErrDeadline        = errors.New("deadline exceeded")
	ErrCanceled        = errors.New("context canceled")
	ErrUniqueViolation = errors.New("unique violation")
)

// Wrap annotates err with the operation name.
func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

// WrapError folds pgx and context failures into the sentinels above so
// callers can errors.Is without importing driver packages.
func WrapError(ctx context.Context, op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		case "23503", "23514":
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		}
		return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
	}

	return fmt.Errorf("%s: %w", op, ErrInternal)
}
