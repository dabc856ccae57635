package repository

import (
	"context"
	"errors"
	"net"
	"strings"

	"item-api/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE 57014: statement cancelled by statement_timeout or a client cancel.
const pgQueryCanceled = "57014"

// storageError wraps err as a *model.StorageError, classifying the backend failure.
func storageError(op string, err error) error {
	var existing *model.StorageError
	if errors.As(err, &existing) {
		return err
	}
	return &model.StorageError{Op: op, Kind: classify(err), Err: err}
}

func classify(err error) model.StorageErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return model.StorageErrorTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			return model.StorageErrorConstraint
		case strings.HasPrefix(pgErr.Code, "08"):
			return model.StorageErrorConnection
		case pgErr.Code == pgQueryCanceled:
			return model.StorageErrorTimeout
		}
		return model.StorageErrorUnknown
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return model.StorageErrorTimeout
		}
		return model.StorageErrorConnection
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return model.StorageErrorConnection
	}

	if pgconn.SafeToRetry(err) {
		return model.StorageErrorConnection
	}

	return model.StorageErrorUnknown
}
