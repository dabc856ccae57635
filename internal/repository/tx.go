package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

var (
	readWrite = pgx.TxOptions{AccessMode: pgx.ReadWrite}
	readOnly  = pgx.TxOptions{AccessMode: pgx.ReadOnly}
)

// withTx acquires a connection from the pool, runs fn inside a transaction and
// releases the connection again. The transaction is committed when fn returns
// nil and rolled back on error or panic.
func withTx(ctx context.Context, pool *pgxpool.Pool, opts pgx.TxOptions, logger zerolog.Logger, fn func(tx pgx.Tx) error) (err error) {
	tx, err := pool.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(tx, logger)
			panic(p)
		}
		if err != nil {
			rollback(tx, logger)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// rollback uses a fresh context so that a cancelled request still releases its transaction.
func rollback(tx pgx.Tx, logger zerolog.Logger) {
	if err := tx.Rollback(context.Background()); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.Error().Err(err).Msg("failed to rollback transaction")
	}
}
