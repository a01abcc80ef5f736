// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Transaction outcomes reported to a TxObserver
const (
	OutcomeCommit   = "commit"
	OutcomeRollback = "rollback"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// TxObserver is notified once per transaction with its final outcome.
type TxObserver interface {
	ObserveTx(op, outcome string)
}

type Store struct {
	db       *sql.DB
	timeout  time.Duration
	observer TxObserver
}

// New wraps the shared connection pool. Every operation is bounded by timeout.
// observer may be nil.
func New(db *sql.DB, timeout time.Duration, observer TxObserver) *Store {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Store{db: db, timeout: timeout, observer: observer}
}

func (s *Store) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Store) observe(op, outcome string) {
	if s.observer != nil {
		s.observer.ObserveTx(op, outcome)
	}
}

// withTx runs fn on a single pooled connection between BEGIN and COMMIT.
// Any error from fn rolls the transaction back before it is returned;
// ErrNotFound passes through unchanged, everything else becomes a PersistenceError.
func (s *Store) withTx(ctx context.Context, op string, fn func(ctx context.Context, tx *sql.Tx) error) error {
	ctx, cancel := s.bounded(ctx)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.observe(op, OutcomeError)
		return &PersistenceError{Op: op, Err: err}
	}
	defer tx.Rollback()

	if err := fn(ctx, tx); err != nil {
		tx.Rollback()
		if errors.Is(err, ErrNotFound) {
			s.observe(op, OutcomeNotFound)
			return err
		}
		s.observe(op, OutcomeRollback)
		return &PersistenceError{Op: op, Err: err}
	}

	if err := tx.Commit(); err != nil {
		s.observe(op, OutcomeError)
		return &PersistenceError{Op: op, Err: err}
	}

	s.observe(op, OutcomeCommit)
	return nil
}
