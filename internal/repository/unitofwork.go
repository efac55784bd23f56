package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Queryer is the subset of database/sql used by the write repositories.
// Both *sql.DB and *sql.Tx satisfy it, so the same repository call can run
// standalone or inside a unit of work.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// UnitOfWork groups repository reads and writes into a single database
// transaction. Either everything inside Run commits together or nothing does.
type UnitOfWork struct {
	db *sql.DB
}

func NewUnitOfWork(db *sql.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Run executes fn within one database transaction. The transaction is rolled
// back when fn returns an error or panics, committed otherwise.
func (u *UnitOfWork) Run(ctx context.Context, fn func(q Queryer) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit unit of work: %w", err)
	}
	return nil
}
