package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cardbank/transaction-service/internal/apperr"
	"github.com/cardbank/transaction-service/internal/models"
)

// TransactionWriteRepository handles all state-mutating operations for
// transactions against the PostgreSQL write store (source of truth). Methods
// take a Queryer so callers can thread a unit of work through them.
type TransactionWriteRepository struct{}

func NewTransactionWriteRepository() *TransactionWriteRepository {
	return &TransactionWriteRepository{}
}

func (r *TransactionWriteRepository) Create(ctx context.Context, q Queryer, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, account_id, operation_type_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := q.ExecContext(ctx, query,
		transaction.ID, transaction.AccountID, transaction.OperationTypeID,
		transaction.Amount, transaction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *TransactionWriteRepository) FindByID(ctx context.Context, q Queryer, id string) (*models.Transaction, error) {
	query := `
		SELECT id, account_id, operation_type_id, amount, created_at
		FROM transactions
		WHERE id = $1
	`
	var transaction models.Transaction
	err := q.QueryRowContext(ctx, query, id).Scan(
		&transaction.ID, &transaction.AccountID, &transaction.OperationTypeID,
		&transaction.Amount, &transaction.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("transaction not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}
