package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cardbank/transaction-service/internal/apperr"
	"github.com/cardbank/transaction-service/internal/models"
)

// InstallmentWriteRepository handles installment rows, keyed by
// (transaction_id, installment_number). Methods take a Queryer so the batch
// created with a purchase and the settlement of a payment both run inside the
// caller's unit of work.
type InstallmentWriteRepository struct{}

func NewInstallmentWriteRepository() *InstallmentWriteRepository {
	return &InstallmentWriteRepository{}
}

func (r *InstallmentWriteRepository) Create(ctx context.Context, q Queryer, installment *models.Installment) error {
	query := `
		INSERT INTO installments (transaction_id, installment_number, amount, status)
		VALUES ($1, $2, $3, $4)
	`
	_, err := q.ExecContext(ctx, query,
		installment.TransactionID, installment.InstallmentNumber,
		installment.Amount, string(installment.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to create installment: %w", err)
	}
	return nil
}

// FindByTransactionAndNumber fetches one installment. The lookup does not
// filter by status.
func (r *InstallmentWriteRepository) FindByTransactionAndNumber(ctx context.Context, q Queryer, transactionID string, number int) (*models.Installment, error) {
	query := `
		SELECT transaction_id, installment_number, amount, status
		FROM installments
		WHERE transaction_id = $1 AND installment_number = $2
	`
	var installment models.Installment
	err := q.QueryRowContext(ctx, query, transactionID, number).Scan(
		&installment.TransactionID, &installment.InstallmentNumber,
		&installment.Amount, &installment.Status,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("installment not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get installment: %w", err)
	}
	return &installment, nil
}

// MarkPaid transitions an installment to PAID.
func (r *InstallmentWriteRepository) MarkPaid(ctx context.Context, q Queryer, transactionID string, number int) error {
	query := `
		UPDATE installments
		SET status = $3
		WHERE transaction_id = $1 AND installment_number = $2
	`
	if _, err := q.ExecContext(ctx, query, transactionID, number, string(models.InstallmentPaid)); err != nil {
		return fmt.Errorf("failed to mark installment paid: %w", err)
	}
	return nil
}
