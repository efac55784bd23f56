package repository

import (
	"context"
	"database/sql"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/cardbank/transaction-service/internal/apperr"
	"github.com/cardbank/transaction-service/internal/models"
	"github.com/cardbank/transaction-service/internal/operation"
	"github.com/cardbank/transaction-service/internal/redis"
)

const transactionViewKeyPrefix = "transaction:view:"

// TransactionReadRepository handles all read operations for transactions.
// It uses Redis as the primary read store, falling back to PostgreSQL on a
// miss.
type TransactionReadRepository struct {
	db    *sql.DB
	cache *redis.ViewCache[models.TransactionView]
}

func NewTransactionReadRepository(db *sql.DB, redisClient *goredis.Client) *TransactionReadRepository {
	return &TransactionReadRepository{
		db:    db,
		cache: redis.NewViewCache[models.TransactionView](redisClient, 0),
	}
}

// GetByID returns a TransactionView by attempting Redis first, then
// PostgreSQL.
func (r *TransactionReadRepository) GetByID(ctx context.Context, id string) (*models.TransactionView, error) {
	cacheKey := transactionViewKeyPrefix + id
	if view, ok := r.cache.Get(ctx, cacheKey); ok {
		return view, nil
	}

	query := `
		SELECT id, account_id, operation_type_id, amount, created_at
		FROM transactions
		WHERE id = $1
	`
	var view models.TransactionView
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&view.ID, &view.AccountID, &view.OperationTypeID,
		&view.Amount, &view.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("transaction not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	view.OperationType = operation.Type(view.OperationTypeID).String()

	// Warm the cache
	r.CacheTransactionView(ctx, &view)
	return &view, nil
}

// ListInstallments returns the installment schedule of a transaction in
// number order.
func (r *TransactionReadRepository) ListInstallments(ctx context.Context, transactionID string) ([]models.InstallmentView, error) {
	query := `
		SELECT installment_number, amount, status
		FROM installments
		WHERE transaction_id = $1
		ORDER BY installment_number
	`
	rows, err := r.db.QueryContext(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}
	defer rows.Close()

	var views []models.InstallmentView
	for rows.Next() {
		var view models.InstallmentView
		if err := rows.Scan(&view.InstallmentNumber, &view.Amount, &view.Status); err != nil {
			return nil, fmt.Errorf("failed to scan installment: %w", err)
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

// CacheTransactionView stores the read model for a transaction in Redis.
// Called by the command service immediately after a successful create.
func (r *TransactionReadRepository) CacheTransactionView(ctx context.Context, view *models.TransactionView) {
	r.cache.Set(ctx, transactionViewKeyPrefix+view.ID, view)
}
