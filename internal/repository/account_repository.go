package repository

import (
	"context"
	"database/sql"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/cardbank/transaction-service/internal/apperr"
	"github.com/cardbank/transaction-service/internal/models"
	"github.com/cardbank/transaction-service/internal/redis"
)

const accountKeyPrefix = "account:"

// AccountRepository stores accounts in PostgreSQL and keeps a Redis cache of
// them for the frequent lookups done on every transaction creation.
type AccountRepository struct {
	db    *sql.DB
	cache *redis.ViewCache[models.Account]
}

func NewAccountRepository(db *sql.DB, redisClient *goredis.Client) *AccountRepository {
	return &AccountRepository{
		db:    db,
		cache: redis.NewViewCache[models.Account](redisClient, 0),
	}
}

func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, document_number, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, account.ID, account.DocumentNumber, account.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	r.cache.Set(ctx, accountKeyPrefix+account.ID, account)
	return nil
}

// GetByID resolves an account, trying the Redis cache before PostgreSQL.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	if account, ok := r.cache.Get(ctx, accountKeyPrefix+id); ok {
		return account, nil
	}

	query := `
		SELECT id, document_number, created_at
		FROM accounts
		WHERE id = $1
	`
	var account models.Account
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.DocumentNumber, &account.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFoundf("account not found with id %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	r.cache.Set(ctx, accountKeyPrefix+id, &account)
	return &account, nil
}
