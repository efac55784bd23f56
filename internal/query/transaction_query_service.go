package query

import (
	"context"

	"github.com/cardbank/transaction-service/internal/models"
	"github.com/cardbank/transaction-service/internal/repository"
)

// TransactionQueryService serves transaction reads from the Redis read model
// with a PostgreSQL fallback.
type TransactionQueryService struct {
	readRepo *repository.TransactionReadRepository
}

func NewTransactionQueryService(readRepo *repository.TransactionReadRepository) *TransactionQueryService {
	return &TransactionQueryService{readRepo: readRepo}
}

func (s *TransactionQueryService) GetTransaction(ctx context.Context, id string) (*models.TransactionView, error) {
	return s.readRepo.GetByID(ctx, id)
}

// ListInstallments returns the installment schedule of an installment
// purchase, in number order. The transaction is resolved first so an unknown
// ID reports not-found instead of an empty schedule.
func (s *TransactionQueryService) ListInstallments(ctx context.Context, transactionID string) ([]models.InstallmentView, error) {
	if _, err := s.readRepo.GetByID(ctx, transactionID); err != nil {
		return nil, err
	}
	return s.readRepo.ListInstallments(ctx, transactionID)
}
