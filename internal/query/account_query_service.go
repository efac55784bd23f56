package query

import (
	"context"

	"github.com/cardbank/transaction-service/internal/models"
	"github.com/cardbank/transaction-service/internal/repository"
)

// AccountQueryService serves account reads.
type AccountQueryService struct {
	accountRepo *repository.AccountRepository
}

func NewAccountQueryService(accountRepo *repository.AccountRepository) *AccountQueryService {
	return &AccountQueryService{accountRepo: accountRepo}
}

func (s *AccountQueryService) GetAccount(ctx context.Context, id string) (*models.AccountView, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.AccountView{
		ID:             account.ID,
		DocumentNumber: account.DocumentNumber,
		CreatedAt:      account.CreatedAt,
	}, nil
}
