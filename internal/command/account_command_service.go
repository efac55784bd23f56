package command

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cardbank/transaction-service/internal/events"
	"github.com/cardbank/transaction-service/internal/models"
	"github.com/cardbank/transaction-service/internal/utils"
)

// AccountStore persists accounts.
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
}

// AccountCommandService creates accounts.
type AccountCommandService struct {
	accounts  AccountStore
	publisher EventPublisher
}

func NewAccountCommandService(accounts AccountStore, publisher EventPublisher) *AccountCommandService {
	return &AccountCommandService{accounts: accounts, publisher: publisher}
}

func (s *AccountCommandService) CreateAccount(ctx context.Context, documentNumber string) (*models.Account, error) {
	account := &models.Account{
		ID:             utils.GenerateID("act"),
		DocumentNumber: documentNumber,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	log.Info("created account", "accountId", account.ID)

	if err := s.publisher.Publish(ctx, events.AccountEventsStream, events.AccountCreated, events.AccountCreatedEvent{
		AccountID:      account.ID,
		DocumentNumber: account.DocumentNumber,
	}); err != nil {
		log.Warn("failed to publish account.created event", "err", err)
	}
	return account, nil
}
