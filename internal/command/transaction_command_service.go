package command

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/cardbank/transaction-service/internal/apperr"
	"github.com/cardbank/transaction-service/internal/events"
	"github.com/cardbank/transaction-service/internal/models"
	"github.com/cardbank/transaction-service/internal/operation"
	"github.com/cardbank/transaction-service/internal/repository"
	"github.com/cardbank/transaction-service/internal/utils"
)

// CreateTransactionCommand carries the caller's input for a new transaction.
// Amount is the positive magnitude; the sign is applied by the operation
// type, never by the caller. Installments is only read for
// PURCHASE_INSTALLMENTS operations.
type CreateTransactionCommand struct {
	AccountID       string
	OperationTypeID int
	Amount          decimal.Decimal
	Installments    []decimal.Decimal
}

// CreateTransactionResult is the only data echoed back after a create.
type CreateTransactionResult struct {
	TransactionID string
	Message       string
}

// PayInstallmentCommand settles one installment of a purchase.
type PayInstallmentCommand struct {
	TransactionID     string
	InstallmentNumber int
	AccountID         string
	Amount            decimal.Decimal
}

// AccountLookup resolves accounts by identifier.
type AccountLookup interface {
	GetByID(ctx context.Context, id string) (*models.Account, error)
}

// TransactionStore is the durable store of transactions.
type TransactionStore interface {
	Create(ctx context.Context, q repository.Queryer, transaction *models.Transaction) error
	FindByID(ctx context.Context, q repository.Queryer, id string) (*models.Transaction, error)
}

// InstallmentStore is the durable store of installments, keyed by
// (transaction, installment number).
type InstallmentStore interface {
	Create(ctx context.Context, q repository.Queryer, installment *models.Installment) error
	FindByTransactionAndNumber(ctx context.Context, q repository.Queryer, transactionID string, number int) (*models.Installment, error)
	MarkPaid(ctx context.Context, q repository.Queryer, transactionID string, number int) error
}

// UnitRunner executes a function as one atomic unit of work.
type UnitRunner interface {
	Run(ctx context.Context, fn func(q repository.Queryer) error) error
}

// EventPublisher emits domain events after a unit of work commits.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// TransactionViewCacher warms the read model after a successful write.
type TransactionViewCacher interface {
	CacheTransactionView(ctx context.Context, view *models.TransactionView)
}

// TransactionCommandService creates transactions, explodes installment
// purchases into their schedule, and settles installment payments. All
// writes of one request run inside a single unit of work.
type TransactionCommandService struct {
	uow          UnitRunner
	transactions TransactionStore
	installments InstallmentStore
	accounts     AccountLookup
	viewCache    TransactionViewCacher
	publisher    EventPublisher
}

func NewTransactionCommandService(
	uow UnitRunner,
	transactions TransactionStore,
	installments InstallmentStore,
	accounts AccountLookup,
	viewCache TransactionViewCacher,
	publisher EventPublisher,
) *TransactionCommandService {
	return &TransactionCommandService{
		uow:          uow,
		transactions: transactions,
		installments: installments,
		accounts:     accounts,
		viewCache:    viewCache,
		publisher:    publisher,
	}
}

// CreateTransaction validates and persists a new transaction. For
// PURCHASE_INSTALLMENTS the submitted installment amounts become PENDING
// installments numbered 1..N in submission order, created atomically with
// the parent transaction.
func (s *TransactionCommandService) CreateTransaction(ctx context.Context, cmd CreateTransactionCommand) (*CreateTransactionResult, error) {
	if cmd.Amount.Sign() <= 0 {
		return nil, apperr.Invalid("transaction amount must be greater than zero")
	}

	opType, err := operation.FromID(cmd.OperationTypeID)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByID(ctx, cmd.AccountID)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		ID:              utils.GenerateID("txn"),
		AccountID:       account.ID,
		OperationTypeID: opType.ID(),
		Amount:          opType.Apply(cmd.Amount),
		CreatedAt:       time.Now().UTC(),
	}

	err = s.uow.Run(ctx, func(q repository.Queryer) error {
		if err := s.transactions.Create(ctx, q, transaction); err != nil {
			return err
		}
		if opType != operation.PurchaseInstallments {
			return nil
		}
		for i, amount := range cmd.Installments {
			installment := &models.Installment{
				TransactionID:     transaction.ID,
				InstallmentNumber: i + 1,
				Amount:            amount,
				Status:            models.InstallmentPending,
			}
			if err := s.installments.Create(ctx, q, installment); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("created transaction",
		"transactionId", transaction.ID,
		"operationType", opType.String(),
		"installments", len(cmd.Installments),
	)

	s.viewCache.CacheTransactionView(ctx, txToView(transaction))
	if err := s.publisher.Publish(ctx, events.TransactionEventsStream, events.TransactionCreated, events.TransactionCreatedEvent{
		TransactionID:   transaction.ID,
		AccountID:       transaction.AccountID,
		OperationTypeID: transaction.OperationTypeID,
		Amount:          transaction.Amount,
		Installments:    len(cmd.Installments),
	}); err != nil {
		log.Warn("failed to publish transaction.created event", "err", err)
	}

	return &CreateTransactionResult{
		TransactionID: transaction.ID,
		Message:       "Transaction created successfully",
	}, nil
}

// PayInstallment settles one installment: the payment amount must equal the
// installment's stored amount exactly. The payment transaction and the
// PENDING -> PAID transition commit together or not at all.
func (s *TransactionCommandService) PayInstallment(ctx context.Context, cmd PayInstallmentCommand) error {
	var payment *models.Transaction
	var installment *models.Installment

	err := s.uow.Run(ctx, func(q repository.Queryer) error {
		transaction, err := s.transactions.FindByID(ctx, q, cmd.TransactionID)
		if err != nil {
			return err
		}

		installment, err = s.installments.FindByTransactionAndNumber(ctx, q, transaction.ID, cmd.InstallmentNumber)
		if err != nil {
			return err
		}

		if !installment.Amount.Equal(cmd.Amount) {
			return apperr.Invalid("paid amount does not match the installment amount")
		}

		account, err := s.accounts.GetByID(ctx, cmd.AccountID)
		if err != nil {
			return err
		}

		payment = &models.Transaction{
			ID:              utils.GenerateID("txn"),
			AccountID:       account.ID,
			OperationTypeID: operation.InstallmentPayment.ID(),
			Amount:          operation.InstallmentPayment.Apply(cmd.Amount),
			CreatedAt:       time.Now().UTC(),
		}
		if err := s.transactions.Create(ctx, q, payment); err != nil {
			return err
		}
		return s.installments.MarkPaid(ctx, q, transaction.ID, installment.InstallmentNumber)
	})
	if err != nil {
		return err
	}

	log.Info("paid installment",
		"transactionId", cmd.TransactionID,
		"installmentNumber", cmd.InstallmentNumber,
		"paymentTransactionId", payment.ID,
	)

	s.viewCache.CacheTransactionView(ctx, txToView(payment))
	if err := s.publisher.Publish(ctx, events.TransactionEventsStream, events.InstallmentPaid, events.InstallmentPaidEvent{
		TransactionID:        cmd.TransactionID,
		InstallmentNumber:    installment.InstallmentNumber,
		PaymentTransactionID: payment.ID,
		Amount:               payment.Amount,
	}); err != nil {
		log.Warn("failed to publish installment.paid event", "err", err)
	}

	return nil
}

// txToView converts the write model to a read view model.
func txToView(t *models.Transaction) *models.TransactionView {
	return &models.TransactionView{
		ID:              t.ID,
		AccountID:       t.AccountID,
		OperationTypeID: t.OperationTypeID,
		OperationType:   operation.Type(t.OperationTypeID).String(),
		Amount:          t.Amount,
		CreatedAt:       t.CreatedAt,
	}
}
