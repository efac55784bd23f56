package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types
const (
	AccountCreated = "account.created"

	TransactionCreated = "transaction.created"
	InstallmentPaid    = "installment.paid"
)

// Stream names
const (
	AccountEventsStream     = "account.events"
	TransactionEventsStream = "transaction.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type AccountCreatedEvent struct {
	AccountID      string `json:"accountId"`
	DocumentNumber string `json:"documentNumber"`
}

type TransactionCreatedEvent struct {
	TransactionID   string          `json:"transactionId"`
	AccountID       string          `json:"accountId"`
	OperationTypeID int             `json:"operationTypeId"`
	Amount          decimal.Decimal `json:"amount"`
	Installments    int             `json:"installments,omitempty"`
}

type InstallmentPaidEvent struct {
	TransactionID        string          `json:"transactionId"`
	InstallmentNumber    int             `json:"installmentNumber"`
	PaymentTransactionID string          `json:"paymentTransactionId"`
	Amount               decimal.Decimal `json:"amount"`
}
