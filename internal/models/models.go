package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID             string    `json:"accountId"`
	DocumentNumber string    `json:"documentNumber"`
	CreatedAt      time.Time `json:"createdTimestamp"`
}

// Transaction is the write model for a single transaction event. Amount is
// signed: negative for purchases/withdrawals, positive for credits.
type Transaction struct {
	ID              string          `json:"transactionId"`
	AccountID       string          `json:"accountId"`
	OperationTypeID int             `json:"operationTypeId"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"createdTimestamp"`
}

type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "PENDING"
	InstallmentPaid    InstallmentStatus = "PAID"
)

// Installment is one scheduled obligation of an installment purchase.
// Numbers are 1-based and contiguous within a transaction. Amount is the
// positive magnitude owed.
type Installment struct {
	TransactionID     string            `json:"transactionId"`
	InstallmentNumber int               `json:"installmentNumber"`
	Amount            decimal.Decimal   `json:"amount"`
	Status            InstallmentStatus `json:"status"`
}
