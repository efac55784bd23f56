package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountView is the read-optimised projection of an account.
type AccountView struct {
	ID             string    `json:"accountId"`
	DocumentNumber string    `json:"documentNumber"`
	CreatedAt      time.Time `json:"createdTimestamp"`
}

// TransactionView is the read-optimised projection of a transaction.
// OperationType carries the registry name alongside the boundary id.
type TransactionView struct {
	ID              string          `json:"transactionId"`
	AccountID       string          `json:"accountId"`
	OperationTypeID int             `json:"operationTypeId"`
	OperationType   string          `json:"operationType"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"createdTimestamp"`
}

// InstallmentView is the read-optimised projection of an installment.
type InstallmentView struct {
	InstallmentNumber int             `json:"installmentNumber"`
	Amount            decimal.Decimal `json:"amount"`
	Status            string          `json:"status"`
}
