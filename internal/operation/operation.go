// Package operation defines the fixed registry of transaction operation
// types and their sign policy. The table is built once at init and never
// mutated at runtime.
package operation

import (
	"github.com/shopspring/decimal"

	"github.com/cardbank/transaction-service/internal/apperr"
)

// Type classifies a transaction event. The integer value is the stable
// identifier used at the API boundary.
type Type int

const (
	NormalPurchase       Type = 1
	Withdrawal           Type = 2
	PurchaseInstallments Type = 3
	CreditVoucher        Type = 4
	InstallmentPayment   Type = 5
)

var names = map[Type]string{
	NormalPurchase:       "NORMAL_PURCHASE",
	Withdrawal:           "WITHDRAWAL",
	PurchaseInstallments: "PURCHASE_INSTALLMENTS",
	CreditVoucher:        "CREDIT_VOUCHER",
	InstallmentPayment:   "INSTALLMENT_PAYMENT",
}

// FromID resolves an operation type from its boundary identifier.
func FromID(id int) (Type, error) {
	t := Type(id)
	if _, ok := names[t]; !ok {
		return 0, apperr.Invalidf("invalid operation type id: %d", id)
	}
	return t, nil
}

func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// ID returns the stable boundary identifier.
func (t Type) ID() int {
	return int(t)
}

// IsDebit reports whether transactions of this type are stored with a
// negative amount.
func (t Type) IsDebit() bool {
	switch t {
	case NormalPurchase, Withdrawal, PurchaseInstallments:
		return true
	default:
		return false
	}
}

// Apply converts a submitted positive magnitude into the stored signed
// amount: negated for debits, unchanged for credits. The caller never
// supplies the sign.
func (t Type) Apply(amount decimal.Decimal) decimal.Decimal {
	if t.IsDebit() {
		return amount.Neg()
	}
	return amount
}
