package operation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cardbank/transaction-service/internal/apperr"
)

func TestFromID(t *testing.T) {
	tests := []struct {
		id   int
		want Type
		name string
	}{
		{1, NormalPurchase, "NORMAL_PURCHASE"},
		{2, Withdrawal, "WITHDRAWAL"},
		{3, PurchaseInstallments, "PURCHASE_INSTALLMENTS"},
		{4, CreditVoucher, "CREDIT_VOUCHER"},
		{5, InstallmentPayment, "INSTALLMENT_PAYMENT"},
	}
	for _, tt := range tests {
		got, err := FromID(tt.id)
		if err != nil {
			t.Fatalf("FromID(%d): %v", tt.id, err)
		}
		if got != tt.want {
			t.Errorf("FromID(%d) = %v, want %v", tt.id, got, tt.want)
		}
		if got.String() != tt.name {
			t.Errorf("FromID(%d).String() = %q, want %q", tt.id, got.String(), tt.name)
		}
	}
}

func TestFromIDUnknown(t *testing.T) {
	for _, id := range []int{0, -1, 6, 42} {
		if _, err := FromID(id); !apperr.IsInvalid(err) {
			t.Errorf("FromID(%d): expected invalid-request error, got %v", id, err)
		}
	}
}

func TestIsDebit(t *testing.T) {
	debits := map[Type]bool{
		NormalPurchase:       true,
		Withdrawal:           true,
		PurchaseInstallments: true,
		CreditVoucher:        false,
		InstallmentPayment:   false,
	}
	for typ, want := range debits {
		if got := typ.IsDebit(); got != want {
			t.Errorf("%v.IsDebit() = %v, want %v", typ, got, want)
		}
	}
}

func TestApply(t *testing.T) {
	amount := decimal.NewFromInt(100)
	tests := []struct {
		typ  Type
		want int64
	}{
		{NormalPurchase, -100},
		{Withdrawal, -100},
		{PurchaseInstallments, -100},
		{CreditVoucher, 100},
		{InstallmentPayment, 100},
	}
	for _, tt := range tests {
		got := tt.typ.Apply(amount)
		if !got.Equal(decimal.NewFromInt(tt.want)) {
			t.Errorf("%v.Apply(100) = %s, want %d", tt.typ, got, tt.want)
		}
	}
}
