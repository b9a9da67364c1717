package domain

import "fmt"

// TransactionKind is the closed set of record types the engine understands.
type TransactionKind int

const (
	KindDeposit TransactionKind = iota
	KindWithdrawal
	KindDispute
	KindResolve
	KindChargeback
)

// kind string constants to avoid magic strings
const (
	kindStringDeposit    = "deposit"
	kindStringWithdrawal = "withdrawal"
	kindStringDispute    = "dispute"
	kindStringResolve    = "resolve"
	kindStringChargeback = "chargeback"
)

// ParseTransactionKind maps a record type string to its kind. The match is
// exact; anything outside the five known strings is an error.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch s {
	case kindStringDeposit:
		return KindDeposit, nil
	case kindStringWithdrawal:
		return KindWithdrawal, nil
	case kindStringDispute:
		return KindDispute, nil
	case kindStringResolve:
		return KindResolve, nil
	case kindStringChargeback:
		return KindChargeback, nil
	}
	return 0, fmt.Errorf("unknown transaction type %q", s)
}

// String returns the string representation of the kind.
func (k TransactionKind) String() string {
	switch k {
	case KindDeposit:
		return kindStringDeposit
	case KindWithdrawal:
		return kindStringWithdrawal
	case KindDispute:
		return kindStringDispute
	case KindResolve:
		return kindStringResolve
	case KindChargeback:
		return kindStringChargeback
	default:
		return "unknown"
	}
}

// HasAmount reports whether records of this kind carry an amount.
func (k TransactionKind) HasAmount() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// Transaction is one input record after decoding. Amount is meaningful only
// when Kind.HasAmount(); dispute lifecycle records reference the ID of an
// earlier deposit or withdrawal instead.
type Transaction struct {
	Kind   TransactionKind
	Client ClientID
	ID     TransactionID
	Amount Amount
}
