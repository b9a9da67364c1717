package ledger

import (
	"fmt"

	"github.com/vadiminshakov/teller/internal/domain"
)

// IgnoreReason says why a transaction was dropped without touching state.
type IgnoreReason string

const (
	ReasonLockedAccount          IgnoreReason = "locked_account"
	ReasonNegativeAmount         IgnoreReason = "negative_amount"
	ReasonZeroAmount             IgnoreReason = "zero_amount"
	ReasonDuplicateTransactionID IgnoreReason = "duplicate_transaction_id"
	ReasonInsufficientFunds      IgnoreReason = "insufficient_available_funds"
	ReasonMissingTransactionID   IgnoreReason = "missing_transaction_id"
	ReasonNoStateChange          IgnoreReason = "no_transaction_state_change"
	ReasonInvalidStateTransition IgnoreReason = "invalid_transaction_state_transition"
)

// IgnoredTransactionError reports a transaction the account refused. The
// balance is unchanged and the batch goes on; callers drop the record.
type IgnoredTransactionError struct {
	TransactionID domain.TransactionID
	Reason        IgnoreReason
}

func (e *IgnoredTransactionError) Error() string {
	return fmt.Sprintf("transaction %d ignored: %s", e.TransactionID, e.Reason)
}

// BalanceFault names the recomputation that disagreed with stored state.
type BalanceFault string

const (
	FaultAvailableAmount BalanceFault = "invalid_available_amount"
	FaultHeldAmount      BalanceFault = "invalid_held_amount"
	FaultTotalAmount     BalanceFault = "invalid_total_amount"
)

// InvalidBalanceError reports a broken balance invariant after a mutation.
// It signals a defect in the engine, not bad input.
type InvalidBalanceError struct {
	TransactionID domain.TransactionID
	Fault         BalanceFault
}

func (e *InvalidBalanceError) Error() string {
	return fmt.Sprintf("client balance invalid after transaction %d: %s", e.TransactionID, e.Fault)
}

func ignored(id domain.TransactionID, reason IgnoreReason) error {
	return &IgnoredTransactionError{TransactionID: id, Reason: reason}
}
