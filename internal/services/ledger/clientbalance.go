// Package ledger implements the per-client balance state machine and the
// registry that routes transactions to it.
package ledger

import (
	"github.com/pkg/errors"
	"github.com/vadiminshakov/teller/internal/domain"
)

// ClientBalance owns one client's funds and the dispute lifecycle of every
// accepted deposit and withdrawal. All mutation goes through
// HandleTransaction; nothing outside this type sees the entries map.
type ClientBalance struct {
	client    domain.ClientID
	available domain.Amount
	held      domain.Amount
	total     domain.Amount
	locked    bool
	entries   map[domain.TransactionID]*ledgerEntry
}

// NewClientBalance creates an empty, unlocked balance for client.
func NewClientBalance(client domain.ClientID) *ClientBalance {
	return &ClientBalance{
		client:  client,
		entries: make(map[domain.TransactionID]*ledgerEntry),
	}
}

// HandleTransaction validates and applies one transaction. It returns nil
// when state changed, *IgnoredTransactionError when the transaction was
// dropped with state untouched, and *InvalidBalanceError when a mutation
// broke the total = available + held invariant.
func (b *ClientBalance) HandleTransaction(tx domain.Transaction) error {
	if b.locked {
		return ignored(tx.ID, ReasonLockedAccount)
	}

	var err error
	switch tx.Kind {
	case domain.KindDeposit:
		err = b.insertEntry(tx.ID, tx.Amount, entryDeposit)
	case domain.KindWithdrawal:
		err = b.insertEntry(tx.ID, tx.Amount, entryWithdrawal)
	case domain.KindDispute:
		err = b.transitionEntry(tx.ID, stateDisputed)
	case domain.KindResolve:
		err = b.transitionEntry(tx.ID, stateResolved)
	case domain.KindChargeback:
		err = b.transitionEntry(tx.ID, stateChargeback)
	default:
		err = errors.Errorf("unhandled transaction kind %d", tx.Kind)
	}
	if err != nil {
		return err
	}

	return b.validate(tx.ID)
}

// insertEntry applies a deposit or withdrawal. Checks run in a fixed order:
// negative amount, zero amount, duplicate ID, insufficient funds. A
// withdrawal of exactly the available amount passes.
func (b *ClientBalance) insertEntry(id domain.TransactionID, amount domain.Amount, kind entryKind) error {
	if amount.IsNegative() {
		return ignored(id, ReasonNegativeAmount)
	}
	if amount.IsZero() {
		return ignored(id, ReasonZeroAmount)
	}
	if _, ok := b.entries[id]; ok {
		return ignored(id, ReasonDuplicateTransactionID)
	}
	if kind == entryWithdrawal && b.available.LessThan(amount) {
		return ignored(id, ReasonInsufficientFunds)
	}

	b.entries[id] = &ledgerEntry{kind: kind, amount: amount, state: stateResolved}

	delta := amount
	if kind == entryWithdrawal {
		delta = amount.Neg()
	}
	b.available = b.available.Add(delta)
	b.total = b.total.Add(delta)

	return nil
}

// transitionEntry moves an existing entry through the dispute lifecycle and
// applies the matching funds movement.
func (b *ClientBalance) transitionEntry(id domain.TransactionID, target entryState) error {
	entry, ok := b.entries[id]
	if !ok {
		return ignored(id, ReasonMissingTransactionID)
	}

	switch classifyTransition(entry.state, target) {
	case transitionNone:
		return ignored(id, ReasonNoStateChange)
	case transitionInvalid:
		return ignored(id, ReasonInvalidStateTransition)
	}

	entry.state = target

	r := entry.reversalAmount()
	switch target {
	case stateDisputed:
		b.available = b.available.Sub(r)
		b.held = b.held.Add(r)
	case stateResolved:
		b.available = b.available.Add(r)
		b.held = b.held.Sub(r)
	case stateChargeback:
		b.locked = true
		b.total = b.total.Sub(r)
		b.held = b.held.Sub(r)
	}

	return nil
}

// validate recomputes each component of total = available + held from the
// other two and reports the first disagreement.
func (b *ClientBalance) validate(id domain.TransactionID) error {
	if !b.total.Sub(b.held).Equal(b.available) {
		return &InvalidBalanceError{TransactionID: id, Fault: FaultAvailableAmount}
	}
	if !b.total.Sub(b.available).Equal(b.held) {
		return &InvalidBalanceError{TransactionID: id, Fault: FaultHeldAmount}
	}
	if !b.available.Add(b.held).Equal(b.total) {
		return &InvalidBalanceError{TransactionID: id, Fault: FaultTotalAmount}
	}
	return nil
}

// Snapshot returns the externally visible state of the balance.
func (b *ClientBalance) Snapshot() domain.BalanceSnapshot {
	return domain.BalanceSnapshot{
		Client:    b.client,
		Available: b.available,
		Held:      b.held,
		Total:     b.total,
		Locked:    b.locked,
	}
}
