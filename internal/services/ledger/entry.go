package ledger

import "github.com/vadiminshakov/teller/internal/domain"

// entryState is the dispute lifecycle position of a ledger entry.
type entryState int

const (
	stateResolved entryState = iota
	stateDisputed
	stateChargeback
)

// entryKind is the funds direction a ledger entry was created with.
type entryKind int

const (
	entryDeposit entryKind = iota
	entryWithdrawal
)

// ledgerEntry is the dispute lifecycle record of one accepted deposit or
// withdrawal. It is created once per transaction ID and never replaced;
// only its state moves.
type ledgerEntry struct {
	kind   entryKind
	amount domain.Amount
	state  entryState
}

// reversalAmount is the signed amount a dispute step moves between
// available and held: +amount for a deposit, -amount for a withdrawal,
// since the withdrawal already debited available when it was accepted.
func (e *ledgerEntry) reversalAmount() domain.Amount {
	if e.kind == entryWithdrawal {
		return e.amount.Neg()
	}
	return e.amount
}

// transitionClass classifies a requested entry state change.
type transitionClass int

const (
	transitionValid transitionClass = iota
	transitionNone
	transitionInvalid
)

// classifyTransition applies the dispute lifecycle rules: an entry under
// dispute may be resolved or charged back, a resolved entry may only be
// disputed (never charged back directly), and a chargeback is terminal.
func classifyTransition(from, to entryState) transitionClass {
	switch from {
	case stateDisputed:
		if to == stateDisputed {
			return transitionNone
		}
		return transitionValid
	case stateResolved:
		switch to {
		case stateDisputed:
			return transitionValid
		case stateResolved:
			return transitionNone
		default:
			return transitionInvalid
		}
	default:
		return transitionInvalid
	}
}
