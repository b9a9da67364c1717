package ledger

import "github.com/vadiminshakov/teller/internal/domain"

// Registry routes transactions to the owning client balance, creating the
// balance on first sight of a client. One Registry serves one batch;
// independent batches run on independent registries.
type Registry struct {
	balances map[domain.ClientID]*ClientBalance
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{balances: make(map[domain.ClientID]*ClientBalance)}
}

// HandleTransaction delegates tx to its client's balance.
func (r *Registry) HandleTransaction(tx domain.Transaction) error {
	balance, ok := r.balances[tx.Client]
	if !ok {
		balance = NewClientBalance(tx.Client)
		r.balances[tx.Client] = balance
	}
	return balance.HandleTransaction(tx)
}

// Snapshots returns one snapshot per known client, in no particular order.
func (r *Registry) Snapshots() []domain.BalanceSnapshot {
	snapshots := make([]domain.BalanceSnapshot, 0, len(r.balances))
	for _, balance := range r.balances {
		snapshots = append(snapshots, balance.Snapshot())
	}
	return snapshots
}
