package domain

// BalanceSnapshot is the settled state of one client account after a batch.
type BalanceSnapshot struct {
	Client    ClientID
	Available Amount
	Held      Amount
	Total     Amount
	Locked    bool
}
