package domain

// ClientID identifies one client account. The wire format caps it at the
// uint16 range; the decoder enforces that at the boundary.
type ClientID uint16

// TransactionID identifies one transaction. IDs are globally unique across
// a whole input stream, never reused for another client.
type TransactionID uint32

// Next returns the successor ID. Sequence generators in tests use it.
func (id TransactionID) Next() TransactionID {
	return id + 1
}
