package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTransactionKind(t *testing.T) {
	valid := map[string]TransactionKind{
		"deposit":    KindDeposit,
		"withdrawal": KindWithdrawal,
		"dispute":    KindDispute,
		"resolve":    KindResolve,
		"chargeback": KindChargeback,
	}
	for in, expected := range valid {
		kind, err := ParseTransactionKind(in)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, expected, kind)
		require.Equal(t, in, kind.String())
	}

	for _, in := range []string{"", "Deposit", "transfer", "deposit ", "charge-back"} {
		_, err := ParseTransactionKind(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestTransactionKindHasAmount(t *testing.T) {
	require.True(t, KindDeposit.HasAmount())
	require.True(t, KindWithdrawal.HasAmount())
	require.False(t, KindDispute.HasAmount())
	require.False(t, KindResolve.HasAmount())
	require.False(t, KindChargeback.HasAmount())
}

func TestTransactionIDNext(t *testing.T) {
	id := TransactionID(41)
	require.Equal(t, TransactionID(42), id.Next())
}
