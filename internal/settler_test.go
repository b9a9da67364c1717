package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/teller/config"
	"go.uber.org/zap"
)

func TestSettlerRunsBatchToCompletion(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "transactions.csv")
	output := filepath.Join(dir, "snapshots.csv")

	records := `type, client, tx, amount
deposit, 1, 1, 100.0
deposit, 2, 2, 50.5
withdrawal, 1, 3, 30
withdrawal, 1, 4, 1000
bogus, 1, 5, 1
dispute, 2, 2,
chargeback, 2, 2,
deposit, 2, 6, 10
`
	require.NoError(t, os.WriteFile(input, []byte(records), 0644))

	settler, err := NewSettler(config.Config{Input: input, Output: output})
	require.NoError(t, err)
	require.NoError(t, settler.Run(context.Background(), zap.NewNop()))

	got, err := os.ReadFile(output)
	require.NoError(t, err)

	// client 1: 100 in, 30 out, the 1000 withdrawal is ignored;
	// client 2: 50.5 charged back, account locked, the last deposit ignored
	expected := "client,available,held,total,locked\n" +
		"1,70,0,70,false\n" +
		"2,0,0,0,true\n"
	require.Equal(t, expected, string(got))
}

func TestSettlerWithdrawalDisputeKeepsNegativeHeld(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "transactions.csv")
	output := filepath.Join(dir, "snapshots.csv")

	records := `type,client,tx,amount
deposit,1,1,100
withdrawal,1,2,60
dispute,1,2,
`
	require.NoError(t, os.WriteFile(input, []byte(records), 0644))

	settler, err := NewSettler(config.Config{Input: input, Output: output})
	require.NoError(t, err)
	require.NoError(t, settler.Run(context.Background(), zap.NewNop()))

	got, err := os.ReadFile(output)
	require.NoError(t, err)

	expected := "client,available,held,total,locked\n" +
		"1,100,-60,40,false\n"
	require.Equal(t, expected, string(got))
}

func TestNewSettlerRequiresInput(t *testing.T) {
	_, err := NewSettler(config.Config{})
	require.Error(t, err)
}

func TestSettlerMissingInputFile(t *testing.T) {
	settler, err := NewSettler(config.Config{Input: filepath.Join(t.TempDir(), "missing.csv")})
	require.NoError(t, err)
	require.Error(t, settler.Run(context.Background(), zap.NewNop()))
}

func TestSettlerStopsOnCancelledContext(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "transactions.csv")
	require.NoError(t, os.WriteFile(input, []byte("type,client,tx,amount\ndeposit,1,1,5\n"), 0644))

	settler, err := NewSettler(config.Config{Input: input, Output: filepath.Join(dir, "out.csv")})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, settler.Run(ctx, zap.NewNop()), context.Canceled)
}
