package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPendingTransaction(t *testing.T) {
	tx := NewPendingTransaction(TransactionKindOwnAccount, 1, 2, decimal.NewFromFloat(100.0))

	assert.Empty(t, tx.ID)
	assert.Equal(t, TransactionStatusPending, tx.Status)
	assert.Equal(t, int64(1), tx.AccountID)
	assert.Equal(t, int64(2), tx.RelatedAccountID)
	assert.True(t, tx.Amount.Equal(decimal.NewFromFloat(100.0)))
	assert.False(t, tx.CreatedAt.IsZero())
}

func TestFinalizeCompletes(t *testing.T) {
	tx := NewPendingTransaction(TransactionKindOwnAccount, 1, 2, decimal.NewFromFloat(10))

	require.NoError(t, tx.Finalize(true))
	assert.Equal(t, TransactionStatusCompleted, tx.Status)
}

func TestFinalizeFails(t *testing.T) {
	tx := NewPendingTransaction(TransactionKindThirdPartyAccount, 1, 2, decimal.NewFromFloat(10))

	require.NoError(t, tx.Finalize(false))
	assert.Equal(t, TransactionStatusFailed, tx.Status)
}

func TestFinalizeIsTerminal(t *testing.T) {
	tx := NewPendingTransaction(TransactionKindOwnAccount, 1, 2, decimal.NewFromFloat(10))
	require.NoError(t, tx.Finalize(true))

	err := tx.Finalize(false)
	require.Error(t, err)
	assert.Equal(t, TransactionStatusCompleted, tx.Status)

	err = tx.Finalize(true)
	require.Error(t, err)
	assert.Equal(t, TransactionStatusCompleted, tx.Status)
}

func TestTransferFailedErrorMessage(t *testing.T) {
	err := &TransferFailedError{Code: "INSUFFICIENT_FUNDS", Message: "balance too low"}
	assert.Equal(t, "INSUFFICIENT_FUNDS - balance too low", err.Error())
}
