package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abengl/BankingSystem-TransactionMs/src/internal/domain"
)

func TestTransferRequestValidate(t *testing.T) {
	valid := TransferRequest{
		TransactionType:      "OWN_ACCOUNT",
		SourceAccountID:      1,
		DestinationAccountID: 2,
		Amount:               decimal.NewFromFloat(100.0),
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(r *TransferRequest)
		detail string
	}{
		{"unknown kind", func(r *TransferRequest) { r.TransactionType = "WIRE" }, "transactionType"},
		{"empty kind", func(r *TransferRequest) { r.TransactionType = "" }, "transactionType"},
		{"zero source", func(r *TransferRequest) { r.SourceAccountID = 0 }, "sourceAccountId"},
		{"negative source", func(r *TransferRequest) { r.SourceAccountID = -1 }, "sourceAccountId"},
		{"zero destination", func(r *TransferRequest) { r.DestinationAccountID = 0 }, "destinationAccountId"},
		{"zero amount", func(r *TransferRequest) { r.Amount = decimal.Zero }, "amount"},
		{"negative amount", func(r *TransferRequest) { r.Amount = decimal.NewFromFloat(-0.01) }, "amount"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)

			err := req.Validate()
			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, err.Error(), tc.detail)
		})
	}
}

func TestParseTransactionKind(t *testing.T) {
	cases := []struct {
		input string
		want  domain.TransactionKind
		ok    bool
	}{
		{"OWN_ACCOUNT", domain.TransactionKindOwnAccount, true},
		{"THIRD_PARTY_ACCOUNT", domain.TransactionKindThirdPartyAccount, true},
		{"TRANSFER_OWN_ACCOUNT", domain.TransactionKindOwnAccount, true},
		{"TRANSFER_THIRD_PARTY_ACCOUNT", domain.TransactionKindThirdPartyAccount, true},
		{" own_account ", domain.TransactionKindOwnAccount, true},
		{"WIRE", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		kind, ok := ParseTransactionKind(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		assert.Equal(t, tc.want, kind, "input %q", tc.input)
	}
}

func TestDepositAndWithdrawValidate(t *testing.T) {
	require.NoError(t, DepositRequest{DestinationAccount: 1, Amount: decimal.NewFromFloat(5)}.Validate())
	require.Error(t, DepositRequest{DestinationAccount: 0, Amount: decimal.NewFromFloat(5)}.Validate())
	require.Error(t, DepositRequest{DestinationAccount: 1, Amount: decimal.Zero}.Validate())

	require.NoError(t, WithdrawRequest{OriginAccount: 1, Amount: decimal.NewFromFloat(5)}.Validate())
	require.Error(t, WithdrawRequest{OriginAccount: -3, Amount: decimal.NewFromFloat(5)}.Validate())
	require.Error(t, WithdrawRequest{OriginAccount: 1, Amount: decimal.NewFromFloat(-5)}.Validate())
}

func TestTransactionToResponse(t *testing.T) {
	tx := domain.Transaction{
		ID:               "id-1",
		Kind:             domain.TransactionKindOwnAccount,
		AccountID:        1,
		RelatedAccountID: 2,
		Amount:           decimal.NewFromFloat(100.0),
		Status:           domain.TransactionStatusCompleted,
	}

	response := TransactionToResponse(tx)
	assert.Equal(t, "id-1", response.TransactionID)
	assert.Equal(t, "OWN_ACCOUNT", response.TransactionType)
	assert.Equal(t, "COMPLETED", response.Status)
	assert.True(t, response.Amount.Equal(decimal.NewFromFloat(100.0)))
}
