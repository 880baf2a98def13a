package service_interfaces

import (
	"context"

	"github.com/abengl/BankingSystem-TransactionMs/src/internal/adapter/http/models"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/commons"
)

type TransactionService interface {
	RegisterTransfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransactionResponse], error)
	RegisterDeposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.TransactionResponse], error)
	RegisterWithdrawal(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.TransactionResponse], error)
	GetAllTransactions(ctx context.Context) (commons.Response[[]models.TransactionResponse], error)
	GetTransactionByID(ctx context.Context, transactionID string) (commons.Response[models.TransactionResponse], error)
	GetTransactionsByAccountID(ctx context.Context, accountID int64) (commons.Response[[]models.TransactionResponse], error)
}

// AccountServiceClient executes a transfer instruction against the external
// account service, which owns all balance state.
type AccountServiceClient interface {
	ExecuteTransfer(ctx context.Context, instruction models.TransferInstruction) (models.ExecutionOutcome, error)
}
