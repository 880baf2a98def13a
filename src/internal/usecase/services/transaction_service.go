package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/abengl/BankingSystem-TransactionMs/src/internal/adapter/http/models"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/adapter/repository/repo_interfaces"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/commons"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/domain"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/logger"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/metrics"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/usecase/service_interfaces"
)

type TransactionService struct {
	transactionRepo repo_interfaces.TransactionRepository
	accountClient   service_interfaces.AccountServiceClient
}

func NewTransactionService(
	transactionRepo repo_interfaces.TransactionRepository,
	accountClient service_interfaces.AccountServiceClient,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		accountClient:   accountClient,
	}
}

// RegisterTransfer runs the transfer saga step: validate, execute against the
// account service, then persist the outcome. The record is persisted exactly
// once for every call that gets an answer from the account service, whether
// the answer is success or rejection. When the account service is unreachable
// the outcome is unknown and nothing is persisted.
func (s *TransactionService) RegisterTransfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service register transfer", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	transaction := domain.NewPendingTransaction(req.Kind(), req.SourceAccountID, req.DestinationAccountID, req.Amount)

	outcome, err := s.accountClient.ExecuteTransfer(ctx, models.TransferInstruction{
		TransactionType:      string(transaction.Kind),
		SourceAccountID:      req.SourceAccountID,
		DestinationAccountID: req.DestinationAccountID,
		Amount:               req.Amount,
	})
	if err != nil {
		// Unknown outcome: the pending record is discarded, persisting it
		// would misrepresent state the account service may or may not hold.
		metrics.TransfersTotal.WithLabelValues("unresolved").Inc()
		return commons.ErrorResponse[models.TransactionResponse]("account service unavailable", err.Error()), err
	}

	if err := transaction.Finalize(outcome.Success); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("failed to process transfer", err.Error()), err
	}

	saved, err := s.transactionRepo.Create(ctx, transaction)
	if err != nil {
		metrics.TransfersTotal.WithLabelValues("unrecorded").Inc()
		return commons.ErrorResponse[models.TransactionResponse]("failed to record transfer", "Unable to process transfer right now"), err
	}

	metrics.TransfersTotal.WithLabelValues(string(saved.Status)).Inc()

	if !outcome.Success {
		// The rejected attempt is durable before the caller learns about it.
		failure := &domain.TransferFailedError{Code: outcome.ErrorCode, Message: outcome.ErrorMessage}
		logger.Error("transaction service transfer rejected", failure, logger.Fields{
			"transactionId": saved.ID,
		})
		return commons.ErrorResponse[models.TransactionResponse]("transfer failed", failure.Error()), failure
	}

	logger.Info("transaction service transfer registered", logger.Fields{
		"transactionId": saved.ID,
		"status":        saved.Status,
	})

	return commons.SuccessResponse("Transfer registered", models.TransactionToResponse(saved)), nil
}

// RegisterDeposit records a deposit as an own-account transfer where the
// destination account is both the primary and the related account.
func (s *TransactionService) RegisterDeposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service register deposit", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	return s.RegisterTransfer(ctx, models.TransferRequest{
		TransactionType:      string(domain.TransactionKindOwnAccount),
		SourceAccountID:      req.DestinationAccount,
		DestinationAccountID: req.DestinationAccount,
		Amount:               req.Amount,
	})
}

// RegisterWithdrawal records a withdrawal as an own-account transfer on the
// origin account.
func (s *TransactionService) RegisterWithdrawal(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service register withdrawal", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	return s.RegisterTransfer(ctx, models.TransferRequest{
		TransactionType:      string(domain.TransactionKindOwnAccount),
		SourceAccountID:      req.OriginAccount,
		DestinationAccountID: req.OriginAccount,
		Amount:               req.Amount,
	})
}

func (s *TransactionService) GetAllTransactions(ctx context.Context) (commons.Response[[]models.TransactionResponse], error) {
	transactions, err := s.transactionRepo.FindAll(ctx)
	if err != nil {
		return commons.ErrorResponse[[]models.TransactionResponse]("failed to list transactions", "Unable to list transactions right now"), err
	}

	return commons.SuccessResponse("Transactions retrieved", models.TransactionsToResponse(transactions)), nil
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string) (commons.Response[models.TransactionResponse], error) {
	transaction, err := s.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			notFound := fmt.Errorf("transaction not found with id %s: %w", transactionID, domain.ErrTransactionNotFound)
			return commons.ErrorResponse[models.TransactionResponse]("Transaction not found", notFound.Error()), notFound
		}
		return commons.ErrorResponse[models.TransactionResponse]("failed to get transaction", "Unable to get transaction right now"), err
	}

	return commons.SuccessResponse("Transaction retrieved", models.TransactionToResponse(transaction)), nil
}

// GetTransactionsByAccountID treats an account with no transactions as a
// not-found condition rather than an empty success. Intentional contract kept
// from the original API; callers relying on the 404 exist.
func (s *TransactionService) GetTransactionsByAccountID(ctx context.Context, accountID int64) (commons.Response[[]models.TransactionResponse], error) {
	transactions, err := s.transactionRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return commons.ErrorResponse[[]models.TransactionResponse]("failed to list transactions", "Unable to list transactions right now"), err
	}

	if len(transactions) == 0 {
		notFound := fmt.Errorf("no transactions found for account id %d: %w", accountID, domain.ErrTransactionNotFound)
		return commons.ErrorResponse[[]models.TransactionResponse]("Transactions not found", notFound.Error()), notFound
	}

	return commons.SuccessResponse("Transactions retrieved", models.TransactionsToResponse(transactions)), nil
}
