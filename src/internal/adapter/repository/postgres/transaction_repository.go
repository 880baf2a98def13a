package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/abengl/BankingSystem-TransactionMs/src/internal/domain"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/logger"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create persists the transaction exactly once and assigns its identifier.
// The caller's record is returned with ID populated.
func (r *TransactionRepository) Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	logger.Info("transaction repository create", logger.Fields{
		"transactionType": transaction.Kind,
		"accountId":       transaction.AccountID,
		"status":          transaction.Status,
	})

	const query = `
INSERT INTO transactions (
	id,
	transaction_type,
	account_id,
	related_account_id,
	amount,
	status,
	created_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7
)`

	id := uuid.NewString()

	if _, err := r.db.ExecContext(
		ctx,
		query,
		id,
		transaction.Kind,
		transaction.AccountID,
		transaction.RelatedAccountID,
		transaction.Amount.String(),
		transaction.Status,
		transaction.CreatedAt,
	); err != nil {
		logger.Error("transaction repository create failed", err, logger.Fields{
			"accountId": transaction.AccountID,
		})
		return domain.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	transaction.ID = id

	logger.Info("transaction repository create success", logger.Fields{
		"transactionId": transaction.ID,
		"status":        transaction.Status,
	})

	return transaction, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id string) (domain.Transaction, error) {
	const query = `
SELECT id, transaction_type, account_id, related_account_id, amount, status, created_at
FROM transactions
WHERE id = $1`

	transaction, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Transaction{}, domain.ErrTransactionNotFound
		}
		logger.Error("transaction repository find by id failed", err, logger.Fields{
			"transactionId": id,
		})
		return domain.Transaction{}, fmt.Errorf("find transaction by id: %w", err)
	}

	return transaction, nil
}

// FindByAccountID returns the transactions where the account appears on either
// side of the transfer, newest first.
func (r *TransactionRepository) FindByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	const query = `
SELECT id, transaction_type, account_id, related_account_id, amount, status, created_at
FROM transactions
WHERE account_id = $1 OR related_account_id = $1
ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		logger.Error("transaction repository find by account id failed", err, logger.Fields{
			"accountId": accountID,
		})
		return nil, fmt.Errorf("find transactions by account id: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	const query = `
SELECT id, transaction_type, account_id, related_account_id, amount, status, created_at
FROM transactions
ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("transaction repository find all failed", err, nil)
		return nil, fmt.Errorf("find all transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (domain.Transaction, error) {
	var (
		transaction domain.Transaction
		amount      string
		createdAt   time.Time
	)

	if err := row.Scan(
		&transaction.ID,
		&transaction.Kind,
		&transaction.AccountID,
		&transaction.RelatedAccountID,
		&amount,
		&transaction.Status,
		&createdAt,
	); err != nil {
		return domain.Transaction{}, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("parse stored amount %q: %w", amount, err)
	}

	transaction.Amount = parsed
	transaction.CreatedAt = createdAt

	return transaction, nil
}

func collectTransactions(rows *sql.Rows) ([]domain.Transaction, error) {
	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return transactions, nil
}
