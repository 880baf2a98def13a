package repo_interfaces

import (
	"context"

	"github.com/abengl/BankingSystem-TransactionMs/src/internal/domain"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
	FindByID(ctx context.Context, id string) (domain.Transaction, error)
	FindByAccountID(ctx context.Context, accountID int64) ([]domain.Transaction, error)
	FindAll(ctx context.Context) ([]domain.Transaction, error)
}
