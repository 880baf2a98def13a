package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionKindOwnAccount        TransactionKind = "OWN_ACCOUNT"
	TransactionKindThirdPartyAccount TransactionKind = "THIRD_PARTY_ACCOUNT"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction is the durable record of one attempted transfer. ID stays empty
// until the repository persists the record and assigns it.
type Transaction struct {
	ID               string
	Kind             TransactionKind
	AccountID        int64
	RelatedAccountID int64
	Amount           decimal.Decimal
	Status           TransactionStatus
	CreatedAt        time.Time
}

func NewPendingTransaction(kind TransactionKind, sourceAccountID, destinationAccountID int64, amount decimal.Decimal) Transaction {
	return Transaction{
		Kind:             kind,
		AccountID:        sourceAccountID,
		RelatedAccountID: destinationAccountID,
		Amount:           amount,
		Status:           TransactionStatusPending,
		CreatedAt:        time.Now().UTC(),
	}
}

// Finalize moves a PENDING transaction to COMPLETED or FAILED. Terminal
// statuses never change again.
func (t *Transaction) Finalize(success bool) error {
	if t.Status != TransactionStatusPending {
		return fmt.Errorf("transaction already finalized with status %s", t.Status)
	}

	if success {
		t.Status = TransactionStatusCompleted
	} else {
		t.Status = TransactionStatusFailed
	}

	return nil
}
