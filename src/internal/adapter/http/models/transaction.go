package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/abengl/BankingSystem-TransactionMs/src/internal/domain"
)

type TransferRequest struct {
	TransactionType      string          `json:"transactionType"`
	SourceAccountID      int64           `json:"sourceAccountId"`
	DestinationAccountID int64           `json:"destinationAccountId"`
	Amount               decimal.Decimal `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if _, ok := ParseTransactionKind(r.TransactionType); !ok {
		errs = append(errs, "transactionType must be either 'OWN_ACCOUNT' or 'THIRD_PARTY_ACCOUNT'")
	}
	if r.SourceAccountID <= 0 {
		errs = append(errs, "sourceAccountId must be a positive integer")
	}
	if r.DestinationAccountID <= 0 {
		errs = append(errs, "destinationAccountId must be a positive integer")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Detail: strings.Join(errs, "; ")}
	}
	return nil
}

func (r TransferRequest) Kind() domain.TransactionKind {
	kind, _ := ParseTransactionKind(r.TransactionType)
	return kind
}

type DepositRequest struct {
	DestinationAccount int64           `json:"destinationAccount"`
	Amount             decimal.Decimal `json:"amount"`
}

func (r DepositRequest) Validate() error {
	var errs []string

	if r.DestinationAccount <= 0 {
		errs = append(errs, "destinationAccount must be a positive integer")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Detail: strings.Join(errs, "; ")}
	}
	return nil
}

type WithdrawRequest struct {
	OriginAccount int64           `json:"originAccount"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r WithdrawRequest) Validate() error {
	var errs []string

	if r.OriginAccount <= 0 {
		errs = append(errs, "originAccount must be a positive integer")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Detail: strings.Join(errs, "; ")}
	}
	return nil
}

type TransactionResponse struct {
	TransactionID    string          `json:"transactionId"`
	TransactionType  string          `json:"transactionType"`
	AccountID        int64           `json:"accountId"`
	RelatedAccountID int64           `json:"relatedAccountId"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func TransactionToResponse(tx domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    tx.ID,
		TransactionType:  string(tx.Kind),
		AccountID:        tx.AccountID,
		RelatedAccountID: tx.RelatedAccountID,
		Amount:           tx.Amount,
		Status:           string(tx.Status),
		CreatedAt:        tx.CreatedAt,
	}
}

func TransactionsToResponse(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionToResponse(tx))
	}
	return out
}

// ParseTransactionKind normalizes the wire value to the canonical kind. The
// legacy 'TRANSFER_'-prefixed names are accepted as aliases.
func ParseTransactionKind(value string) (domain.TransactionKind, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.TrimPrefix(normalized, "TRANSFER_")

	switch domain.TransactionKind(normalized) {
	case domain.TransactionKindOwnAccount:
		return domain.TransactionKindOwnAccount, true
	case domain.TransactionKindThirdPartyAccount:
		return domain.TransactionKindThirdPartyAccount, true
	default:
		return "", false
	}
}
