package models

import "github.com/shopspring/decimal"

// TransferInstruction is the outbound payload sent to the account service's
// execute-transfer endpoint.
type TransferInstruction struct {
	TransactionType      string          `json:"transactionType"`
	SourceAccountID      int64           `json:"sourceAccountId"`
	DestinationAccountID int64           `json:"destinationAccountId"`
	Amount               decimal.Decimal `json:"amount"`
}

// ExecutionOutcome is the account service's verdict on a transfer instruction.
// ErrorCode and ErrorMessage are populated only when Success is false; the
// balance echo fields are omitted by the account service when absent.
type ExecutionOutcome struct {
	Success                 bool             `json:"success"`
	ErrorCode               string           `json:"errorCode,omitempty"`
	ErrorMessage            string           `json:"errorMessage,omitempty"`
	SourceAccountID         *int64           `json:"sourceAccountId,omitempty"`
	DestinationAccountID    *int64           `json:"destinationAccountId,omitempty"`
	FinalSourceBalance      *decimal.Decimal `json:"finalSourceBalance,omitempty"`
	FinalDestinationBalance *decimal.Decimal `json:"finalDestinationBalance,omitempty"`
}
