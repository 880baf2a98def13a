package domain

import "errors"

var ErrTransactionNotFound = errors.New("transaction not found")

// ValidationError rejects a malformed request before any side effect occurs.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// TransferFailedError is a business rejection from the account service. By the
// time it is raised the FAILED transaction record is already durable.
type TransferFailedError struct {
	Code    string
	Message string
}

func (e *TransferFailedError) Error() string {
	return e.Code + " - " + e.Message
}

// ExternalServiceError means the account service could not be reached or gave
// an unusable answer, so the outcome of the transfer is unknown. No record is
// persisted in that case.
type ExternalServiceError struct {
	Detail string
	Cause  error
}

func (e *ExternalServiceError) Error() string {
	if e.Cause != nil {
		return "there is an error on the account service: " + e.Detail + ": " + e.Cause.Error()
	}
	return "there is an error on the account service: " + e.Detail
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Cause
}
