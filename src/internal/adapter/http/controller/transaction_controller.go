package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/abengl/BankingSystem-TransactionMs/src/internal/adapter/http/models"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/commons"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/domain"
)

type TransactionService interface {
	RegisterTransfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransactionResponse], error)
	RegisterDeposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.TransactionResponse], error)
	RegisterWithdrawal(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.TransactionResponse], error)
	GetAllTransactions(ctx context.Context) (commons.Response[[]models.TransactionResponse], error)
	GetTransactionByID(ctx context.Context, transactionID string) (commons.Response[models.TransactionResponse], error)
	GetTransactionsByAccountID(ctx context.Context, accountID int64) (commons.Response[[]models.TransactionResponse], error)
}

type TransactionController struct {
	service TransactionService
}

func NewTransactionController(service TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(handler http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(handler)
		}
		return handler
	}

	mux.Handle("POST /transactions/transfer", wrap(c.registerTransfer))
	mux.Handle("POST /transactions/deposit", wrap(c.registerDeposit))
	mux.Handle("POST /transactions/withdraw", wrap(c.registerWithdrawal))
	mux.Handle("GET /transactions", wrap(c.getAllTransactions))
	mux.Handle("GET /transactions/{transactionId}", wrap(c.getTransactionByID))
	mux.Handle("GET /transactions/account/{accountId}", wrap(c.getTransactionsByAccountID))
}

func (c *TransactionController) registerTransfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.TransactionResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.RegisterTransfer(r.Context(), req)
	if err != nil {
		logError(r, err, map[string]any{"message": response.Message})
		status := statusForError(err)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *TransactionController) registerDeposit(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.TransactionResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.RegisterDeposit(r.Context(), req)
	if err != nil {
		logError(r, err, map[string]any{"message": response.Message})
		status := statusForError(err)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *TransactionController) registerWithdrawal(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.TransactionResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.RegisterWithdrawal(r.Context(), req)
	if err != nil {
		logError(r, err, map[string]any{"message": response.Message})
		status := statusForError(err)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *TransactionController) getAllTransactions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetAllTransactions(r.Context())
	if err != nil {
		logError(r, err, map[string]any{"message": response.Message})
		status := statusForError(err)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *TransactionController) getTransactionByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.GetTransactionByID(r.Context(), r.PathValue("transactionId"))
	if err != nil {
		logError(r, err, map[string]any{"message": response.Message})
		status := statusForError(err)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *TransactionController) getTransactionsByAccountID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	accountID, err := strconv.ParseInt(r.PathValue("accountId"), 10, 64)
	if err != nil || accountID <= 0 {
		response := commons.ErrorResponse[[]models.TransactionResponse]("validation failed", "accountId must be a positive integer")
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	response, err := c.service.GetTransactionsByAccountID(r.Context(), accountID)
	if err != nil {
		logError(r, err, map[string]any{"message": response.Message})
		status := statusForError(err)
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

// statusForError maps the domain error taxonomy onto HTTP statuses. The 503
// (unknown outcome, nothing persisted) vs 422 (rejection, FAILED record
// persisted) distinction is the contract callers depend on.
func statusForError(err error) int {
	var validationErr *domain.ValidationError
	var transferFailedErr *domain.TransferFailedError
	var externalServiceErr *domain.ExternalServiceError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.As(err, &transferFailedErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &externalServiceErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
