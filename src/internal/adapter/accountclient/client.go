package accountclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/abengl/BankingSystem-TransactionMs/src/internal/adapter/http/models"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/domain"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/logger"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/metrics"
)

// Client submits transfer instructions to the account service. It performs
// exactly one remote call per invocation; a well-formed failure verdict is a
// normal outcome, only transport-level problems surface as errors and count
// against the circuit breaker.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	settings := gobreaker.Settings{
		Name: "account-service",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("account client circuit breaker state changed", logger.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    gobreaker.NewCircuitBreaker(settings),
	}
}

func (c *Client) ExecuteTransfer(ctx context.Context, instruction models.TransferInstruction) (models.ExecutionOutcome, error) {
	started := time.Now()
	requestID := uuid.NewString()

	logger.Info("account client execute transfer", logger.Fields{
		"requestId": requestID,
		"payload":   logger.SanitizePayload(instruction),
	})

	result, err := c.breaker.Execute(func() (any, error) {
		outcome, callErr := c.doExecuteTransfer(ctx, requestID, instruction)
		if callErr != nil {
			return nil, callErr
		}
		return outcome, nil
	})
	if err != nil {
		metrics.ObserveAccountServiceCall("error", started)
		logger.Error("account client execute transfer failed", err, logger.Fields{
			"requestId": requestID,
		})

		var externalErr *domain.ExternalServiceError
		if errors.As(err, &externalErr) {
			return models.ExecutionOutcome{}, err
		}
		// Breaker rejection: open state or half-open request limit.
		return models.ExecutionOutcome{}, &domain.ExternalServiceError{Detail: "account service unavailable", Cause: err}
	}

	outcome := result.(models.ExecutionOutcome)
	metrics.ObserveAccountServiceCall("ok", started)

	logger.Info("account client execute transfer outcome", logger.Fields{
		"requestId": requestID,
		"success":   outcome.Success,
		"errorCode": outcome.ErrorCode,
	})

	return outcome, nil
}

func (c *Client) doExecuteTransfer(ctx context.Context, requestID string, instruction models.TransferInstruction) (models.ExecutionOutcome, error) {
	body, err := json.Marshal(instruction)
	if err != nil {
		return models.ExecutionOutcome{}, &domain.ExternalServiceError{Detail: "encode transfer instruction", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+"/execute-transfer", bytes.NewReader(body))
	if err != nil {
		return models.ExecutionOutcome{}, &domain.ExternalServiceError{Detail: "build transfer request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.ExecutionOutcome{}, &domain.ExternalServiceError{Detail: "transfer request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return models.ExecutionOutcome{}, &domain.ExternalServiceError{
			Detail: fmt.Sprintf("unexpected status %d from execute-transfer", resp.StatusCode),
		}
	}

	var outcome models.ExecutionOutcome
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		return models.ExecutionOutcome{}, &domain.ExternalServiceError{Detail: "malformed execute-transfer response", Cause: err}
	}

	// A failure verdict without error detail is indistinguishable from a
	// truncated response; treat it as infrastructure, not business.
	if !outcome.Success && (strings.TrimSpace(outcome.ErrorCode) == "" || strings.TrimSpace(outcome.ErrorMessage) == "") {
		return models.ExecutionOutcome{}, &domain.ExternalServiceError{Detail: "failure response missing error detail"}
	}

	return outcome, nil
}
