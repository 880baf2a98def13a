package accountclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abengl/BankingSystem-TransactionMs/src/internal/adapter/http/models"
	"github.com/abengl/BankingSystem-TransactionMs/src/internal/domain"
)

func testInstruction() models.TransferInstruction {
	return models.TransferInstruction{
		TransactionType:      "OWN_ACCOUNT",
		SourceAccountID:      1,
		DestinationAccountID: 2,
		Amount:               decimal.NewFromFloat(100.0),
	}
}

func TestExecuteTransferSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/execute-transfer", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var instruction models.TransferInstruction
		require.NoError(t, json.NewDecoder(r.Body).Decode(&instruction))
		assert.Equal(t, int64(1), instruction.SourceAccountID)
		assert.Equal(t, int64(2), instruction.DestinationAccountID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ExecutionOutcome{Success: true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	outcome, err := client.ExecuteTransfer(context.Background(), testInstruction())

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Empty(t, outcome.ErrorCode)
}

func TestExecuteTransferBusinessFailureIsANormalOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ExecutionOutcome{
			Success:      false,
			ErrorCode:    "INSUFFICIENT_FUNDS",
			ErrorMessage: "balance too low",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	outcome, err := client.ExecuteTransfer(context.Background(), testInstruction())

	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, "INSUFFICIENT_FUNDS", outcome.ErrorCode)
	assert.Equal(t, "balance too low", outcome.ErrorMessage)
}

func TestExecuteTransferConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.ExecuteTransfer(context.Background(), testInstruction())

	var externalErr *domain.ExternalServiceError
	require.ErrorAs(t, err, &externalErr)
}

func TestExecuteTransferTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 50*time.Millisecond)
	_, err := client.ExecuteTransfer(context.Background(), testInstruction())

	var externalErr *domain.ExternalServiceError
	require.ErrorAs(t, err, &externalErr)
}

func TestExecuteTransferUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.ExecuteTransfer(context.Background(), testInstruction())

	var externalErr *domain.ExternalServiceError
	require.ErrorAs(t, err, &externalErr)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestExecuteTransferMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.ExecuteTransfer(context.Background(), testInstruction())

	var externalErr *domain.ExternalServiceError
	require.ErrorAs(t, err, &externalErr)
}

func TestExecuteTransferFailureWithoutErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ExecutionOutcome{Success: false})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.ExecuteTransfer(context.Background(), testInstruction())

	var externalErr *domain.ExternalServiceError
	require.ErrorAs(t, err, &externalErr)
}

func TestExecuteTransferCircuitBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	for i := 0; i < 5; i++ {
		_, err := client.ExecuteTransfer(context.Background(), testInstruction())
		require.Error(t, err)
	}

	// Breaker is open now; the next call is rejected without reaching the wire.
	_, err := client.ExecuteTransfer(context.Background(), testInstruction())
	var externalErr *domain.ExternalServiceError
	require.ErrorAs(t, err, &externalErr)
	assert.Equal(t, int32(5), atomic.LoadInt32(&requests))
}
