package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cubos-banking-ledger/internal/api_gateway/middleware"
	"github.com/cubos-banking-ledger/internal/domain/account"
	"github.com/cubos-banking-ledger/internal/domain/ledger"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context, bankSecret string) ([]account.Account, error) {
	args := m.Called(ctx, bankSecret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]account.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, owner account.Owner) (*account.Account, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountService) UpdateOwner(ctx context.Context, number string, update account.OwnerUpdate) error {
	args := m.Called(ctx, number, update)
	return args.Error(0)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, number string) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *MockAccountService) GetBalance(ctx context.Context, number, password string) (int64, error) {
	args := m.Called(ctx, number, password)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountService) GetStatement(ctx context.Context, number, password string) (*ledger.Statement, error) {
	args := m.Called(ctx, number, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Statement), args.Error(1)
}

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Deposit(ctx context.Context, number string, amount int64) error {
	args := m.Called(ctx, number, amount)
	return args.Error(0)
}

func (m *MockTransactionService) Withdraw(ctx context.Context, number string, amount int64, password string) error {
	args := m.Called(ctx, number, amount, password)
	return args.Error(0)
}

func (m *MockTransactionService) Transfer(ctx context.Context, source, destination string, amount int64, password string) error {
	args := m.Called(ctx, source, destination, amount, password)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterJSONFieldNames()
	r := gin.New()
	r.Use(middleware.CorrelationID())
	return r
}

func doRequest(r *gin.Engine, method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			payload, _ := json.Marshal(b)
			reader = bytes.NewBuffer(payload)
		}
	}
	req, _ := http.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func strPtr(s string) *string { return &s }
