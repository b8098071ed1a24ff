package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AjayPieris/wallet-server/internal/service"
)

// mockTransactionLister is a mock for transactionLister.
type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactionsByUser(ctx context.Context, userID string) ([]service.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListTransactions_NewestFirst(t *testing.T) {
	t1 := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	t3 := t1.Add(2 * time.Hour)

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactionsByUser", mock.Anything, "u1").Return([]service.Transaction{
		{ID: 3, UserID: "u1", Title: "Coffee", Amount: decimal.RequireFromString("-5"), Category: "Food", CreatedAt: t3},
		{ID: 1, UserID: "u1", Title: "Salary", Amount: decimal.RequireFromString("1000"), Category: "Income", CreatedAt: t1},
	}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/api/transactions/u1")

	assert.Equal(t, http.StatusOK, resp.Code)

	var body []Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 2)
	assert.Equal(t, int64(3), body[0].ID)
	assert.Equal(t, "-5", body[0].Amount)
	assert.Equal(t, int64(1), body[1].ID)
	assert.Equal(t, "1000", body[1].Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_UnknownUserIsEmptyArray(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactionsByUser", mock.Anything, "ghost").
		Return([]service.Transaction{}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/api/transactions/ghost")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "[]", strings.TrimSpace(resp.Body.String()), "empty array, never null")
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_StoreErrorIs500(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactionsByUser", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Get("/api/transactions/u1")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
