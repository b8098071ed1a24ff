package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AjayPieris/wallet-server/internal/operator/actions"
	storagetx "github.com/AjayPieris/wallet-server/internal/storage/transaction"
)

func newDeleteTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteTransactionHandler(op).Register(api)
	return api
}

func TestHTTP_DeleteTransaction_Success(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		del, ok := a.(*actions.DeleteTransaction)
		return ok && del.ID == 42
	})).Run(func(args mock.Arguments) {
		del := args.Get(1).(*actions.DeleteTransaction)
		del.Deleted = &storagetx.Transaction{
			ID:        42,
			UserID:    "u1",
			Title:     "Coffee",
			Amount:    decimal.RequireFromString("-5.00"),
			Category:  "Food",
			CreatedAt: created,
		}
	}).Return(nil)

	resp := newDeleteTestAPI(t, mockOp).Delete("/api/transactions/42")

	// the success path always acknowledges with a body
	assert.Equal(t, http.StatusOK, resp.Code)

	var body DeleteTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Transaction ID 42 deleted successfully", body.Message)
	assert.Equal(t, int64(42), body.Transaction.ID)
	assert.Equal(t, "Coffee", body.Transaction.Title)
	assert.Equal(t, "-5", body.Transaction.Amount)
	mockOp.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_NotFoundIs404(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(storagetx.ErrNotFound)

	resp := newDeleteTestAPI(t, mockOp).Delete("/api/transactions/9999")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_StoreErrorIs500(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	resp := newDeleteTestAPI(t, mockOp).Delete("/api/transactions/42")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockOp.AssertExpectations(t)
}
