package transaction

import (
	"context"
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

// mockActionProcessor is a mock for actionProcessor.
type mockActionProcessor struct {
	mock.Mock
}

func (m *mockActionProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// newCreateTestAPI registers the handler against a humatest API and returns it.
func newCreateTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(op).Register(api)
	return api
}

// -- parseCreateTransactionInput unit tests --

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			UserID:   "u1",
			Title:    "Salary",
			Amount:   "1000",
			Category: "Income",
		},
	}

	action, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, "u1", action.UserID)
	assert.Equal(t, "Salary", action.Title)
	assert.True(t, action.Amount.Equal(decimal.RequireFromString("1000")))
	assert.Equal(t, "Income", action.Category)
}

func TestParseCreateTransactionInput_ZeroAmountIsValid(t *testing.T) {
	// "0" is present and parseable; only an absent field fails validation.
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			UserID:   "u1",
			Title:    "Correction",
			Amount:   "0",
			Category: "Misc",
		},
	}

	action, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.True(t, action.Amount.IsZero())
}

func TestParseCreateTransactionInput_MissingFields(t *testing.T) {
	cases := map[string]CreateTransactionBody{
		"no user_id":  {Title: "Coffee", Amount: "-5", Category: "Food"},
		"no title":    {UserID: "u1", Amount: "-5", Category: "Food"},
		"no amount":   {UserID: "u1", Title: "Coffee", Category: "Food"},
		"no category": {UserID: "u1", Title: "Coffee", Amount: "-5"},
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseCreateTransactionInput(&CreateTransactionInput{Body: body})
			assert.Error(t, err)
		})
	}
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateTransaction)
		return ok &&
			create.UserID == "u1" &&
			create.Title == "Coffee" &&
			create.Amount.Equal(decimal.RequireFromString("-5.00")) &&
			create.Category == "Food"
	})).Run(func(args mock.Arguments) {
		create := args.Get(1).(*actions.CreateTransaction)
		create.Result = &storagetx.Transaction{
			ID:        42,
			UserID:    create.UserID,
			Title:     create.Title,
			Amount:    create.Amount,
			Category:  create.Category,
			CreatedAt: created,
		}
	}).Return(nil)

	resp := newCreateTestAPI(t, mockOp).Post("/api/transactions", CreateTransactionBody{
		UserID:   "u1",
		Title:    "Coffee",
		Amount:   "-5.00",
		Category: "Food",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)

	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, "u1", body.UserID)
	assert.Equal(t, "Coffee", body.Title)
	assert.Equal(t, "-5", body.Amount)
	assert.Equal(t, "Food", body.Category)
	assert.Equal(t, created.Format(time.RFC3339), body.CreatedAt)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingFieldIs400(t *testing.T) {
	mockOp := new(mockActionProcessor)

	resp := newCreateTestAPI(t, mockOp).Post("/api/transactions", CreateTransactionBody{
		UserID: "u1",
		// Title, Amount, Category omitted
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidAmountIs400(t *testing.T) {
	mockOp := new(mockActionProcessor)

	resp := newCreateTestAPI(t, mockOp).Post("/api/transactions", CreateTransactionBody{
		UserID:   "u1",
		Title:    "Coffee",
		Amount:   "not-a-decimal",
		Category: "Food",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_StoreErrorIs500(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	resp := newCreateTestAPI(t, mockOp).Post("/api/transactions", CreateTransactionBody{
		UserID:   "u1",
		Title:    "Coffee",
		Amount:   "-5.00",
		Category: "Food",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockOp.AssertExpectations(t)
}
