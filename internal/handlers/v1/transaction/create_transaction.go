package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/AjayPieris/wallet-server/internal/logging"
	"github.com/AjayPieris/wallet-server/internal/operator/actions"
)

// CreateTransactionBody is the request body for creating a transaction.
// Fields are not marked required in the schema: presence is checked in
// parseCreateTransactionInput so a missing field answers 400, and a zero
// amount stays distinguishable from an absent one.
type CreateTransactionBody struct {
	UserID   string `json:"user_id,omitempty" doc:"Owning user id"`
	Title    string `json:"title,omitempty" doc:"Short description"`
	Amount   string `json:"amount,omitempty" doc:"Signed decimal amount; positive income, negative expense"`
	Category string `json:"category,omitempty" doc:"Free-form category"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// actionProcessor enqueues a write action and waits for its outcome.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateTransactionHandler handles POST /api/transactions.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/api/transactions",
		Summary:     "Create transaction",
		Description: "Creates a new transaction and returns the persisted row.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput validates presence of the four required fields
// and parses the amount. A parseable "0" amount is accepted; only an absent
// or empty field is a validation failure.
func parseCreateTransactionInput(input *CreateTransactionInput) (*actions.CreateTransaction, error) {
	body := input.Body
	if body.UserID == "" || body.Title == "" || body.Amount == "" || body.Category == "" {
		return nil, huma.NewError(http.StatusBadRequest, "Missing required fields")
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	return &actions.CreateTransaction{
		UserID:   body.UserID,
		Title:    body.Title,
		Amount:   amount,
		Category: body.Category,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "Failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionID", action.Result.ID)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   fromStorage(action.Result),
	}, nil
}
