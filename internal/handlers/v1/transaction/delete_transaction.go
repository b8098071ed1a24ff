package transaction

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/AjayPieris/wallet-server/internal/logging"
	"github.com/AjayPieris/wallet-server/internal/operator/actions"
	storagetx "github.com/AjayPieris/wallet-server/internal/storage/transaction"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	ID int64 `path:"id" doc:"Transaction id"`
}

// DeleteTransactionResponseBody acknowledges the delete with the removed
// row's snapshot. Exactly one response is always sent.
type DeleteTransactionResponseBody struct {
	Message     string      `json:"message" doc:"Confirmation message"`
	Transaction Transaction `json:"transaction" doc:"The deleted row"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Body DeleteTransactionResponseBody
}

// DeleteTransactionHandler handles DELETE /api/transactions/{id}.
type DeleteTransactionHandler struct {
	Operator actionProcessor
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(op actionProcessor) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{Operator: op}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/api/transactions/{id}",
		Summary:     "Delete transaction",
		Description: "Hard-deletes one transaction and returns its last state.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("transactionID", input.ID)
	}

	action := &actions.DeleteTransaction{ID: input.ID}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteTransactionMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, storagetx.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, fmt.Sprintf("Transaction ID %d not found", input.ID))
		}
		return nil, huma.NewError(http.StatusInternalServerError, "Failed to delete transaction", err)
	}

	return &DeleteTransactionOutput{
		Body: DeleteTransactionResponseBody{
			Message:     fmt.Sprintf("Transaction ID %d deleted successfully", input.ID),
			Transaction: fromStorage(action.Deleted),
		},
	}, nil
}
