package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/AjayPieris/wallet-server/internal/logging"
	"github.com/AjayPieris/wallet-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing a user's transactions.
type ListTransactionsInput struct {
	UserID string `path:"userId" doc:"Owning user id"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body []Transaction
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactionsByUser(ctx context.Context, userID string) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /api/transactions/{userId}.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transactions/{userId}",
		Summary:     "List transactions",
		Description: "Returns all of a user's transactions, newest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactionsByUser(ctx, input.UserID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "Failed to fetch transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	// non-nil so a user with no rows serializes as [] rather than null
	body := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		body[i] = fromService(tx)
	}

	return &ListTransactionsOutput{Body: body}, nil
}
