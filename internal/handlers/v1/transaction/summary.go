package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/AjayPieris/wallet-server/internal/logging"
	"github.com/AjayPieris/wallet-server/internal/service"
)

// GetSummaryInput is the Huma input for a user's income/expense summary.
type GetSummaryInput struct {
	UserID string `path:"userId" doc:"Owning user id"`
}

// SummaryResponseBody carries the three aggregate sums as decimal strings.
// Expense keeps its negative sign, so balance always equals income plus
// expense.
type SummaryResponseBody struct {
	Balance string `json:"balance" doc:"Sum of all amounts"`
	Income  string `json:"income" doc:"Sum of positive amounts"`
	Expense string `json:"expense" doc:"Sum of negative amounts, sign retained"`
}

// GetSummaryOutput is the Huma output for the summary endpoint.
type GetSummaryOutput struct {
	Body SummaryResponseBody
}

// transactionSummarizer is the interface for summarizing a user's ledger.
type transactionSummarizer interface {
	SummarizeByUser(ctx context.Context, userID string) (*service.Summary, error)
}

// GetSummaryHandler handles GET /api/transactions/summary/{userId}.
type GetSummaryHandler struct {
	TransactionService transactionSummarizer
}

// NewGetSummaryHandler creates a new GetSummaryHandler.
func NewGetSummaryHandler(svc transactionSummarizer) *GetSummaryHandler {
	return &GetSummaryHandler{TransactionService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/api/transactions/summary/{userId}",
		Summary:     "Summarize transactions",
		Description: "Returns balance, income, and expense sums for one user.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summarizeMs")
	}
	summary, err := h.TransactionService.SummarizeByUser(ctx, input.UserID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "Failed to fetch summary", err)
	}

	return &GetSummaryOutput{
		Body: SummaryResponseBody{
			Balance: summary.Balance.String(),
			Income:  summary.Income.String(),
			Expense: summary.Expense.String(),
		},
	}, nil
}
