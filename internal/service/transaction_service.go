package service

import (
	"context"

	"github.com/AjayPieris/wallet-server/internal/storage"
)

// TransactionService handles the read side of the ledger. Writes go through
// the operator queue instead.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactionsByUser returns every transaction owned by userID, newest
// first. A user with no rows yields an empty slice.
func (s *TransactionService) ListTransactionsByUser(ctx context.Context, userID string) ([]Transaction, error) {
	rows, err := s.storage.Transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = Transaction{
			ID:        row.ID,
			UserID:    row.UserID,
			Title:     row.Title,
			Amount:    row.Amount,
			Category:  row.Category,
			CreatedAt: row.CreatedAt,
		}
	}

	return convertedTransactions, nil
}

// SummarizeByUser returns balance, income, and expense sums for userID.
// All three are zero for a user with no rows.
func (s *TransactionService) SummarizeByUser(ctx context.Context, userID string) (*Summary, error) {
	row, err := s.storage.Transactions.SummarizeByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Balance: row.Balance,
		Income:  row.Income,
		Expense: row.Expense,
	}, nil
}
