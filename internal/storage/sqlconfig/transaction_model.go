package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID        int64           `db:"id"`
	UserID    string          `db:"user_id"`
	Title     string          `db:"title"`
	Amount    decimal.Decimal `db:"amount"`
	Category  string          `db:"category"`
	CreatedAt time.Time       `db:"created_at"`
}

// Summary holds the three aggregate sums for one user. Expense keeps its
// negative sign, so Balance always equals Income plus Expense.
type Summary struct {
	Balance decimal.Decimal `db:"balance"`
	Income  decimal.Decimal `db:"income"`
	Expense decimal.Decimal `db:"expense"`
}

// ITransactionTable defines the interface for transaction read operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	ListByUser(ctx context.Context, userID string) ([]*Transaction, error)
	SummarizeByUser(ctx context.Context, userID string) (*Summary, error)
}
