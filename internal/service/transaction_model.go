package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a transaction in the service layer. The amount's
// sign encodes direction: positive is income, negative is expense.
type Transaction struct {
	ID        int64
	UserID    string
	Title     string
	Amount    decimal.Decimal
	Category  string
	CreatedAt time.Time
}

// Summary is the income/expense breakdown for one user. Expense retains its
// negative sign, so Balance equals Income plus Expense by construction.
type Summary struct {
	Balance decimal.Decimal
	Income  decimal.Decimal
	Expense decimal.Decimal
}
