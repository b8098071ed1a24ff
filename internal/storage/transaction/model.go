package transaction

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("transaction not found")

// Transaction represents a ledger row. A positive amount is income, a
// negative amount is an expense.
type Transaction struct {
	ID        int64           `db:"id"`
	UserID    string          `db:"user_id"`
	Title     string          `db:"title"`
	Amount    decimal.Decimal `db:"amount"`
	Category  string          `db:"category"`
	CreatedAt time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
// The id and created_at are generated by the store.
type TransactionCreate struct {
	UserID   string
	Title    string
	Amount   decimal.Decimal
	Category string
}
