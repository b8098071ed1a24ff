package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/AjayPieris/wallet-server/internal/storage"
	"github.com/AjayPieris/wallet-server/internal/storage/transaction"
)

// CreateTransaction appends one ledger row. The persisted row, with its
// generated id and created_at, is captured on Result after Perform.
type CreateTransaction struct {
	UserID   string
	Title    string
	Amount   decimal.Decimal
	Category string

	Result *transaction.Transaction
	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	storageCreate := &transaction.TransactionCreate{
		UserID:   t.UserID,
		Title:    t.Title,
		Amount:   t.Amount,
		Category: t.Category,
	}

	row, err := writer.Transaction.Insert(ctx, storageCreate)
	if err != nil {
		return err
	}

	t.Result = row
	return nil
}
