package actions

import (
	"context"

	"github.com/AjayPieris/wallet-server/internal/storage"
	"github.com/AjayPieris/wallet-server/internal/storage/transaction"
)

// DeleteTransaction hard-deletes one row by id. transaction.ErrNotFound
// propagates unchanged when no row matches; Deleted holds the removed row's
// snapshot otherwise.
type DeleteTransaction struct {
	ID int64

	Deleted *transaction.Transaction
	IAction
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transaction.DeleteByID(ctx, t.ID)
	if err != nil {
		return err
	}

	t.Deleted = row
	return nil
}
