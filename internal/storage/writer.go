package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/AjayPieris/wallet-server/internal/storage/transaction"
)

type Writer struct {
	tx          bob.Tx
	Transaction *transaction.Writer
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:          tx,
		Transaction: transaction.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
