package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{tx: tx}
}

// Insert appends one row and returns it with the generated id and created_at.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	query := psql.Insert(
		im.Into("transactions", "user_id", "title", "amount", "category"),
		im.Values(psql.Arg(create.UserID, create.Title, create.Amount, create.Category)),
		im.Returning("id", "user_id", "title", "amount", "category", "created_at"),
	)

	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteByID removes at most one row and returns the deleted row's snapshot.
// Returns ErrNotFound when no row matches.
func (w *Writer) DeleteByID(ctx context.Context, id int64) (*Transaction, error) {
	query := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Returning("id", "user_id", "title", "amount", "category", "created_at"),
	)

	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}
