package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	db   *sql.DB
	exec bob.Executor
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{db: db, exec: bob.NewDB(db)}
}

// ListByUser returns all of a user's transactions, newest first. The id is
// a secondary sort key so equal timestamps order deterministically. An
// unknown user yields an empty slice, not an error.
func (t *TransactionsTable) ListByUser(ctx context.Context, userID string) ([]*Transaction, error) {
	query := psql.Select(
		sm.Columns("id", "user_id", "title", "amount", "category", "created_at"),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}

	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// The CASE sums leave non-matching rows as NULL so they never contribute;
// COALESCE folds the zero-row case to numeric 0.
const summarizeByUserQuery = `
SELECT
    COALESCE(SUM(amount), 0)                                  AS balance,
    COALESCE(SUM(CASE WHEN amount > 0 THEN amount END), 0)    AS income,
    COALESCE(SUM(CASE WHEN amount < 0 THEN amount END), 0)    AS expense
FROM transactions
WHERE user_id = $1`

// SummarizeByUser computes balance, income, and expense for one user in a
// single statement, so the three sums are always mutually consistent.
func (t *TransactionsTable) SummarizeByUser(ctx context.Context, userID string) (*Summary, error) {
	var summary Summary
	err := t.db.QueryRowContext(ctx, summarizeByUserQuery, userID).
		Scan(&summary.Balance, &summary.Income, &summary.Expense)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
