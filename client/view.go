package client

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// View holds the four pieces of state the mobile hook tracks: the
// transaction list, the summary, a loading flag, and the last error.
// All accessors are safe for concurrent use.
type View struct {
	client *Client
	userID string

	mu           sync.Mutex
	transactions []Transaction
	summary      Summary
	loading      bool
	err          error
}

// NewView creates a View over one user's ledger.
func NewView(c *Client, userID string) *View {
	return &View{client: c, userID: userID}
}

// Load fetches the list and summary concurrently. The loading flag holds
// until both requests settle. On failure the first error is recorded and
// prior state is left unchanged. Cancelling ctx aborts both requests, so
// nothing updates state after teardown.
func (v *View) Load(ctx context.Context) error {
	v.mu.Lock()
	v.loading = true
	v.err = nil
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.loading = false
		v.mu.Unlock()
	}()

	var (
		transactions []Transaction
		summary      *Summary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = v.client.ListTransactions(gctx, v.userID)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = v.client.GetSummary(gctx, v.userID)
		return err
	})

	if err := g.Wait(); err != nil {
		v.mu.Lock()
		v.err = err
		v.mu.Unlock()
		return err
	}

	v.mu.Lock()
	v.transactions = transactions
	v.summary = *summary
	v.mu.Unlock()
	return nil
}

// Delete removes one transaction then unconditionally reloads both list and
// summary, keeping client state consistent with the store. There is no
// optimistic local removal.
func (v *View) Delete(ctx context.Context, id int64) error {
	if err := v.client.DeleteTransaction(ctx, id); err != nil {
		v.mu.Lock()
		v.err = err
		v.mu.Unlock()
		return err
	}

	return v.Load(ctx)
}

// Transactions returns the last loaded transaction list.
func (v *View) Transactions() []Transaction {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.transactions
}

// Summary returns the last loaded summary.
func (v *View) Summary() Summary {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.summary
}

// Loading reports whether a Load is in flight.
func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Err returns the last recorded error, if any.
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}
