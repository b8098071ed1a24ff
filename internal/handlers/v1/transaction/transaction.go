package transaction

import (
	"time"

	"github.com/AjayPieris/wallet-server/internal/service"
	storagetx "github.com/AjayPieris/wallet-server/internal/storage/transaction"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID        int64  `json:"id" doc:"Generated transaction id"`
	UserID    string `json:"user_id" doc:"Owning user id"`
	Title     string `json:"title" doc:"Short description"`
	Amount    string `json:"amount" doc:"Signed decimal amount; positive income, negative expense"`
	Category  string `json:"category" doc:"Free-form category"`
	CreatedAt string `json:"created_at" doc:"RFC3339 creation time"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Title:     tx.Title,
		Amount:    tx.Amount.String(),
		Category:  tx.Category,
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
	}
}

func fromStorage(row *storagetx.Transaction) Transaction {
	return Transaction{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Amount:    row.Amount.String(),
		Category:  row.Category,
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
	}
}
