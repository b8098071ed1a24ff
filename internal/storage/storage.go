package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/AjayPieris/wallet-server/internal/config"
	"github.com/AjayPieris/wallet-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	bobDB        bob.DB
	Transactions sqlconfig.ITransactionTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	return &Storage{
		DB:           db,
		bobDB:        bob.NewDB(db),
		Transactions: sqlconfig.NewTransactionsTable(db),
	}
}

// EnsureSchema idempotently creates the transactions table. The caller must
// treat a failure as fatal and refuse to serve.
func (s *Storage) EnsureSchema(ctx context.Context) error {
	return sqlconfig.EnsureSchema(ctx, s.DB)
}

// Write begins a database transaction and returns a Writer over it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	writer := NewWriter(tx)
	return &writer, nil
}
