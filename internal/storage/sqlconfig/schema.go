package sqlconfig

import (
	"context"
	"database/sql"
)

// schemaDDL mirrors migrations/000001_create_transactions_table.up.sql.
// EnsureSchema is the startup path for deployments that don't run the
// migration tool.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS transactions (
    id BIGSERIAL PRIMARY KEY,
    user_id VARCHAR(255) NOT NULL,
    title VARCHAR(255) NOT NULL,
    amount DECIMAL(10,2) NOT NULL,
    category VARCHAR(255) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// EnsureSchema idempotently creates the transactions table. Callers treat a
// failure here as fatal: the process must not serve without its table.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaDDL)
	return err
}
