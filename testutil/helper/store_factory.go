package helper

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/AntonStoeckl/solid-principles-go/internal/config"
	"github.com/AntonStoeckl/solid-principles-go/persistence/postgresstore"
)

const (
	adapterTypeEnvVar = "ADAPTER_TYPE"
	adapterPGXPool    = "pgx.pool"
	adapterSQLDB      = "sql.db"
	adapterSQLXDB     = "sqlx.db"
	connectTimeout    = 3 * time.Second
)

// CreateTableStatement returns the DDL for a journal snapshot table.
func CreateTableStatement(tableName string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %q (
		journal_id  uuid PRIMARY KEY,
		content     text NOT NULL,
		entry_count integer NOT NULL,
		saved_at    timestamp with time zone NOT NULL
	)`, tableName)
}

// ExecFunc executes a statement on whichever connection the store was built from.
type ExecFunc func(ctx context.Context, statement string) error

// CreateStore creates a postgresstore.Store for the adapter selected by the ADAPTER_TYPE env var
// (pgx.pool by default) and returns a function to execute raw statements on the same database.
// The test is skipped if the database is not reachable.
// It panics on an unsupported adapter type.
func CreateStore(t testing.TB, options ...postgresstore.Option) (postgresstore.Store, ExecFunc) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	dsn := config.PostgresSingleDSN()

	switch adapterType := os.Getenv(adapterTypeEnvVar); adapterType {
	case "", adapterPGXPool:
		pool, err := config.PostgresPGXPool(ctx, dsn)
		if err != nil {
			t.Skipf("postgres not reachable: %v", err)
		}
		t.Cleanup(pool.Close)

		store, err := postgresstore.NewStoreFromPGXPool(pool, options...)
		if err != nil {
			t.Fatalf("creating store failed: %v", err)
		}

		return store, func(ctx context.Context, statement string) error {
			_, execErr := pool.Exec(ctx, statement)
			return execErr
		}

	case adapterSQLDB:
		db, err := config.PostgresSQLDB(ctx, dsn)
		if err != nil {
			t.Skipf("postgres not reachable: %v", err)
		}
		t.Cleanup(func() { _ = db.Close() })

		store, err := postgresstore.NewStoreFromSQLDB(db, options...)
		if err != nil {
			t.Fatalf("creating store failed: %v", err)
		}

		return store, func(ctx context.Context, statement string) error {
			_, execErr := db.ExecContext(ctx, statement)
			return execErr
		}

	case adapterSQLXDB:
		db, err := config.PostgresSQLX(ctx, dsn)
		if err != nil {
			t.Skipf("postgres not reachable: %v", err)
		}
		t.Cleanup(func() { _ = db.Close() })

		store, err := postgresstore.NewStoreFromSQLX(db, options...)
		if err != nil {
			t.Fatalf("creating store failed: %v", err)
		}

		return store, func(ctx context.Context, statement string) error {
			_, execErr := db.ExecContext(ctx, statement)
			return execErr
		}

	default:
		panic(fmt.Sprintf("unsupported adapter type: %s", adapterType))
	}
}
