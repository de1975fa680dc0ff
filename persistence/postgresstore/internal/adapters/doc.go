// Package adapters wraps the supported PostgreSQL client libraries (pgx, database/sql, sqlx)
// behind the small DBAdapter interface the journal store needs.
package adapters
