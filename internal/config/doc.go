// Package config provides PostgreSQL database configuration for the demo and the journal store tests.
//
// It contains factory functions for creating database connections using the supported
// PostgreSQL client libraries (pgx.Pool, sql.DB, sqlx.DB) with a pre-configured test DSN.
// All factories ping the database and return the error, tests skip on it.
package config
