package postgresstore

import (
	"errors"
)

var (
	// ErrNilDatabaseConnection is returned when a Store is created without a database connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyTableName is returned when WithTableName is called with an empty name.
	ErrEmptyTableName = errors.New("table name must not be empty")

	// ErrNilJournalID is returned when saving or loading with the zero UUID.
	ErrNilJournalID = errors.New("journal id must not be the nil uuid")

	// ErrBuildingQueryFailed is returned when goqu can't render a SQL statement.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrJournalNotFound is returned by Load when no snapshot exists for the journal id.
	ErrJournalNotFound = errors.New("journal not found")
)
