// Package postgresstore stores rendered journals as snapshots in PostgreSQL.
//
// Each journal is identified by a UUID and stored as one row holding its rendered text.
// Saving is a single INSERT ... ON CONFLICT statement: with overwrite enabled an existing
// snapshot is replaced, otherwise the statement does nothing and the save is silently skipped,
// matching the behavior of file based persistence.
//
// Expected table layout (the table name is configurable with WithTableName):
//
//	CREATE TABLE journals (
//		journal_id  uuid PRIMARY KEY,
//		content     text NOT NULL,
//		entry_count integer NOT NULL,
//		saved_at    timestamp with time zone NOT NULL
//	);
//
// Usage examples:
//
//	db, _ := pgxpool.New(context.Background(), dsn)
//	store, _ := postgresstore.NewStoreFromPGXPool(db, postgresstore.WithLogger(slog.Default()))
//
//	journalID := uuid.New()
//	err := store.Save(ctx, books, journalID, true)
//	err = store.Load(ctx, books, journalID)
package postgresstore
