package postgresstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/solid-principles-go/journal"
	"github.com/AntonStoeckl/solid-principles-go/persistence"
	"github.com/AntonStoeckl/solid-principles-go/persistence/postgresstore/internal/adapters"
)

const (
	defaultTableName             = "journals"
	dialectPostgres              = "postgres"
	colJournalID                 = "journal_id"
	colContent                   = "content"
	colEntryCount                = "entry_count"
	colSavedAt                   = "saved_at"
	excludedPrefix               = "EXCLUDED."
	logMsgBuildInsertQueryFailed = "failed to build insert query"
	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgDBExecFailed           = "database execution failed during journal save"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgParseContentFailed     = "failed to parse journal content"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "journal store operation: "
	logMsgSaved                  = "journal saved"
	logMsgSaveSkipped            = "journal not saved, snapshot exists and overwrite is disabled"
	logMsgLoaded                 = "journal loaded"
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrJournalID             = "journal_id"
	logAttrEntryCount            = "entry_count"
	logAttrRowsAffected          = "rows_affected"
	logAttrDurationMS            = "duration_ms"
	logActionSave                = "save"
	logActionLoad                = "load"
	metricSaveDuration           = "journal_store_save_duration_seconds"
	metricSavesTotal             = "journal_store_saves_total"
	metricLoadDuration           = "journal_store_load_duration_seconds"
	metricLoadsTotal             = "journal_store_loads_total"
	labelStatus                  = "status"
	statusSuccess                = "success"
	statusSkipped                = "skipped"
	statusNotFound               = "not_found"
	statusError                  = "error"
)

type sqlQueryString = string

// Store saves and loads journal snapshots in a PostgreSQL table.
type Store struct {
	db               adapters.DBAdapter
	tableName        string
	logger           persistence.Logger
	metricsCollector persistence.MetricsCollector
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), options...)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), options...)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), options...)
}

func newStore(db adapters.DBAdapter, options ...Option) (Store, error) {
	s := Store{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&s); err != nil {
			return Store{}, err
		}
	}

	return s, nil
}

// Save stores the rendered journal as the snapshot for journalID.
//
// If overwrite is false and a snapshot for journalID exists, nothing is written and no error is returned.
// Database failures are returned as persistence.ErrSavingJournalFailed joined with the cause.
func (s Store) Save(ctx context.Context, j fmt.Stringer, journalID uuid.UUID, overwrite bool) error {
	if isNil(j) {
		return persistence.ErrNilJournal
	}

	if journalID == uuid.Nil {
		return ErrNilJournalID
	}

	start := time.Now()
	defer func() {
		s.recordDuration(metricSaveDuration, time.Since(start))
	}()

	content := j.String()

	entries, parseErr := journal.ParseRendered(content)
	if parseErr != nil {
		s.logError(logMsgParseContentFailed, logAttrError, parseErr.Error(), logAttrJournalID, journalID.String())
		s.incrementCounter(metricSavesTotal, statusError)

		return errors.Join(persistence.ErrSavingJournalFailed, parseErr)
	}

	sqlQuery, buildQueryErr := s.buildUpsertQuery(journalID, content, len(entries), overwrite)
	if buildQueryErr != nil {
		s.logError(logMsgBuildInsertQueryFailed, logAttrError, buildQueryErr.Error())
		s.incrementCounter(metricSavesTotal, statusError)

		return errors.Join(persistence.ErrSavingJournalFailed, buildQueryErr)
	}

	rowsAffected, execErr := s.executeSave(ctx, sqlQuery)
	if execErr != nil {
		s.incrementCounter(metricSavesTotal, statusError)

		return errors.Join(persistence.ErrSavingJournalFailed, execErr)
	}

	if rowsAffected == 0 {
		s.logOperation(logMsgSaveSkipped, logAttrJournalID, journalID.String(), logAttrRowsAffected, rowsAffected)
		s.incrementCounter(metricSavesTotal, statusSkipped)

		return nil
	}

	s.logOperation(
		logMsgSaved,
		logAttrJournalID, journalID.String(),
		logAttrEntryCount, len(entries),
		logAttrDurationMS, durationToMilliseconds(time.Since(start)),
	)
	s.incrementCounter(metricSavesTotal, statusSuccess)

	return nil
}

// executeSave executes the upsert statement and returns the number of affected rows.
func (s Store) executeSave(ctx context.Context, sqlQuery sqlQueryString) (int64, error) {
	start := time.Now()
	result, execErr := s.db.Exec(ctx, sqlQuery)
	s.logQueryWithDuration(sqlQuery, logActionSave, time.Since(start))

	if execErr != nil {
		s.logError(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		return 0, execErr
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		s.logError(logMsgRowsAffectedFailed, logAttrError, rowsAffectedErr.Error())
		return 0, rowsAffectedErr
	}

	return rowsAffected, nil
}

// Load replaces the entries of the target with the snapshot stored for journalID.
// On failure, the target is not touched.
func (s Store) Load(ctx context.Context, target persistence.Restorer, journalID uuid.UUID) error {
	if isNil(target) {
		return persistence.ErrNilJournal
	}

	if journalID == uuid.Nil {
		return ErrNilJournalID
	}

	start := time.Now()
	defer func() {
		s.recordDuration(metricLoadDuration, time.Since(start))
	}()

	content, queryErr := s.queryContent(ctx, journalID)
	if queryErr != nil {
		if errors.Is(queryErr, ErrJournalNotFound) {
			s.incrementCounter(metricLoadsTotal, statusNotFound)
			return queryErr
		}

		s.incrementCounter(metricLoadsTotal, statusError)

		return errors.Join(persistence.ErrLoadingJournalFailed, queryErr)
	}

	entries, parseErr := journal.ParseRendered(content)
	if parseErr == nil {
		parseErr = target.Restore(entries)
	}

	if parseErr != nil {
		s.logError(logMsgParseContentFailed, logAttrError, parseErr.Error(), logAttrJournalID, journalID.String())
		s.incrementCounter(metricLoadsTotal, statusError)

		return errors.Join(persistence.ErrLoadingJournalFailed, parseErr)
	}

	s.logOperation(
		logMsgLoaded,
		logAttrJournalID, journalID.String(),
		logAttrEntryCount, len(entries),
		logAttrDurationMS, durationToMilliseconds(time.Since(start)),
	)
	s.incrementCounter(metricLoadsTotal, statusSuccess)

	return nil
}

// queryContent selects the stored content for journalID.
func (s Store) queryContent(ctx context.Context, journalID uuid.UUID) (string, error) {
	sqlQuery, buildQueryErr := s.buildSelectQuery(journalID)
	if buildQueryErr != nil {
		s.logError(logMsgBuildSelectQueryFailed, logAttrError, buildQueryErr.Error())
		return "", buildQueryErr
	}

	start := time.Now()
	rows, queryErr := s.db.Query(ctx, sqlQuery)
	s.logQueryWithDuration(sqlQuery, logActionLoad, time.Since(start))

	if queryErr != nil {
		s.logError(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		return "", queryErr
	}
	defer s.closeRows(rows)

	if !rows.Next() {
		if rowsErr := rows.Err(); rowsErr != nil {
			s.logError(logMsgDBQueryFailed, logAttrError, rowsErr.Error(), logAttrQuery, sqlQuery)
			return "", rowsErr
		}

		return "", errors.Join(ErrJournalNotFound, fmt.Errorf("journal id %s", journalID))
	}

	var content string
	if scanErr := rows.Scan(&content); scanErr != nil {
		s.logError(logMsgScanRowFailed, logAttrError, scanErr.Error())
		return "", scanErr
	}

	return content, nil
}

// closeRows safely closes database rows and logs any errors.
func (s Store) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		s.logWarn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

func (s Store) buildUpsertQuery(
	journalID uuid.UUID,
	content string,
	entryCount int,
	overwrite bool,
) (sqlQueryString, error) {

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(s.tableName).
		Rows(goqu.Record{
			colJournalID:  journalID.String(),
			colContent:    content,
			colEntryCount: entryCount,
			colSavedAt:    time.Now().UTC(),
		})

	if overwrite {
		insertStmt = insertStmt.OnConflict(
			goqu.DoUpdate(colJournalID, goqu.Record{
				colContent:    goqu.L(excludedPrefix + colContent),
				colEntryCount: goqu.L(excludedPrefix + colEntryCount),
				colSavedAt:    goqu.L(excludedPrefix + colSavedAt),
			}),
		)
	} else {
		insertStmt = insertStmt.OnConflict(goqu.DoNothing())
	}

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (s Store) buildSelectQuery(journalID uuid.UUID) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.tableName).
		Select(colContent).
		Where(goqu.Ex{colJournalID: journalID.String()}).
		Limit(1)

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// logQueryWithDuration logs SQL statements with execution time at debug level if the logger is configured.
func (s Store) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (s Store) logOperation(action string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}

func (s Store) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s Store) logError(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, args...)
	}
}

func (s Store) recordDuration(metric string, d time.Duration) {
	if s.metricsCollector != nil {
		s.metricsCollector.RecordDuration(metric, d, nil)
	}
}

func (s Store) incrementCounter(metric string, status string) {
	if s.metricsCollector != nil {
		s.metricsCollector.IncrementCounter(metric, map[string]string{labelStatus: status})
	}
}

// isNil also catches typed nil pointers wrapped in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
