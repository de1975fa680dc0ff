package persistence

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"mime"
	"net/http"
	"net/url"
	"os"
	"reflect"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/solid-principles-go/journal"
)

const (
	defaultFileMode        = os.FileMode(0o644)
	defaultHTTPTimeout     = 10 * time.Second
	maxSourceBytes         = 10 << 20
	mediaTypeJSON          = "application/json"
	headerContentType      = "Content-Type"
	logMsgWriteSkipped     = "journal not saved, destination exists and overwrite is disabled"
	logMsgSaved            = "journal saved"
	logMsgSaveFailed       = "saving journal failed"
	logMsgCloseFailed      = "failed to close destination"
	logMsgLoaded           = "journal loaded"
	logMsgLoadFailed       = "loading journal failed"
	logMsgOpenDestination  = "opening destination"
	logMsgReadSource       = "reading source"
	logAttrError           = "error"
	logAttrDestination     = "destination"
	logAttrSource          = "source"
	logAttrOverwrite       = "overwrite"
	logAttrBytes           = "bytes"
	logAttrEntryCount      = "entry_count"
	logAttrDurationMS      = "duration_ms"
	metricSaveDuration     = "journal_save_duration_seconds"
	metricSavesTotal       = "journal_saves_total"
	metricLoadDuration     = "journal_load_duration_seconds"
	metricLoadsTotal       = "journal_loads_total"
	metricLoadedEntries    = "journal_loaded_entries"
	labelStatus            = "status"
	labelSourceKind        = "source_kind"
	statusSuccess          = "success"
	statusSkipped          = "skipped"
	statusError            = "error"
	fileFlagsOverwrite     = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	fileFlagsCreateOnly    = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	unexpectedStatusFormat = "unexpected http status %d from %s"
	sourceTooLargeFormat   = "%s exceeds %d bytes"
)

// entryDocument is the JSON representation of a journal.Entry in URL sources.
type entryDocument struct {
	SequenceNumber journal.SequenceNumberUint `json:"sequence_number"`
	Text           string                     `json:"text"`
}

// Persistence saves journals to files and loads them from files or URLs.
type Persistence struct {
	logger           Logger
	metricsCollector MetricsCollector
	httpClient       *http.Client
	fileMode         os.FileMode
}

// New creates Persistence with optional configuration.
func New(options ...Option) (Persistence, error) {
	p := Persistence{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		fileMode:   defaultFileMode,
	}

	for _, option := range options {
		if err := option(&p); err != nil {
			return Persistence{}, err
		}
	}

	return p, nil
}

// Save writes the rendered journal, followed by a newline, to the file.
//
// If overwrite is false and the file already exists, nothing is written and no error is returned.
// Callers that need confirmation of the write must check the file themselves.
//
// Failures to open, write or close the file are returned as ErrSavingJournalFailed joined with the cause.
// The file is closed on every path.
func (p Persistence) Save(j fmt.Stringer, filename string, overwrite bool) (err error) {
	if isNil(j) {
		return ErrNilJournal
	}

	start := time.Now()
	defer func() {
		p.recordDuration(metricSaveDuration, time.Since(start), nil)
	}()

	flags := fileFlagsOverwrite
	if !overwrite {
		flags = fileFlagsCreateOnly
	}

	p.logDebug(logMsgOpenDestination, logAttrDestination, filename, logAttrOverwrite, overwrite)

	file, openErr := os.OpenFile(filename, flags, p.fileMode)
	if openErr != nil {
		if !overwrite && errors.Is(openErr, fs.ErrExist) {
			p.logInfo(logMsgWriteSkipped, logAttrDestination, filename)
			p.incrementCounter(metricSavesTotal, map[string]string{labelStatus: statusSkipped})

			return nil
		}

		return p.saveFailed(filename, openErr)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			p.logWarn(logMsgCloseFailed, logAttrDestination, filename, logAttrError, closeErr.Error())

			if err == nil {
				err = p.saveFailed(filename, closeErr)
			}
		}
	}()

	n, writeErr := io.WriteString(file, j.String()+"\n")
	if writeErr != nil {
		return p.saveFailed(filename, writeErr)
	}

	p.logInfo(
		logMsgSaved,
		logAttrDestination, filename,
		logAttrBytes, n,
		logAttrDurationMS, durationToMilliseconds(time.Since(start)),
	)
	p.incrementCounter(metricSavesTotal, map[string]string{labelStatus: statusSuccess})

	return nil
}

func (p Persistence) saveFailed(filename string, cause error) error {
	p.logError(logMsgSaveFailed, logAttrDestination, filename, logAttrError, cause.Error())
	p.incrementCounter(metricSavesTotal, map[string]string{labelStatus: statusError})

	return errors.Join(ErrSavingJournalFailed, cause)
}

// Load reads entries from the Source and hands them to the Restorer, replacing its content.
// On failure, the Restorer is not touched.
func (p Persistence) Load(ctx context.Context, target Restorer, source Source) error {
	if isNil(target) {
		return ErrNilJournal
	}

	start := time.Now()
	labels := map[string]string{labelSourceKind: source.Kind().String()}
	defer func() {
		p.recordDuration(metricLoadDuration, time.Since(start), labels)
	}()

	p.logDebug(logMsgReadSource, logAttrSource, source.String())

	var entries []journal.Entry
	var readErr error

	switch source.Kind() {
	case SourceKindFile:
		entries, readErr = p.readFile(source.Location())

	case SourceKindURL:
		entries, readErr = p.fetchURL(ctx, source.Location())

	default:
		readErr = ErrUnsupportedSource
	}

	if readErr == nil {
		readErr = target.Restore(entries)
	}

	if readErr != nil {
		p.logError(logMsgLoadFailed, logAttrSource, source.String(), logAttrError, readErr.Error())
		p.incrementCounter(metricLoadsTotal, withStatus(labels, statusError))

		if errors.Is(readErr, ErrUnsupportedSource) {
			return readErr
		}

		return errors.Join(ErrLoadingJournalFailed, readErr)
	}

	p.logInfo(
		logMsgLoaded,
		logAttrSource, source.String(),
		logAttrEntryCount, len(entries),
		logAttrDurationMS, durationToMilliseconds(time.Since(start)),
	)
	p.incrementCounter(metricLoadsTotal, withStatus(labels, statusSuccess))
	p.recordValue(metricLoadedEntries, float64(len(entries)), labels)

	return nil
}

func (p Persistence) readFile(path string) ([]journal.Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return journal.ParseRendered(string(content))
}

func (p Persistence) fetchURL(ctx context.Context, rawURL string) ([]journal.Entry, error) {
	parsed, parseErr := url.Parse(rawURL)
	if parseErr != nil {
		return nil, errors.Join(ErrUnsupportedSource, parseErr)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.Join(ErrUnsupportedSource, fmt.Errorf("scheme %q", parsed.Scheme))
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if reqErr != nil {
		return nil, reqErr
	}

	resp, doErr := p.httpClient.Do(req)
	if doErr != nil {
		return nil, doErr
	}
	defer p.closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(unexpectedStatusFormat, resp.StatusCode, rawURL)
	}

	content, readErr := io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes+1))
	if readErr != nil {
		return nil, readErr
	}

	if len(content) > maxSourceBytes {
		return nil, errors.Join(ErrSourceTooLarge, fmt.Errorf(sourceTooLargeFormat, rawURL, maxSourceBytes))
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get(headerContentType))
	if mediaType == mediaTypeJSON {
		return decodeEntryDocuments(content)
	}

	return journal.ParseRendered(string(content))
}

func decodeEntryDocuments(content []byte) ([]journal.Entry, error) {
	var documents []entryDocument
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(content, &documents); err != nil {
		return nil, err
	}

	entries := make([]journal.Entry, 0, len(documents))
	for _, d := range documents {
		entries = append(entries, journal.Entry{SequenceNumber: d.SequenceNumber, Text: d.Text})
	}

	return entries, nil
}

func (p Persistence) closeBody(body io.Closer) {
	if closeErr := body.Close(); closeErr != nil {
		p.logWarn(logMsgCloseFailed, logAttrError, closeErr.Error())
	}
}

// isNil also catches typed nil pointers wrapped in an interface, e.g. a nil *journal.Journal.
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

func withStatus(labels map[string]string, status string) map[string]string {
	result := make(map[string]string, len(labels)+1)
	for k, v := range labels {
		result[k] = v
	}
	result[labelStatus] = status

	return result
}

func (p Persistence) logDebug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p Persistence) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p Persistence) logWarn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

func (p Persistence) logError(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Error(msg, args...)
	}
}

func (p Persistence) recordDuration(metric string, d time.Duration, labels map[string]string) {
	if p.metricsCollector != nil {
		p.metricsCollector.RecordDuration(metric, d, labels)
	}
}

func (p Persistence) incrementCounter(metric string, labels map[string]string) {
	if p.metricsCollector != nil {
		p.metricsCollector.IncrementCounter(metric, labels)
	}
}

func (p Persistence) recordValue(metric string, value float64, labels map[string]string) {
	if p.metricsCollector != nil {
		p.metricsCollector.RecordValue(metric, value, labels)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
