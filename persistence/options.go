package persistence

import (
	"net/http"
	"os"
	"time"

	"github.com/AntonStoeckl/solid-principles-go/journal"
)

// Logger interface for operational logging, warnings, and error reporting. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting durations and counts of save and load operations.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// Restorer is implemented by anything that can take over loaded entries, e.g. *journal.Journal.
type Restorer interface {
	Restore(entries []journal.Entry) error
}

// Option defines a functional option for configuring Persistence.
type Option func(*Persistence) error

// WithLogger sets the logger for Persistence.
//
// Debug level: source and destination details
// Info level: completed and skipped writes, loaded entry counts
// Error level: failures that are returned to the caller.
func WithLogger(logger Logger) Option {
	return func(p *Persistence) error {
		p.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for Persistence.
func WithMetrics(collector MetricsCollector) Option {
	return func(p *Persistence) error {
		p.metricsCollector = collector
		return nil
	}
}

// WithHTTPClient sets the client used to load journals from URL sources.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Persistence) error {
		if client == nil {
			return ErrNilHTTPClient
		}

		p.httpClient = client

		return nil
	}
}

// WithFileMode sets the permissions of files created by Save.
func WithFileMode(mode os.FileMode) Option {
	return func(p *Persistence) error {
		if mode&0o200 == 0 {
			return ErrInvalidFileMode
		}

		p.fileMode = mode

		return nil
	}
}
