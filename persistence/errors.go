package persistence

import (
	"errors"
)

var (
	// ErrNilJournal is returned when Save or Load is called without a journal.
	ErrNilJournal = errors.New("journal must not be nil")

	// ErrNilHTTPClient is returned when WithHTTPClient is called with nil.
	ErrNilHTTPClient = errors.New("http client must not be nil")

	// ErrInvalidFileMode is returned when WithFileMode is called with a mode that does not allow the owner to write.
	ErrInvalidFileMode = errors.New("file mode must allow the owner to write")

	// ErrSavingJournalFailed is returned when the destination can't be opened, written or closed.
	ErrSavingJournalFailed = errors.New("saving journal failed")

	// ErrLoadingJournalFailed is returned when the source can't be read or its content can't be parsed.
	ErrLoadingJournalFailed = errors.New("loading journal failed")

	// ErrSourceTooLarge is returned when a URL source serves more than 10 MiB.
	ErrSourceTooLarge = errors.New("journal source too large")

	// ErrUnsupportedSource is returned for a Source of unknown kind or with an unsupported URL scheme.
	ErrUnsupportedSource = errors.New("unsupported journal source")
)
