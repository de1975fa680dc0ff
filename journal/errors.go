package journal

import (
	"errors"
)

var (
	// ErrNilSequenceGenerator is returned when a Journal is created without a SequenceGenerator.
	ErrNilSequenceGenerator = errors.New("sequence generator must not be nil")

	// ErrIndexOutOfRange is returned when removing an entry at a position that does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrMultilineText is returned when the text of an entry contains a line separator.
	ErrMultilineText = errors.New("entry text must not contain line separators")

	// ErrMalformedEntry is returned when a rendered line can't be parsed back into an Entry.
	ErrMalformedEntry = errors.New("malformed journal entry")
)
