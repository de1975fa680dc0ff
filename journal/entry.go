package journal

import (
	"errors"
	"strconv"
	"strings"
)

const entrySeparator = ": "

// Entry is a single numbered line of a Journal.
type Entry struct {
	SequenceNumber SequenceNumberUint
	Text           string
}

// String renders the Entry as "<sequence_number>: <text>".
func (e Entry) String() string {
	return strconv.FormatUint(e.SequenceNumber, 10) + entrySeparator + e.Text
}

// ParseEntry is the inverse of Entry.String.
func ParseEntry(line string) (Entry, error) {
	number, text, found := strings.Cut(line, entrySeparator)
	if !found {
		return Entry{}, errors.Join(ErrMalformedEntry, errors.New("missing separator: "+line))
	}

	sequenceNumber, parseErr := strconv.ParseUint(number, 10, 64)
	if parseErr != nil || sequenceNumber == 0 {
		return Entry{}, errors.Join(ErrMalformedEntry, errors.New("invalid sequence number: "+line))
	}

	return Entry{SequenceNumber: sequenceNumber, Text: text}, nil
}

// ParseRendered parses the output of Journal.String (optionally with a trailing newline) into entries.
// Blank lines are skipped.
func ParseRendered(rendered string) ([]Entry, error) {
	entries := make([]Entry, 0)

	for _, line := range strings.Split(rendered, lineSeparator) {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		entry, err := ParseEntry(line)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
