package journal

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const lineSeparator = "\n"

// Journal is an ordered list of numbered text entries.
// It is not safe for concurrent use.
type Journal struct {
	entries   []Entry
	generator SequenceGenerator
}

// New creates an empty Journal numbering its entries with the given SequenceGenerator.
func New(generator SequenceGenerator) (*Journal, error) {
	if generator == nil {
		return nil, ErrNilSequenceGenerator
	}

	return &Journal{
		entries:   make([]Entry, 0),
		generator: generator,
	}, nil
}

// Add appends a new entry with the next sequence number.
// Text containing a line separator is rejected with ErrMultilineText, no number is consumed then.
func (j *Journal) Add(text string) error {
	if containsLineBreak(text) {
		return ErrMultilineText
	}

	j.entries = append(j.entries, Entry{SequenceNumber: j.generator.Next(), Text: text})

	return nil
}

// Remove deletes the entry at the given position. The sequence numbers of all other entries stay the same.
func (j *Journal) Remove(index int) error {
	if index < 0 || index >= len(j.entries) {
		return errors.Join(
			ErrIndexOutOfRange,
			fmt.Errorf("index %d, length %d", index, len(j.entries)),
		)
	}

	j.entries = slices.Delete(j.entries, index, index+1)

	return nil
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Entries returns a copy of all entries in their current order.
func (j *Journal) Entries() []Entry {
	return slices.Clone(j.entries)
}

// Restore replaces all entries, e.g. with entries loaded from storage.
// The SequenceGenerator is advanced past the highest restored number, so it is never handed out again.
// Zero or duplicate sequence numbers and multiline texts are rejected before anything is replaced.
func (j *Journal) Restore(entries []Entry) error {
	seen := make(map[SequenceNumberUint]struct{}, len(entries))

	for _, entry := range entries {
		if entry.SequenceNumber == 0 {
			return errors.Join(ErrMalformedEntry, errors.New("sequence number must be positive"))
		}

		if _, duplicate := seen[entry.SequenceNumber]; duplicate {
			return errors.Join(ErrMalformedEntry, fmt.Errorf("duplicate sequence number %d", entry.SequenceNumber))
		}
		seen[entry.SequenceNumber] = struct{}{}

		if containsLineBreak(entry.Text) {
			return errors.Join(ErrMalformedEntry, ErrMultilineText)
		}
	}

	j.entries = append(make([]Entry, 0, len(entries)), entries...)

	for _, entry := range entries {
		j.generator.AdvancePast(entry.SequenceNumber)
	}

	return nil
}

// String renders all entries, one per line, in their current order.
// An empty Journal renders as an empty string.
func (j *Journal) String() string {
	lines := make([]string, 0, len(j.entries))
	for _, entry := range j.entries {
		lines = append(lines, entry.String())
	}

	return strings.Join(lines, lineSeparator)
}

func containsLineBreak(text string) bool {
	return strings.ContainsAny(text, "\r\n")
}
