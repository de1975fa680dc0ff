package journal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/solid-principles-go/journal"
)

func givenJournal(t *testing.T, seq journal.SequenceGenerator) *journal.Journal {
	j, err := journal.New(seq)
	require.NoError(t, err, "error in arranging test data")

	return j
}

func Test_New_ShouldFail_WithNilGenerator(t *testing.T) {
	j, err := journal.New(nil)

	assert.ErrorIs(t, err, journal.ErrNilSequenceGenerator)
	assert.Nil(t, j)
}

func Test_Add_NumbersEntriesFromOne(t *testing.T) {
	j := givenJournal(t, journal.NewSequence())

	require.NoError(t, j.Add("x"))
	require.NoError(t, j.Add("y"))

	assert.Equal(t, "1: x\n2: y", j.String())
	assert.Equal(t, 2, j.Len())
}

func Test_Remove_KeepsOriginalSequenceNumbers(t *testing.T) {
	j := givenJournal(t, journal.NewSequence())
	require.NoError(t, j.Add("x"))
	require.NoError(t, j.Add("y"))
	require.NoError(t, j.Add("z"))

	err := j.Remove(0)

	require.NoError(t, err)
	assert.Equal(t, "2: y\n3: z", j.String())
}

func Test_Remove_ShouldFail_WithIndexOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{name: "negative", index: -1},
		{name: "equal_to_length", index: 2},
		{name: "far_beyond_length", index: 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			j := givenJournal(t, journal.NewSequence())
			require.NoError(t, j.Add("x"))
			require.NoError(t, j.Add("y"))

			err := j.Remove(tc.index)

			assert.ErrorIs(t, err, journal.ErrIndexOutOfRange)
			assert.Equal(t, "1: x\n2: y", j.String(), "a failed remove must not change the journal")
		})
	}
}

func Test_Remove_ShouldFail_OnEmptyJournal(t *testing.T) {
	j := givenJournal(t, journal.NewSequence())

	assert.ErrorIs(t, j.Remove(0), journal.ErrIndexOutOfRange)
}

func Test_String_EmptyJournal(t *testing.T) {
	j := givenJournal(t, journal.NewSequence())

	assert.Equal(t, "", j.String())
}

func Test_SequenceNumbers_AreNeverReused_AfterRemovals(t *testing.T) {
	j := givenJournal(t, journal.NewSequence())
	require.NoError(t, j.Add("a"))
	require.NoError(t, j.Add("b"))
	require.NoError(t, j.Remove(1))
	require.NoError(t, j.Remove(0))

	require.NoError(t, j.Add("c"))

	assert.Equal(t, "3: c", j.String())
}

func Test_SharedSequence_NumbersAcrossJournals(t *testing.T) {
	seq := journal.NewSequence()
	first := givenJournal(t, seq)
	second := givenJournal(t, seq)

	require.NoError(t, first.Add("a"))
	require.NoError(t, second.Add("b"))
	require.NoError(t, first.Add("c"))

	assert.Equal(t, "1: a\n3: c", first.String())
	assert.Equal(t, "2: b", second.String())
}

func Test_SeparateSequences_AreIndependent(t *testing.T) {
	first := givenJournal(t, journal.NewSequence())
	second := givenJournal(t, journal.NewSequence())

	require.NoError(t, first.Add("a"))
	require.NoError(t, second.Add("b"))

	assert.Equal(t, "1: a", first.String())
	assert.Equal(t, "1: b", second.String())
}

func Test_Entries_ReturnsCopy(t *testing.T) {
	j := givenJournal(t, journal.NewSequence())
	require.NoError(t, j.Add("a"))

	entries := j.Entries()
	entries[0].Text = "changed"

	assert.Equal(t, "1: a", j.String())
	assert.Equal(t, []journal.Entry{{SequenceNumber: 1, Text: "a"}}, j.Entries())
}

func Test_Restore_ReplacesEntries_AndAdvancesSequence(t *testing.T) {
	seq := journal.NewSequence()
	j := givenJournal(t, seq)
	require.NoError(t, j.Add("dropped"))

	err := j.Restore([]journal.Entry{
		{SequenceNumber: 7, Text: "seven"},
		{SequenceNumber: 4, Text: "four"},
	})
	require.NoError(t, err)
	require.NoError(t, j.Add("next"))

	assert.Equal(t, "7: seven\n4: four\n8: next", j.String())
}

func Test_Restore_ShouldFail_WithZeroSequenceNumber(t *testing.T) {
	j := givenJournal(t, journal.NewSequence())
	require.NoError(t, j.Add("kept"))

	err := j.Restore([]journal.Entry{{SequenceNumber: 0, Text: "invalid"}})

	assert.ErrorIs(t, err, journal.ErrMalformedEntry)
	assert.Equal(t, "1: kept", j.String())
}

func Test_Add_ShouldFail_WithLineSeparators(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "newline", text: "first line\nsecond line"},
		{name: "injected_entry", text: "x\n7: injected"},
		{name: "carriage_return", text: "x\ry"},
		{name: "crlf", text: "x\r\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			j := givenJournal(t, journal.NewSequence())
			require.NoError(t, j.Add("kept"))

			err := j.Add(tc.text)

			assert.ErrorIs(t, err, journal.ErrMultilineText)
			assert.Equal(t, "1: kept", j.String())

			require.NoError(t, j.Add("next"))
			assert.Equal(t, "1: kept\n2: next", j.String(), "a rejected text must not consume a sequence number")
		})
	}
}

func Test_String_IsInvertedByParseRendered(t *testing.T) {
	j := givenJournal(t, journal.NewSequence())
	require.NoError(t, j.Add("a: with separator"))
	assert.Error(t, j.Add("b\n9: injected"))
	require.NoError(t, j.Add(""))

	entries, err := journal.ParseRendered(j.String())

	require.NoError(t, err)
	assert.Equal(t, j.Entries(), entries)
}

func Test_Restore_ShouldFail_WithDuplicateSequenceNumbers(t *testing.T) {
	seq := journal.NewSequence()
	j := givenJournal(t, seq)
	require.NoError(t, j.Add("kept"))

	err := j.Restore([]journal.Entry{
		{SequenceNumber: 2, Text: "a"},
		{SequenceNumber: 2, Text: "b"},
	})

	assert.ErrorIs(t, err, journal.ErrMalformedEntry)
	assert.Equal(t, "1: kept", j.String())

	require.NoError(t, j.Add("next"))
	assert.Equal(t, "1: kept\n2: next", j.String(), "a failed restore must not advance the sequence")
}

func Test_Restore_ShouldFail_WithMultilineText(t *testing.T) {
	j := givenJournal(t, journal.NewSequence())
	require.NoError(t, j.Add("kept"))

	err := j.Restore([]journal.Entry{{SequenceNumber: 3, Text: "x\n7: injected"}})

	assert.ErrorIs(t, err, journal.ErrMalformedEntry)
	assert.ErrorIs(t, err, journal.ErrMultilineText)
	assert.Equal(t, "1: kept", j.String())
}
