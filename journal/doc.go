// Package journal provides an ordered, in-memory list of numbered text entries.
//
// A Journal only knows how to change its entries and how to render them as text. Where and how
// a Journal is stored is the concern of the persistence package, which works with the rendered
// text only.
//
// Every entry is exactly one line of the rendered text: Add rejects texts containing line separators,
// so ParseRendered always inverts String.
//
// Entries are numbered by an injected SequenceGenerator. Journals sharing one Sequence never
// reuse a number, also not after entries were removed:
//
//	seq := journal.NewSequence()
//	books, _ := journal.New(seq)
//
//	_ = books.Add("A Tale of Two Cities by Charles Dickens, e-Book")
//	_ = books.Add("The Lord of the Rings by J.R.R. Tolkien, Audiobook")
//	_ = books.Remove(0)
//
//	fmt.Println(books) // 2: The Lord of the Rings by J.R.R. Tolkien, Audiobook
package journal
