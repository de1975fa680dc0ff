// Package persistence stores journals and loads them back, so that the journal package does not
// need to know anything about files, URLs or formats.
//
// Saving only depends on the rendered text of a journal (fmt.Stringer). Loading restores
// entries through the Restorer interface from a Source, which is either a file or a URL:
//
//	p, _ := persistence.New(persistence.WithLogger(slog.Default()))
//
//	// overwrite=false silently skips the write if books.txt already exists
//	err := p.Save(books, "books.txt", true)
//
//	err = p.Load(ctx, books, persistence.FromFile("books.txt"))
//	err = p.Load(ctx, books, persistence.FromURL("https://example.com/books.txt"))
//
// Sources served as application/json are decoded as an array of
// {"sequence_number": 1, "text": "..."} objects, all other content is parsed as rendered journal text.
package persistence
