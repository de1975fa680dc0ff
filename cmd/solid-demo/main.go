// Command solid-demo prints the two console demos of this module:
// filtering products with composable specifications, and keeping a journal
// separate from the code that persists it.
//
// Usage:
//
//	solid-demo [-file books.txt] [-overwrite=true] [-postgres-dsn postgres://...] [-verbose]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/solid-principles-go/catalog"
	"github.com/AntonStoeckl/solid-principles-go/internal/config"
	"github.com/AntonStoeckl/solid-principles-go/journal"
	"github.com/AntonStoeckl/solid-principles-go/persistence"
	"github.com/AntonStoeckl/solid-principles-go/persistence/postgresstore"
	"github.com/AntonStoeckl/solid-principles-go/specification"
)

const (
	defaultFilename  = "books.txt"
	postgresTimeout  = 5 * time.Second
	separator        = "---------------------------------------------------------------"
	subSeparator     = "-------------------"
	exitCodeFailure  = 1
	logMsgDemoFailed = "demo failed"
	logAttrError     = "error"
)

func main() {
	var (
		filename    = flag.String("file", defaultFilename, "File the journal is saved to")
		overwrite   = flag.Bool("overwrite", true, "Overwrite the file if it already exists")
		postgresDSN = flag.String("postgres-dsn", "", "Also save the journal to PostgreSQL (table 'journals') if set")
		verbose     = flag.Bool("verbose", false, "Log debug output of the persistence layer")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := runFilterDemo(); err != nil {
		logger.Error(logMsgDemoFailed, logAttrError, err.Error())
		os.Exit(exitCodeFailure)
	}

	fmt.Println(separator)
	fmt.Println(separator)

	if err := runJournalDemo(logger, *filename, *overwrite, *postgresDSN); err != nil {
		logger.Error(logMsgDemoFailed, logAttrError, err.Error())
		os.Exit(exitCodeFailure)
	}
}

func runFilterDemo() error {
	products := []catalog.Product{
		catalog.BuildProduct("A Tale of Two Cities by Charles Dickens", catalog.AudioBook, catalog.Duodecimo),
		catalog.BuildProduct("The Lord of the Rings by J.R.R. Tolkien", catalog.AudioBook, catalog.Quarto),
		catalog.BuildProduct("The Da Vinci Code by Dan Brown", catalog.PrintedBook, catalog.Quarto),
	}

	demos := []struct {
		title  string
		suffix string
		spec   specification.Specification[catalog.Product]
	}{
		{
			title:  "Audiobook products:",
			suffix: "is audiobook",
			spec:   catalog.ByBookType(catalog.AudioBook),
		},
		{
			title:  "Quarto size products:",
			suffix: "is quarto size",
			spec:   catalog.BySize(catalog.Quarto),
		},
		{
			title:  "Quarto size printed book items:",
			suffix: "is quarto size and printed book",
			spec: specification.And[catalog.Product](
				catalog.ByBookType(catalog.PrintedBook),
				catalog.BySize(catalog.Quarto),
			),
		},
	}

	fmt.Println("Filtering with specifications")
	fmt.Println(subSeparator)

	for _, demo := range demos {
		matches, err := specification.Filter(products, demo.spec)
		if err != nil {
			return err
		}

		fmt.Println(demo.title)
		for product := range matches {
			fmt.Printf(" - %s %s\n", product.Name, demo.suffix)
		}
	}

	return nil
}

func runJournalDemo(logger *slog.Logger, filename string, overwrite bool, postgresDSN string) error {
	books, err := journal.New(journal.NewSequence())
	if err != nil {
		return err
	}

	for _, text := range []string{
		"A Tale of Two Cities by Charles Dickens, e-Book",
		"The Lord of the Rings by J.R.R. Tolkien, Audiobook",
		"The Da Vinci Code by Dan Brown, Audiobook",
	} {
		if err := books.Add(text); err != nil {
			return err
		}
	}

	fmt.Println("After adding three books and before removing one of them")
	fmt.Println(books)
	fmt.Println(subSeparator)

	if err := books.Remove(0); err != nil {
		return err
	}

	fmt.Println("After removing one of the books (index 0)")
	fmt.Println(books)

	p, err := persistence.New(persistence.WithLogger(logger))
	if err != nil {
		return err
	}

	if err := p.Save(books, filename, overwrite); err != nil {
		return err
	}

	fmt.Printf("Saved to %s (overwrite=%t)\n", filename, overwrite)

	if postgresDSN == "" {
		return nil
	}

	return saveToPostgres(logger, books, postgresDSN)
}

func saveToPostgres(logger *slog.Logger, books *journal.Journal, dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), postgresTimeout)
	defer cancel()

	pool, err := config.PostgresPGXPool(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	store, err := postgresstore.NewStoreFromPGXPool(pool, postgresstore.WithLogger(logger))
	if err != nil {
		return err
	}

	journalID, err := uuid.NewV7()
	if err != nil {
		return err
	}

	if err := store.Save(ctx, books, journalID, true); err != nil {
		return err
	}

	fmt.Printf("Saved to PostgreSQL as journal %s\n", journalID)

	return nil
}
