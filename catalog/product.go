package catalog

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownBookType is returned when a string does not name a known BookType.
	ErrUnknownBookType = errors.New("unknown book type")

	// ErrUnknownSize is returned when a string does not name a known Size.
	ErrUnknownSize = errors.New("unknown size")
)

// BookType is the format in which a book product is sold.
type BookType int

const (
	EBook BookType = iota
	AudioBook
	PrintedBook
)

var bookTypeNames = map[BookType]string{
	EBook:       "EBook",
	AudioBook:   "AudioBook",
	PrintedBook: "PrintedBook",
}

func (bt BookType) String() string {
	if name, ok := bookTypeNames[bt]; ok {
		return name
	}

	return "BookType(unknown)"
}

// ParseBookType is the inverse of BookType.String, ignoring case.
func ParseBookType(s string) (BookType, error) {
	for bt, name := range bookTypeNames {
		if strings.EqualFold(name, s) {
			return bt, nil
		}
	}

	return 0, errors.Join(ErrUnknownBookType, errors.New(s))
}

// Size is the physical page format of a book product.
type Size int

const (
	Duodecimo Size = iota
	Octavo
	Quarto
	Folio
)

var sizeNames = map[Size]string{
	Duodecimo: "Duodecimo",
	Octavo:    "Octavo",
	Quarto:    "Quarto",
	Folio:     "Folio",
}

func (s Size) String() string {
	if name, ok := sizeNames[s]; ok {
		return name
	}

	return "Size(unknown)"
}

// ParseSize is the inverse of Size.String, ignoring case.
func ParseSize(s string) (Size, error) {
	for size, name := range sizeNames {
		if strings.EqualFold(name, s) {
			return size, nil
		}
	}

	return 0, errors.Join(ErrUnknownSize, errors.New(s))
}

// Product is an immutable book product.
type Product struct {
	Name     string
	BookType BookType
	Size     Size
}

// BuildProduct creates a Product.
func BuildProduct(name string, bookType BookType, size Size) Product {
	return Product{Name: name, BookType: bookType, Size: size}
}
