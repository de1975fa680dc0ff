package catalog

import (
	"github.com/AntonStoeckl/solid-principles-go/specification"
)

// BookTypeSpecification is satisfied by products of one BookType.
type BookTypeSpecification struct {
	specification.AttributeEqualsSpecification[Product, BookType]
}

// ByBookType selects products with the given BookType.
func ByBookType(bookType BookType) BookTypeSpecification {
	return BookTypeSpecification{
		AttributeEqualsSpecification: specification.AttributeEquals(
			func(p Product) BookType { return p.BookType },
			bookType,
		),
	}
}

// SizeSpecification is satisfied by products of one Size.
type SizeSpecification struct {
	specification.AttributeEqualsSpecification[Product, Size]
}

// BySize selects products with the given Size.
func BySize(size Size) SizeSpecification {
	return SizeSpecification{
		AttributeEqualsSpecification: specification.AttributeEquals(
			func(p Product) Size { return p.Size },
			size,
		),
	}
}
