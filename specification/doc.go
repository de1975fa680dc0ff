// Package specification provides composable predicates over arbitrary items and a lazy filter
// that applies them.
//
// A Specification classifies a single item. New criteria are added by writing new
// Specification implementations (or wrapping a function in SpecificationFunc), and
// existing ones are combined with And, Or and Not. Filter itself never changes when
// criteria are added.
//
// Common usage pattern:
//
//	audioBooksInQuarto := specification.And[catalog.Product](
//		catalog.ByBookType(catalog.AudioBook),
//		catalog.BySize(catalog.Quarto),
//	)
//
//	matches, err := specification.Filter[catalog.Product](products, audioBooksInQuarto)
//	if err != nil {
//		// handle error
//	}
//
//	for product := range matches {
//		fmt.Println(product.Name)
//	}
package specification
