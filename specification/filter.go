package specification

import (
	"iter"
)

// Filter returns a lazy sequence of all items that satisfy the Specification, in their original order.
//
// The items slice is never modified. The sequence evaluates the Specification while it is being ranged over,
// so each range over it evaluates again.
//
// It returns ErrNilSpecification if the Specification (or any operand of a composite) is nil.
func Filter[T any](items []T, spec Specification[T]) (iter.Seq[T], error) {
	if err := Validate(spec); err != nil {
		return nil, err
	}

	return func(yield func(T) bool) {
		for _, item := range items {
			if !spec.IsSatisfiedBy(item) {
				continue
			}

			if !yield(item) {
				return
			}
		}
	}, nil
}
