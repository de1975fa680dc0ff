package specification

import (
	"errors"
)

// ErrNilSpecification is returned when a nil Specification is supplied, either directly
// or as an operand of a composite Specification.
var ErrNilSpecification = errors.New("specification must not be nil")
