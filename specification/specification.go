package specification

// Specification is a pure predicate over one item.
// Implementations must classify a given item identically on every call.
type Specification[T any] interface {
	IsSatisfiedBy(item T) bool
}

/***** SpecificationFunc *****/

// SpecificationFunc is a functional binding for Specification.
//
// Example:
//
//	expensive := SpecificationFunc[Product](func(p Product) bool {
//	    return p.Price > 100
//	})
type SpecificationFunc[T any] func(item T) bool

// IsSatisfiedBy implements Specification.
func (f SpecificationFunc[T]) IsSatisfiedBy(item T) bool {
	return f(item)
}

/***** AttributeEqualsSpecification *****/

// AttributeEqualsSpecification is satisfied when the selected attribute of an item equals the target value.
type AttributeEqualsSpecification[T any, V comparable] struct {
	attribute func(T) V
	target    V
}

// AttributeEquals builds an AttributeEqualsSpecification for the given attribute selector and target value.
func AttributeEquals[T any, V comparable](attribute func(T) V, target V) AttributeEqualsSpecification[T, V] {
	return AttributeEqualsSpecification[T, V]{attribute: attribute, target: target}
}

// IsSatisfiedBy implements Specification.
func (s AttributeEqualsSpecification[T, V]) IsSatisfiedBy(item T) bool {
	return s.attribute(item) == s.target
}

// Target returns the value the attribute is compared against.
func (s AttributeEqualsSpecification[T, V]) Target() V {
	return s.target
}

/***** AndSpecification *****/

// AndSpecification is satisfied if both of its operands are satisfied.
// The second operand is not evaluated when the first one is not satisfied.
type AndSpecification[T any] struct {
	first  Specification[T]
	second Specification[T]
}

// And combines two Specification(s) with a logical AND.
func And[T any](first, second Specification[T]) AndSpecification[T] {
	return AndSpecification[T]{first: first, second: second}
}

// IsSatisfiedBy implements Specification.
func (s AndSpecification[T]) IsSatisfiedBy(item T) bool {
	return s.first.IsSatisfiedBy(item) && s.second.IsSatisfiedBy(item)
}

func (s AndSpecification[T]) operands() []Specification[T] {
	return []Specification[T]{s.first, s.second}
}

/***** OrSpecification *****/

// OrSpecification is satisfied if at least one of its operands is satisfied.
// The second operand is not evaluated when the first one is satisfied.
type OrSpecification[T any] struct {
	first  Specification[T]
	second Specification[T]
}

// Or combines two Specification(s) with a logical OR.
func Or[T any](first, second Specification[T]) OrSpecification[T] {
	return OrSpecification[T]{first: first, second: second}
}

// IsSatisfiedBy implements Specification.
func (s OrSpecification[T]) IsSatisfiedBy(item T) bool {
	return s.first.IsSatisfiedBy(item) || s.second.IsSatisfiedBy(item)
}

func (s OrSpecification[T]) operands() []Specification[T] {
	return []Specification[T]{s.first, s.second}
}

/***** NotSpecification *****/

// NotSpecification negates its operand.
type NotSpecification[T any] struct {
	spec Specification[T]
}

// Not negates a Specification.
func Not[T any](spec Specification[T]) NotSpecification[T] {
	return NotSpecification[T]{spec: spec}
}

// IsSatisfiedBy implements Specification.
func (s NotSpecification[T]) IsSatisfiedBy(item T) bool {
	return !s.spec.IsSatisfiedBy(item)
}

func (s NotSpecification[T]) operands() []Specification[T] {
	return []Specification[T]{s.spec}
}

/***** Validation *****/

// composite is implemented by all Specification(s) that wrap other Specification(s).
type composite[T any] interface {
	operands() []Specification[T]
}

// Validate checks a Specification tree for nil nodes, including nil SpecificationFunc(s).
func Validate[T any](spec Specification[T]) error {
	if spec == nil {
		return ErrNilSpecification
	}

	if f, ok := spec.(SpecificationFunc[T]); ok && f == nil {
		return ErrNilSpecification
	}

	c, ok := spec.(composite[T])
	if !ok {
		return nil
	}

	for _, operand := range c.operands() {
		if err := Validate(operand); err != nil {
			return err
		}
	}

	return nil
}
