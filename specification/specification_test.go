package specification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/solid-principles-go/specification"
)

type shelfItem struct {
	title string
	genre string
	pages int
}

func byGenre(genre string) specification.Specification[shelfItem] {
	return specification.AttributeEquals(func(i shelfItem) string { return i.genre }, genre)
}

func byPages(pages int) specification.Specification[shelfItem] {
	return specification.AttributeEquals(func(i shelfItem) int { return i.pages }, pages)
}

// countingSpec records how often it was evaluated.
type countingSpec struct {
	result bool
	calls  *int
}

func (s countingSpec) IsSatisfiedBy(_ shelfItem) bool {
	*s.calls++
	return s.result
}

func Test_AttributeEquals(t *testing.T) {
	item := shelfItem{title: "Dune", genre: "scifi", pages: 412}

	assert.True(t, byGenre("scifi").IsSatisfiedBy(item))
	assert.False(t, byGenre("crime").IsSatisfiedBy(item))
	assert.True(t, byPages(412).IsSatisfiedBy(item))
	assert.Equal(t, "scifi", specification.AttributeEquals(func(i shelfItem) string { return i.genre }, "scifi").Target())
}

func Test_Combinators_TruthTable(t *testing.T) {
	yes := specification.SpecificationFunc[shelfItem](func(shelfItem) bool { return true })
	no := specification.SpecificationFunc[shelfItem](func(shelfItem) bool { return false })

	tests := []struct {
		name     string
		spec     specification.Specification[shelfItem]
		expected bool
	}{
		{name: "and_true_true", spec: specification.And[shelfItem](yes, yes), expected: true},
		{name: "and_true_false", spec: specification.And[shelfItem](yes, no), expected: false},
		{name: "and_false_true", spec: specification.And[shelfItem](no, yes), expected: false},
		{name: "or_false_false", spec: specification.Or[shelfItem](no, no), expected: false},
		{name: "or_false_true", spec: specification.Or[shelfItem](no, yes), expected: true},
		{name: "or_true_false", spec: specification.Or[shelfItem](yes, no), expected: true},
		{name: "not_true", spec: specification.Not[shelfItem](yes), expected: false},
		{name: "not_false", spec: specification.Not[shelfItem](no), expected: true},
		{
			name:     "nested_and_or_not",
			spec:     specification.And[shelfItem](specification.Or[shelfItem](no, yes), specification.Not[shelfItem](no)),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.spec.IsSatisfiedBy(shelfItem{}))
		})
	}
}

func Test_And_ShortCircuits_WhenFirstOperandFails(t *testing.T) {
	firstCalls, secondCalls := 0, 0
	first := countingSpec{result: false, calls: &firstCalls}
	second := countingSpec{result: true, calls: &secondCalls}

	satisfied := specification.And[shelfItem](first, second).IsSatisfiedBy(shelfItem{})

	assert.False(t, satisfied)
	assert.Equal(t, 1, firstCalls)
	assert.Equal(t, 0, secondCalls)
}

func Test_And_EvaluatesSecondOperand_WhenFirstOperandHolds(t *testing.T) {
	firstCalls, secondCalls := 0, 0
	first := countingSpec{result: true, calls: &firstCalls}
	second := countingSpec{result: false, calls: &secondCalls}

	satisfied := specification.And[shelfItem](first, second).IsSatisfiedBy(shelfItem{})

	assert.False(t, satisfied)
	assert.Equal(t, 1, firstCalls)
	assert.Equal(t, 1, secondCalls)
}

func Test_Or_ShortCircuits_WhenFirstOperandHolds(t *testing.T) {
	firstCalls, secondCalls := 0, 0
	first := countingSpec{result: true, calls: &firstCalls}
	second := countingSpec{result: false, calls: &secondCalls}

	assert.True(t, specification.Or[shelfItem](first, second).IsSatisfiedBy(shelfItem{}))
	assert.Equal(t, 0, secondCalls)
}

func Test_Validate(t *testing.T) {
	var nilFunc specification.SpecificationFunc[shelfItem]
	valid := byGenre("scifi")

	tests := []struct {
		name    string
		spec    specification.Specification[shelfItem]
		wantErr error
	}{
		{name: "nil_spec", spec: nil, wantErr: specification.ErrNilSpecification},
		{name: "nil_func", spec: nilFunc, wantErr: specification.ErrNilSpecification},
		{name: "and_with_nil_second", spec: specification.And(valid, nil), wantErr: specification.ErrNilSpecification},
		{
			name:    "deeply_nested_nil",
			spec:    specification.And(valid, specification.Specification[shelfItem](specification.Not[shelfItem](nil))),
			wantErr: specification.ErrNilSpecification,
		},
		{name: "leaf", spec: valid, wantErr: nil},
		{name: "composite", spec: specification.And(valid, byPages(10)), wantErr: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := specification.Validate(tc.spec)

			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
