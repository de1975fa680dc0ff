package specification_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/solid-principles-go/specification"
)

func givenShelf() []shelfItem {
	return []shelfItem{
		{title: "Dune", genre: "scifi", pages: 412},
		{title: "The Big Sleep", genre: "crime", pages: 231},
		{title: "Neuromancer", genre: "scifi", pages: 271},
		{title: "Hyperion", genre: "scifi", pages: 412},
		{title: "Gone Girl", genre: "crime", pages: 412},
	}
}

func titles(items []shelfItem) []string {
	result := make([]string, 0, len(items))
	for _, i := range items {
		result = append(result, i.title)
	}

	return result
}

func Test_Filter_SingleAttribute_PreservesOrder(t *testing.T) {
	matches, err := specification.Filter(givenShelf(), byGenre("scifi"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Dune", "Neuromancer", "Hyperion"}, titles(slices.Collect(matches)))
}

func Test_Filter_EmptyResult_IsNotAnError(t *testing.T) {
	matches, err := specification.Filter(givenShelf(), byGenre("poetry"))
	require.NoError(t, err)

	assert.Empty(t, slices.Collect(matches))
}

func Test_Filter_EmptyInput(t *testing.T) {
	matches, err := specification.Filter(nil, byGenre("scifi"))
	require.NoError(t, err)

	assert.Empty(t, slices.Collect(matches))
}

func Test_Filter_And_EqualsIntersectionOfOperands(t *testing.T) {
	shelf := givenShelf()
	a := byGenre("scifi")
	b := byPages(412)

	onlyA, err := specification.Filter(shelf, a)
	require.NoError(t, err)
	onlyB, err := specification.Filter(shelf, b)
	require.NoError(t, err)
	both, err := specification.Filter[shelfItem](shelf, specification.And(a, b))
	require.NoError(t, err)

	inB := titles(slices.Collect(onlyB))
	var intersection []string
	for _, title := range titles(slices.Collect(onlyA)) {
		if slices.Contains(inB, title) {
			intersection = append(intersection, title)
		}
	}

	assert.Equal(t, intersection, titles(slices.Collect(both)))
	assert.Equal(t, []string{"Dune", "Hyperion"}, intersection)
}

func Test_Filter_DoesNotMutateInput(t *testing.T) {
	shelf := givenShelf()
	original := slices.Clone(shelf)

	matches, err := specification.Filter[shelfItem](shelf, specification.Not(byGenre("scifi")))
	require.NoError(t, err)
	_ = slices.Collect(matches)

	assert.Equal(t, original, shelf)
}

func Test_Filter_IsLazy(t *testing.T) {
	calls := 0
	spec := countingSpec{result: true, calls: &calls}

	matches, err := specification.Filter[shelfItem](givenShelf(), spec)
	require.NoError(t, err)
	assert.Equal(t, 0, calls, "nothing must be evaluated before ranging")

	for range matches {
		break
	}

	assert.Equal(t, 1, calls, "ranging must stop evaluating once the consumer stops")
}

func Test_Filter_ShouldFail_WithNilSpecification(t *testing.T) {
	matches, err := specification.Filter[shelfItem](givenShelf(), nil)

	assert.ErrorIs(t, err, specification.ErrNilSpecification)
	assert.Nil(t, matches)
}

func Test_Filter_ShouldFail_WithNilOperand_BeforeEvaluatingAnything(t *testing.T) {
	calls := 0
	first := countingSpec{result: true, calls: &calls}

	_, err := specification.Filter[shelfItem](givenShelf(), specification.And[shelfItem](first, nil))

	assert.ErrorIs(t, err, specification.ErrNilSpecification)
	assert.Equal(t, 0, calls)
}

func Test_Filter_WithSpecificationFunc(t *testing.T) {
	long := specification.SpecificationFunc[shelfItem](func(i shelfItem) bool { return i.pages > 300 })

	matches, err := specification.Filter[shelfItem](givenShelf(), long)
	require.NoError(t, err)

	assert.Equal(t, []string{"Dune", "Hyperion", "Gone Girl"}, titles(slices.Collect(matches)))
}
