package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeq(t *testing.T) {
	tests := []struct {
		min  int
		max  int
		want []int
	}{
		{0, 0, []int{0}},
		{0, 5, []int{0, 1, 2, 3, 4, 5}},
		{-3, 1, []int{-3, -2, -1, 0, 1}},
		{3, -2, []int{3, 2, 1, 0, -1, -2}},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, seq(test.min, test.max), "seq(%d, %d)", test.min, test.max)
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{5, 5},
		{-5, 5},
		{math.MaxInt, math.MaxInt},
		{-math.MaxInt, math.MaxInt},
		{math.MinInt, math.MaxInt},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, abs(test.in), "abs(%d)", test.in)
	}
}

var absInputs = [][]int{
	{},
	{0},
	{4, -9, 7, 9},
	{4, -9, 7, -5, -4},
	{-1, -1, 0, 1, 1},
	{math.MinInt, -3, math.MaxInt},
}

// runVariants returns the output of every variant for input, keyed by name.
func runVariants(input []int) map[string][]int {
	inPlace := append([]int(nil), input...)
	absInPlace(inPlace)
	return map[string][]int{
		"comprehension": absComprehension(input),
		"map":           absMap(input),
		"loop":          inPlace,
	}
}

func TestVariantsAgree(t *testing.T) {
	for _, input := range absInputs {
		for name, out := range runVariants(input) {
			require.Len(t, out, len(input), name)
			for i, x := range input {
				want := x
				if x < 0 {
					want = abs(x)
				}
				assert.Equal(t, want, out[i], "%s: index %d of %v", name, i, input)
				assert.GreaterOrEqual(t, out[i], 0, name)
			}
		}
	}
}

func TestVariantsIdempotent(t *testing.T) {
	for _, input := range absInputs {
		for name, out := range runVariants(input) {
			again := runVariants(out)[name]
			assert.Equal(t, out, again, "%s of %v", name, input)
		}
	}
}

func TestPureVariantsKeepInput(t *testing.T) {
	input := []int{4, -9, 7, 9}
	absComprehension(input)
	absMap(input)
	assert.Equal(t, []int{4, -9, 7, 9}, input)
}

func TestNilInput(t *testing.T) {
	assert.Nil(t, absComprehension(nil))
	assert.Nil(t, absMap(nil))
	absInPlace(nil)
}

func TestScenarios(t *testing.T) {
	list1 := []int{4, -9, 7, 9}

	list2 := absComprehension(list1)
	assert.Equal(t, []int{4, 9, 7, 9}, list2)
	sortAsc(list2)
	assert.Equal(t, []int{4, 7, 9, 9}, list2)

	assert.Equal(t, []int{4, 9, 7, 9}, absMap(list1))

	list3 := []int{4, -9, 7, -5, -4}
	absInPlace(list3)
	assert.Equal(t, []int{4, 9, 7, 5, 4}, list3)
}

func TestSortAsc(t *testing.T) {
	for _, input := range absInputs {
		out := absComprehension(input)
		sorted := append([]int(nil), out...)
		sortAsc(sorted)
		assert.ElementsMatch(t, out, sorted)
		for i := 1; i < len(sorted); i++ {
			assert.LessOrEqual(t, sorted[i-1], sorted[i])
		}
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		values []int
		n      int
		want   []int
	}{
		{nil, 8, []int{}},
		{[]int{0, 0}, 8, []int{0, 0}},
		{[]int{4, -9, 7, 9}, 8, []int{113, 255, 198, 255}},
		{[]int{math.MaxInt, math.MaxInt / 2, 9}, 8, []int{255, 127, 0}},
		{[]int{math.MinInt, 1}, 8, []int{255, 0}},
		{[]int{1, 2, 3}, 2, []int{127, 255}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, levels(test.values, test.n), "levels(%v, %d)", test.values, test.n)
	}
}
