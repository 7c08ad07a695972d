package main

import (
	"math"
	"sort"
)

// sign returns 1 if n is non-negative, -1 otherwise.
func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

// abs returns the absolute value of n. math.MinInt has no positive
// counterpart and saturates to math.MaxInt.
func abs(n int) int {
	if n == math.MinInt {
		return math.MaxInt
	}
	if n < 0 {
		return -n
	}
	return n
}

// seq creates a sequence of numbers from min to max inclusive.
func seq(min, max int) []int {
	res := make([]int, abs(max-min)+1)
	s := sign(max - min)
	for i := range res {
		res[i] = min + i*s
	}
	return res
}

// absComprehension builds a new slice holding the absolute value of each
// element of s. s is left untouched.
func absComprehension(s []int) []int {
	if s == nil {
		return nil
	}
	res := make([]int, 0, len(s))
	for _, n := range s {
		if n < 0 {
			n = abs(n)
		}
		res = append(res, n)
	}
	return res
}

// mapInts applies fn to each element of s, returning a new slice.
// Returns nil when s is nil.
func mapInts(s []int, fn func(int) int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	for i, n := range s {
		out[i] = fn(n)
	}
	return out
}

// absMap applies abs across s.
func absMap(s []int) []int {
	return mapInts(s, abs)
}

// absInPlace negates every negative element of s.
func absInPlace(s []int) {
	for i := 0; i < len(s); i++ {
		if s[i] < 0 {
			if s[i] == math.MinInt {
				s[i] = math.MaxInt
				continue
			}
			s[i] = s[i] * -1
		}
	}
}

// sortAsc sorts s in non-decreasing order.
func sortAsc(s []int) {
	sort.Ints(s)
}

// levels scales the magnitudes of the first n values to 0-255, relative to
// the largest of them.
func levels(values []int, n int) []int {
	if len(values) > n {
		values = values[:n]
	}
	max := 0
	for _, v := range values {
		if abs(v) > max {
			max = abs(v)
		}
	}
	res := make([]int, len(values))
	if max == 0 {
		return res
	}
	for i, v := range values {
		res[i] = int(float64(abs(v)) / float64(max) * 255)
	}
	return res
}
