package main

import (
	"errors"
	"fmt"
)

// Variant names one of the ways of computing absolute values.
type Variant string

const (
	Comprehension Variant = "comprehension"
	Map           Variant = "map"
	Loop          Variant = "loop"
)

// Variants lists every supported variant in display order.
var Variants = []Variant{Comprehension, Map, Loop}

var ErrUnknownVariant = errors.New("unknown variant")

// ParseVariant maps a name to a Variant. "comp" is accepted for Comprehension.
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "comprehension", "comp":
		return Comprehension, nil
	case "map":
		return Map, nil
	case "loop":
		return Loop, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Apply runs variant v over s. The loop variant mutates s and returns it.
func Apply(v Variant, s []int) ([]int, error) {
	switch v {
	case Comprehension:
		return absComprehension(s), nil
	case Map:
		return absMap(s), nil
	case Loop:
		absInPlace(s)
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
}
