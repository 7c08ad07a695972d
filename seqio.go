package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	gsq "github.com/kballard/go-shellquote"
)

var ErrInvalidInteger = errors.New("invalid integer")

// parseSeq reads a sequence of integers such as "4 -9 7", "4,-9,7" or
// "[4, -9, 7]".
func parseSeq(input string) ([]int, error) {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "[")
	input = strings.TrimSuffix(input, "]")
	input = strings.ReplaceAll(input, ",", " ")
	tokens, err := gsq.Split(input)
	if err != nil {
		return nil, fmt.Errorf("cannot split sequence: %w", err)
	}
	return parseInts(tokens)
}

func parseInts(tokens []string) ([]int, error) {
	res := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidInteger, tok)
		}
		res = append(res, n)
	}
	return res, nil
}

func formatSeq(s []int) string {
	return fmt.Sprint(s)
}
