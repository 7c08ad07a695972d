package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errInvalidIndex = errors.New("index out of range")

// Session holds the results produced by interactive commands.
type Session struct {
	Results []Run
	db      *DB
}

// NewSession returns an empty session. db may be nil to skip history.
func NewSession(db *DB) *Session {
	return &Session{db: db}
}

// Last returns the most recent result, if any.
func (s *Session) Last() (Run, bool) {
	if len(s.Results) == 0 {
		return Run{}, false
	}
	return s.Results[len(s.Results)-1], true
}

func (s *Session) getIdx(token string) (int, error) {
	idx, err := strconv.Atoi(token)
	if err != nil {
		return -1, fmt.Errorf("invalid index: %w", err)
	}
	if idx < 1 || idx > len(s.Results) {
		return -1, errInvalidIndex
	}
	return idx, nil
}

func (s *Session) record(run Run) error {
	s.Results = append(s.Results, run)
	if s.db == nil {
		return nil
	}
	return s.db.Record(run)
}

// HandleCommand evaluates one tokenised command line.
func (s *Session) HandleCommand(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	switch tokens[0] {
	case "comp", "comprehension", "map", "loop":
		if len(tokens) < 2 {
			return errors.New("not enough arguments")
		}
		v, err := ParseVariant(tokens[0])
		if err != nil {
			return err
		}
		input, err := parseSeq(strings.Join(tokens[1:], " "))
		if err != nil {
			return err
		}
		orig := make([]int, len(input))
		copy(orig, input)
		out, err := Apply(v, input)
		if err != nil {
			return err
		}
		return s.record(NewRun(v, orig, out, false))
	case "sort":
		idx := len(s.Results)
		if len(tokens) > 1 {
			var err error
			idx, err = s.getIdx(tokens[1])
			if err != nil {
				return err
			}
		}
		if idx == 0 {
			return errors.New("nothing to sort")
		}
		prev := s.Results[idx-1]
		sorted := make([]int, len(prev.Output))
		copy(sorted, prev.Output)
		sortAsc(sorted)
		return s.record(NewRun(prev.Variant, prev.Input, sorted, true))
	case "clear":
		s.Results = nil
		return nil
	}
	return errors.New("unknown command: " + tokens[0])
}
