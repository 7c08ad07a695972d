package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Run is one recorded application of a variant.
type Run struct {
	ID      string
	Variant Variant
	Input   []int
	Output  []int
	Sorted  bool
	At      time.Time
	Seq     int // insertion order, set by Record
}

// NewRun returns a Run stamped with a fresh ID and the current time. input is
// copied so that an in-place variant does not rewrite history.
func NewRun(v Variant, input, output []int, sorted bool) Run {
	in := make([]int, len(input))
	copy(in, input)
	out := make([]int, len(output))
	copy(out, output)
	return Run{
		ID:      uuid.New().String(),
		Variant: v,
		Input:   in,
		Output:  out,
		Sorted:  sorted,
		At:      time.Now(),
	}
}

// A DB reads / writes run history from / to disk.
type DB struct {
	History  map[string]Run
	LastSeq  int
	filename string `json:"-"`
}

// NewDB returns a DB located in filename.
func NewDB(filename string) (*DB, error) {
	db := DB{
		filename: filename,
		History:  make(map[string]Run),
	}
	err := db.Read()
	if err != nil {
		return nil, err
	}
	return &db, nil
}

// Write stores the database onto disk. DB file will be created if doesn't exist.
func (db *DB) Write() error {
	encoded, err := json.MarshalIndent(*db, "", "  ")
	if err != nil {
		return err
	}
	err = ioutil.WriteFile(db.filename, encoded, 0644)
	if err != nil {
		return err
	}
	return nil
}

// Read loads the database from disk. If file doesn't exist then DB will be empty.
func (db *DB) Read() error {
	encoded, err := ioutil.ReadFile(db.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	err = json.Unmarshal(encoded, db)
	if err != nil {
		return err
	}
	if db.History == nil {
		db.History = make(map[string]Run)
	}
	return nil
}

// Record adds run to the history and persists it.
func (db *DB) Record(run Run) error {
	db.LastSeq++
	run.Seq = db.LastSeq
	db.History[run.ID] = run
	return db.Write()
}

// Runs returns the history oldest first. Runs recorded within the same clock
// tick keep the order they were recorded in.
func (db *DB) Runs() []Run {
	runs := make([]Run, 0, len(db.History))
	for _, run := range db.History {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		a, b := runs[i], runs[j]
		if !a.At.Equal(b.At) {
			return a.At.Before(b.At)
		}
		if a.Seq != b.Seq {
			return a.Seq < b.Seq
		}
		return a.ID < b.ID
	})
	return runs
}
