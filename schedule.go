package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	cron "github.com/robfig/cron/v3"
)

// Replay defines when to recompute a result.
type Replay struct {
	Cron  string
	After time.Time
	Count int
	ID    string
}

func NewReplay(cron string, after time.Time, count int) (Replay, error) {
	r := Replay{
		Cron:  cron,
		After: after,
		Count: count,
		ID:    uuid.New().String(),
	}
	_, err := r.Schedule() // validate schedule
	return r, err
}

func (r *Replay) Schedule() (cron.Schedule, error) {
	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(r.Cron)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule: %w", err)
	}
	return sched, nil
}

// Next returns the next firing time, or the zero time once exhausted.
func (r *Replay) Next() time.Time {
	if r.Count == 0 {
		return time.Time{}
	}
	sch, err := r.Schedule()
	if err != nil {
		return time.Time{}
	}
	return sch.Next(r.After)
}

// Check reports whether the replay is due at now and consumes one firing if so.
func (r *Replay) Check(now time.Time) bool {
	next := r.Next()
	if next.IsZero() || next.After(now) {
		return false
	}
	r.After = now
	if r.Count != -1 {
		r.Count--
	}
	return true
}

// RunReplay calls fn every time r fires until r is exhausted or ctx is done.
func RunReplay(ctx context.Context, r *Replay, fn func() error) error {
	for {
		next := r.Next()
		if next.IsZero() {
			return nil
		}
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case now := <-timer.C:
			if !r.Check(now) {
				continue
			}
			if err := fn(); err != nil {
				return err
			}
		}
	}
}
