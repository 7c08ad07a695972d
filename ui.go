package main

import (
	"fmt"
	"syscall"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"go.uber.org/zap"
)

// errLine is the error shown above the command line. Every error gets a new
// generation so that a stale expiry does not hide a newer message.
type errLine struct {
	err error
	gen int
}

func (l *errLine) set(err error) int {
	l.gen++
	l.err = err
	return l.gen
}

func (l *errLine) clear() {
	l.err = nil
}

// expire clears the error if it is still generation gen.
func (l *errLine) expire(gen int) bool {
	if gen != l.gen || l.err == nil {
		return false
	}
	l.err = nil
	return true
}

// UI state is only touched from the Run loop. Other goroutines talk to it
// through the expired and resume channels.
type UI struct {
	cl      *CommandLine
	session *Session
	blinkt  *Blinkt
	shown   string // ID of the run the LED bar displays
	errs    errLine
	expired chan int
	resume  chan struct{}
	quit    chan struct{}
	logger  *zap.Logger
}

const errTimeout = 5 * time.Second

func NewUI(session *Session, logger *zap.Logger) (*UI, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("cannot initialize terminal: %w", err)
	}
	return &UI{
		cl:      &CommandLine{},
		session: session,
		expired: make(chan int),
		resume:  make(chan struct{}),
		quit:    make(chan struct{}),
		logger:  logger,
	}, nil
}

// showErr displays error message to user until errTimeout passes.
func (ui *UI) showErr(err error) {
	gen := ui.errs.set(err)
	time.AfterFunc(errTimeout, func() {
		select {
		case ui.expired <- gen:
		case <-ui.quit:
		}
	})
}

// Resume asks the Run loop to reinitialize the terminal, e.g. after SIGCONT.
func (ui *UI) Resume() {
	select {
	case ui.resume <- struct{}{}:
	case <-ui.quit:
	}
}

func (ui *UI) print(x, y int, text string) {
	col := termbox.ColorDefault
	for _, r := range text {
		termbox.SetCell(x, y, r, col, col)
		x += runewidth.RuneWidth(r)
	}
}

// describe renders a run as one line, e.g. "2. map [4 -9] → [4 9]".
func describe(i int, run Run) string {
	name := string(run.Variant)
	if run.Sorted {
		name += "+sort"
	}
	name = runewidth.FillRight(name, len("comprehension+sort"))
	return fmt.Sprintf("%d. %s %s → %s", i+1, name, formatSeq(run.Input), formatSeq(run.Output))
}

func (ui *UI) Redraw() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	_, h := termbox.Size()
	results := ui.session.Results
	// keep the newest results visible above the error and command lines
	first := 0
	if max := h - 2; len(results) > max && max > 0 {
		first = len(results) - max
	}
	for i := first; i < len(results); i++ {
		ui.print(0, i-first, describe(i, results[i]))
	}
	ui.updateBlinkt()
	if ui.errs.err != nil {
		ui.print(0, h-2, ui.errs.err.Error())
	}
	ui.cl.Redraw()
	termbox.Flush()
}

func (ui *UI) updateBlinkt() {
	last, ok := ui.session.Last()
	if ok && last.ID == ui.shown {
		return
	}
	if ui.blinkt != nil {
		ui.blinkt.Stop()
		ui.blinkt = nil
	}
	ui.shown = ""
	if ok {
		ui.blinkt = NewBlinkt(last.Output)
		ui.shown = last.ID
	}
}

func (ui *UI) Close() {
	if ui.blinkt != nil {
		ui.blinkt.Stop()
		ui.blinkt = nil
	}
	termbox.Close()
}

// HandleCommand runs cmd and reports whether the UI should keep going.
func (ui *UI) HandleCommand(cmd Command) bool {
	ui.errs.clear()
	if cmd.Err != nil {
		ui.showErr(cmd.Err)
		return true
	}
	if cmd.Tokens[0] == "quit" || cmd.Tokens[0] == "q" {
		return false
	}
	if err := ui.session.HandleCommand(cmd.Tokens); err != nil {
		ui.logger.Debug("command failed", zap.Strings("tokens", cmd.Tokens), zap.Error(err))
		ui.showErr(err)
	}
	return true
}

func (ui *UI) handleEvent(ev termbox.Event) bool {
	switch ev.Type {
	case termbox.EventKey:
		switch ev.Key {
		case termbox.KeyCtrlZ:
			syscall.Kill(syscall.Getpid(), syscall.SIGSTOP)
			return true
		case termbox.KeyCtrlC:
			return false
		}
		if cmd, ok := ui.cl.HandleEvent(ev); ok && !ui.HandleCommand(cmd) {
			return false
		}
	case termbox.EventError:
		ui.logger.Error("terminal event", zap.Error(ev.Err))
		return false
	}
	ui.Redraw()
	return true
}

// poll forwards terminal events until the UI quits. It may stay blocked in
// PollEvent after that; the process exits right after Run returns.
func (ui *UI) poll(events chan<- termbox.Event) {
	for {
		ev := termbox.PollEvent()
		select {
		case events <- ev:
		case <-ui.quit:
			return
		}
		if ev.Type == termbox.EventError {
			return
		}
	}
}

// Run reads commands until "quit" or Ctrl-C.
func (ui *UI) Run() {
	defer close(ui.quit)
	ui.Redraw()
	events := make(chan termbox.Event)
	go ui.poll(events)
	for {
		select {
		case ev := <-events:
			if !ui.handleEvent(ev) {
				return
			}
		case gen := <-ui.expired:
			if ui.errs.expire(gen) {
				ui.Redraw()
			}
		case <-ui.resume:
			termbox.Close()
			if err := termbox.Init(); err != nil {
				ui.logger.Error("cannot reinitialize terminal", zap.Error(err))
				return
			}
			ui.Redraw()
		}
	}
}
