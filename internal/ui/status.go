package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusKind selects the status line color.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// statusLine is the single transient message shown at the bottom of the
// window. Every Set bumps seq; a clear only applies if it carries the
// current seq, so a newer message is never blanked by an older timer.
type statusLine struct {
	text string
	kind StatusKind
	seq  uint64
}

// clearStatusMsg is sent after the status timeout elapses.
type clearStatusMsg struct {
	seq uint64
}

// set replaces the message and returns a command that clears it after
// timeout. A zero timeout keeps the message until it is replaced.
func (s *statusLine) set(text string, kind StatusKind, timeout time.Duration) tea.Cmd {
	s.seq++
	s.text = text
	s.kind = kind
	if timeout <= 0 {
		return nil
	}
	seq := s.seq
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// clear empties the line if msg is for the current message.
func (s *statusLine) clear(msg clearStatusMsg) {
	if msg.seq == s.seq {
		s.text = ""
	}
}
