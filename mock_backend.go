package tuikit

import (
	"fmt"
	"io"
	"strings"
)

// BackendOp names a Backend method for error injection in MockBackend.
type BackendOp string

const (
	OpEnterRawMode BackendOp = "enter raw mode"
	OpExitRawMode  BackendOp = "exit raw mode"
	OpReadEvent    BackendOp = "read event"
	OpClear        BackendOp = "clear"
	OpWriteLine    BackendOp = "write line"
	OpFlush        BackendOp = "flush"
)

// MockBackend is a Backend for testing. It replays a fixed list of events
// and records every frame written between Clear and Flush. When the events
// run out, ReadEvent returns io.EOF.
type MockBackend struct {
	events []Event
	index  int

	frames  [][]string
	current []string

	inRawMode  bool
	enterCount int
	exitCount  int

	failures map[BackendOp]error
}

// Ensure MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// NewMockBackend creates a MockBackend that returns events in order.
func NewMockBackend(events ...Event) *MockBackend {
	return &MockBackend{
		events:   events,
		failures: make(map[BackendOp]error),
	}
}

// FailOn makes every call of op return err. Pass nil to clear it.
func (m *MockBackend) FailOn(op BackendOp, err error) *MockBackend {
	if err == nil {
		delete(m.failures, op)
	} else {
		m.failures[op] = err
	}
	return m
}

// AddEvents queues more events.
func (m *MockBackend) AddEvents(events ...Event) {
	m.events = append(m.events, events...)
}

// Remaining returns the number of events not yet read.
func (m *MockBackend) Remaining() int {
	return len(m.events) - m.index
}

func (m *MockBackend) EnterRawMode() error {
	if err := m.failures[OpEnterRawMode]; err != nil {
		return err
	}
	m.inRawMode = true
	m.enterCount++
	return nil
}

func (m *MockBackend) ExitRawMode() error {
	m.exitCount++
	if err := m.failures[OpExitRawMode]; err != nil {
		return err
	}
	m.inRawMode = false
	return nil
}

func (m *MockBackend) ReadEvent() (Event, error) {
	if err := m.failures[OpReadEvent]; err != nil {
		return nil, err
	}
	if m.index >= len(m.events) {
		return nil, io.EOF
	}
	ev := m.events[m.index]
	m.index++
	return ev, nil
}

func (m *MockBackend) Clear() error {
	if err := m.failures[OpClear]; err != nil {
		return err
	}
	m.current = []string{}
	return nil
}

func (m *MockBackend) WriteLine(text string) error {
	if err := m.failures[OpWriteLine]; err != nil {
		return err
	}
	m.current = append(m.current, text)
	return nil
}

func (m *MockBackend) Flush() error {
	if err := m.failures[OpFlush]; err != nil {
		return err
	}
	if m.current != nil {
		m.frames = append(m.frames, m.current)
		m.current = nil
	}
	return nil
}

// InRawMode reports whether raw mode is currently entered.
func (m *MockBackend) InRawMode() bool {
	return m.inRawMode
}

// EnterCount returns the number of successful EnterRawMode calls.
func (m *MockBackend) EnterCount() int {
	return m.enterCount
}

// ExitCount returns the number of ExitRawMode calls, failed ones included.
func (m *MockBackend) ExitCount() int {
	return m.exitCount
}

// Frames returns every flushed frame in order.
func (m *MockBackend) Frames() [][]string {
	return m.frames
}

// LastFrame returns the most recently flushed frame, or nil.
func (m *MockBackend) LastFrame() []string {
	if len(m.frames) == 0 {
		return nil
	}
	return m.frames[len(m.frames)-1]
}

// String returns the last frame as text, useful in test failure messages.
func (m *MockBackend) String() string {
	return fmt.Sprintf("MockBackend{frames=%d}\n%s", len(m.frames), strings.Join(m.LastFrame(), "\n"))
}
