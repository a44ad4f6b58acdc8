package listener

import (
	"sync"
	"sync/atomic"

	"gitlab.com/tinyland/lab/weft/pkg/event"
)

// MockPoll implements Poll for testing. Behavior is configured through
// options and it tracks how many times Poll has been called. Safe for
// concurrent use: the worker polls it while tests push events or inspect
// counters.
type MockPoll[U comparable] struct {
	mu     sync.Mutex
	queue  []event.Event[U]
	repeat *event.Event[U]
	err    error

	callCount atomic.Int64

	// PollFunc, if set, overrides the default behavior entirely. This lets
	// tests inject dynamic responses (e.g. fail after N calls).
	PollFunc func() (event.Event[U], bool, error)
}

// MockPollOption configures a MockPoll.
type MockPollOption[U comparable] func(*MockPoll[U])

// WithEvents queues events returned one per call, in order.
func WithEvents[U comparable](evs ...event.Event[U]) MockPollOption[U] {
	return func(m *MockPoll[U]) { m.queue = append(m.queue, evs...) }
}

// WithRepeat sets an event returned on every call once the queue is empty.
func WithRepeat[U comparable](ev event.Event[U]) MockPollOption[U] {
	return func(m *MockPoll[U]) { m.repeat = &ev }
}

// WithPollError sets the error returned once the queue is empty.
func WithPollError[U comparable](err error) MockPollOption[U] {
	return func(m *MockPoll[U]) { m.err = err }
}

// WithPollFunc sets a custom function for Poll.
func WithPollFunc[U comparable](fn func() (event.Event[U], bool, error)) MockPollOption[U] {
	return func(m *MockPoll[U]) { m.PollFunc = fn }
}

// NewMockPoll creates a mock poll source with the given options.
func NewMockPoll[U comparable](opts ...MockPollOption[U]) *MockPoll[U] {
	m := &MockPoll[U]{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Poll pops the next queued event. With the queue empty it returns the
// configured error if set, then the repeat event if set, then nothing.
func (m *MockPoll[U]) Poll() (event.Event[U], bool, error) {
	m.callCount.Add(1)

	if m.PollFunc != nil {
		return m.PollFunc()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.queue) > 0 {
		ev := m.queue[0]
		m.queue = m.queue[1:]
		return ev, true, nil
	}
	if m.err != nil {
		return event.Event[U]{}, false, m.err
	}
	if m.repeat != nil {
		return *m.repeat, true, nil
	}
	return event.Event[U]{}, false, nil
}

// Push appends an event to the queue (thread-safe).
func (m *MockPoll[U]) Push(ev event.Event[U]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, ev)
}

// SetError updates the returned error (thread-safe).
func (m *MockPoll[U]) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// CallCount returns how many times Poll has been called.
func (m *MockPoll[U]) CallCount() int64 {
	return m.callCount.Load()
}
