package listener

import (
	"time"

	"gitlab.com/tinyland/lab/weft/pkg/event"
)

// Port pairs a poll source with its schedule: how often the worker polls it
// and how many events it may drain per due cycle. The zero next-poll deadline
// makes a fresh port due immediately.
type Port[U comparable] struct {
	source   Poll[U]
	interval time.Duration
	maxPoll  int
	next     time.Time
}

// NewPort wraps source with the given polling interval. maxPoll caps how many
// events one due cycle may drain; values below 1 are treated as 1.
func NewPort[U comparable](source Poll[U], interval time.Duration, maxPoll int) *Port[U] {
	if maxPoll < 1 {
		maxPoll = 1
	}
	return &Port[U]{source: source, interval: interval, maxPoll: maxPoll}
}

// Interval returns the configured polling interval.
func (p *Port[U]) Interval() time.Duration { return p.interval }

// MaxPoll returns the per-cycle drain cap.
func (p *Port[U]) MaxPoll() int { return p.maxPoll }

// NextPoll returns the deadline after which the port is due again.
func (p *Port[U]) NextPoll() time.Time { return p.next }

// ShouldPoll reports whether the port is due at the given instant.
func (p *Port[U]) ShouldPoll(now time.Time) bool {
	return !now.Before(p.next)
}

// Advance schedules the next due cycle one interval after now. Called once
// per cycle, after draining, regardless of whether events were found.
func (p *Port[U]) Advance(now time.Time) {
	p.next = now.Add(p.interval)
}

// Poll forwards to the wrapped source.
func (p *Port[U]) Poll() (event.Event[U], bool, error) {
	return p.source.Poll()
}
