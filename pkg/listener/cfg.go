package listener

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Defaults applied by Cfg when the caller leaves a knob unset.
const (
	// defaultPollTimeout is the blocking-poll window handed to the
	// application when it does not specify one.
	defaultPollTimeout = 10 * time.Millisecond

	// recvBuffer is the channel capacity between worker and foreground.
	recvBuffer = 64
)

// Cfg builds an EventListener. Methods return the receiver so calls chain;
// validation happens in Start.
type Cfg[U comparable] struct {
	ports       []*Port[U]
	tick        time.Duration
	pollTimeout time.Duration
}

// NewCfg returns an empty listener configuration.
func NewCfg[U comparable]() *Cfg[U] {
	return &Cfg[U]{pollTimeout: defaultPollTimeout}
}

// WithPort registers a poll source with its polling interval and per-cycle
// drain cap.
func (c *Cfg[U]) WithPort(source Poll[U], interval time.Duration, maxPoll int) *Cfg[U] {
	c.ports = append(c.ports, NewPort(source, interval, maxPoll))
	return c
}

// WithTickInterval enables the periodic tick event at the given interval.
func (c *Cfg[U]) WithTickInterval(d time.Duration) *Cfg[U] {
	c.tick = d
	return c
}

// WithPollTimeout sets the default window used by blocking polls.
func (c *Cfg[U]) WithPollTimeout(d time.Duration) *Cfg[U] {
	c.pollTimeout = d
	return c
}

// Start validates the configuration and spawns the worker goroutine. The
// returned listener is already producing events. Ports registered here are
// owned by the worker from this point on.
func (c *Cfg[U]) Start() (*EventListener[U], error) {
	for _, p := range c.ports {
		if p.Interval() <= 0 {
			return nil, fmt.Errorf("%w: port interval %v is not positive", ErrCouldNotStart, p.Interval())
		}
	}
	if c.tick < 0 {
		return nil, fmt.Errorf("%w: tick interval %v is negative", ErrCouldNotStart, c.tick)
	}
	pollTimeout := c.pollTimeout
	if pollTimeout <= 0 {
		pollTimeout = defaultPollTimeout
	}

	running := &atomic.Bool{}
	running.Store(true)

	l := &EventListener[U]{
		recv:        make(chan message[U], recvBuffer),
		running:     running,
		stopc:       make(chan struct{}),
		done:        make(chan struct{}),
		pollTimeout: pollTimeout,
	}

	w := &worker[U]{
		ports:   c.ports,
		tick:    c.tick,
		recv:    l.recv,
		running: running,
		stopc:   l.stopc,
		done:    l.done,
	}
	if c.tick > 0 {
		w.nextTick = time.Now().Add(c.tick)
	}
	go w.run()

	return l, nil
}
