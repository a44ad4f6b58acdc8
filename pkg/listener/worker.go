package listener

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"gitlab.com/tinyland/lab/weft/pkg/event"
)

// fallbackSleep bounds the worker's sleep when it has no scheduled deadline
// at all (no ports, tick disabled).
const fallbackSleep = 60 * time.Second

// errStopRequested aborts the poll cycle when a send is interrupted by Stop.
// Never forwarded to the foreground.
var errStopRequested = errors.New("listener: stop requested")

// worker is the background loop. It owns the ports exclusively; the running
// flag and the channels are its only links to the foreground.
type worker[U comparable] struct {
	ports    []*Port[U]
	tick     time.Duration
	nextTick time.Time
	recv     chan<- message[U]
	running  *atomic.Bool
	stopc    <-chan struct{}
	done     chan<- struct{}
}

// run polls due ports, emits ticks, and sleeps until the earliest deadline,
// exiting promptly once the running flag clears. A port error is forwarded
// once and ends the loop.
func (w *worker[U]) run() {
	defer close(w.done)
	for w.running.Load() {
		if err := w.pollPorts(); err != nil {
			if !errors.Is(err, errStopRequested) {
				w.send(message[U]{err: err})
			}
			return
		}
		if err := w.tickIfDue(); err != nil {
			return
		}
		w.sleep()
	}
}

// pollPorts drains every due port in registration order, forwarding events in
// the order they are detected.
func (w *worker[U]) pollPorts() error {
	now := time.Now()
	for _, p := range w.ports {
		if !p.ShouldPoll(now) {
			continue
		}
		for i := 0; i < p.MaxPoll(); i++ {
			ev, ok, err := p.Poll()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrPollFailed, err)
			}
			if !ok {
				break
			}
			if !w.send(message[U]{event: ev}) {
				return errStopRequested
			}
		}
		p.Advance(now)
	}
	return nil
}

// tickIfDue emits a tick when the deadline has elapsed and reschedules it.
func (w *worker[U]) tickIfDue() error {
	if w.tick <= 0 {
		return nil
	}
	now := time.Now()
	if now.Before(w.nextTick) {
		return nil
	}
	if !w.send(message[U]{event: event.Tick[U]()}) {
		return errStopRequested
	}
	w.nextTick = now.Add(w.tick)
	return nil
}

// send forwards one message, aborting if a stop request arrives while the
// channel is full. Reports whether the message was delivered.
func (w *worker[U]) send(m message[U]) bool {
	select {
	case w.recv <- m:
		return true
	case <-w.stopc:
		return false
	}
}

// sleep blocks until the earliest upcoming deadline or a stop request.
func (w *worker[U]) sleep() {
	select {
	case <-time.After(w.nextEvent(time.Now())):
	case <-w.stopc:
	}
}

// nextEvent computes how long the worker may sleep: the distance to the
// nearest port deadline or tick deadline, clamped to zero when already due.
func (w *worker[U]) nextEvent(now time.Time) time.Duration {
	next := now.Add(fallbackSleep)
	if w.tick > 0 && w.nextTick.Before(next) {
		next = w.nextTick
	}
	for _, p := range w.ports {
		if p.NextPoll().Before(next) {
			next = p.NextPoll()
		}
	}
	d := next.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
