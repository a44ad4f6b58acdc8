// Package listener implements the background event engine: a set of polled
// event sources (ports) plus an optional tick timer, multiplexed by a single
// worker goroutine into one FIFO channel consumed by the application loop.
// Sources implement the Poll interface and are registered through the Cfg
// builder; the worker owns them exclusively once the listener starts.
package listener

import (
	"errors"
	"sync/atomic"
	"time"

	"gitlab.com/tinyland/lab/weft/pkg/event"
)

// Sentinel errors reported by the listener. Wrapped causes are attached with
// %w, so callers match them with errors.Is.
var (
	// ErrCouldNotStart means the listener configuration was unusable
	// (e.g. a port with a non-positive interval).
	ErrCouldNotStart = errors.New("listener: could not start")

	// ErrCouldNotStop means the worker did not acknowledge the stop request
	// within the join window.
	ErrCouldNotStop = errors.New("listener: could not stop")

	// ErrListenerDied means the worker exited and no further events will
	// arrive. Sticky: once observed, every later poll reports it.
	ErrListenerDied = errors.New("listener: worker died")

	// ErrPollFailed means a port returned an error. The worker forwards it
	// once and terminates; the listener is dead afterwards.
	ErrPollFailed = errors.New("listener: poll failed")
)

// Poll is the capability every event source implements. Poll returns the next
// available event, if any. Implementations must not block beyond a trivial
// amount of work; the worker treats every call as synchronous and fast.
type Poll[U comparable] interface {
	Poll() (event.Event[U], bool, error)
}

// message is the single unit crossing the worker/foreground boundary: either
// an event or a fatal error, never both.
type message[U comparable] struct {
	event event.Event[U]
	err   error
}

// stopJoinTimeout bounds how long Stop waits for the worker to exit.
const stopJoinTimeout = time.Second

// EventListener owns the worker goroutine and the channel it feeds. All
// methods must be called from a single goroutine (the application loop); only
// the worker runs concurrently, and the running flag plus the channel are the
// only state shared with it.
type EventListener[U comparable] struct {
	recv        chan message[U]
	running     *atomic.Bool
	stopc       chan struct{}
	done        chan struct{}
	pollTimeout time.Duration

	stopped  bool
	died     bool
	deathErr error
}

// PollTimeout returns the default timeout a blocking poll uses when the
// caller does not supply one.
func (l *EventListener[U]) PollTimeout() time.Duration { return l.pollTimeout }

// Poll waits up to timeout for one event. The boolean result is false when
// the window elapsed with nothing available. Once the worker has died, every
// call returns the same error.
func (l *EventListener[U]) Poll(timeout time.Duration) (event.Event[U], bool, error) {
	var zero event.Event[U]
	if l.died {
		return zero, false, l.deathErr
	}
	select {
	case m := <-l.recv:
		return l.accept(m)
	default:
	}
	select {
	case m := <-l.recv:
		return l.accept(m)
	case <-l.done:
		return l.drainOrDie()
	case <-time.After(timeout):
		return zero, false, nil
	}
}

// TryPoll returns one event if immediately available, without blocking.
func (l *EventListener[U]) TryPoll() (event.Event[U], bool, error) {
	var zero event.Event[U]
	if l.died {
		return zero, false, l.deathErr
	}
	select {
	case m := <-l.recv:
		return l.accept(m)
	default:
	}
	select {
	case <-l.done:
		return l.drainOrDie()
	default:
		return zero, false, nil
	}
}

// Stop clears the running flag, wakes the worker, and waits for it to exit.
// The first call does the teardown; later calls are no-ops returning nil.
func (l *EventListener[U]) Stop() error {
	if l.stopped {
		return nil
	}
	l.stopped = true
	l.running.Store(false)
	close(l.stopc)
	select {
	case <-l.done:
		return nil
	case <-time.After(stopJoinTimeout):
		return ErrCouldNotStop
	}
}

// accept unwraps a worker message, recording a fatal error as the listener's
// permanent death cause.
func (l *EventListener[U]) accept(m message[U]) (event.Event[U], bool, error) {
	if m.err != nil {
		l.fail(m.err)
		return event.Event[U]{}, false, m.err
	}
	return m.event, true, nil
}

// drainOrDie handles a closed done channel: buffered events are still
// delivered, after which the listener reports death.
func (l *EventListener[U]) drainOrDie() (event.Event[U], bool, error) {
	select {
	case m := <-l.recv:
		return l.accept(m)
	default:
	}
	l.fail(ErrListenerDied)
	return event.Event[U]{}, false, l.deathErr
}

func (l *EventListener[U]) fail(err error) {
	if !l.died {
		l.died = true
		l.deathErr = err
	}
}
