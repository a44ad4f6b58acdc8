package app

import "time"

// StrategyKind discriminates a poll strategy.
type StrategyKind uint8

const (
	// StrategyOnce drains at most one event, waiting the listener's
	// default poll window for it.
	StrategyOnce StrategyKind = iota
	// StrategyUpTo drains up to N immediately available events without
	// blocking.
	StrategyUpTo
	// StrategyBlockFor blocks until at least one event arrives or the
	// timeout elapses, then drains up to N.
	StrategyBlockFor
)

// PollStrategy configures how many events one Tick call drains from the
// listener, and whether it may block waiting for the first one.
type PollStrategy struct {
	kind    StrategyKind
	n       int
	timeout time.Duration
}

// Once drains at most one event per tick.
func Once() PollStrategy { return PollStrategy{kind: StrategyOnce} }

// UpTo drains up to n immediately available events without blocking.
func UpTo(n int) PollStrategy {
	return PollStrategy{kind: StrategyUpTo, n: max(n, 1)}
}

// BlockFor waits up to timeout for the first event, then drains up to n.
// A timeout with no events is an empty tick, not an error.
func BlockFor(timeout time.Duration, n int) PollStrategy {
	return PollStrategy{kind: StrategyBlockFor, n: max(n, 1), timeout: timeout}
}

// Kind returns the strategy's discriminant.
func (s PollStrategy) Kind() StrategyKind { return s.kind }
