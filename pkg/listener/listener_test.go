package listener

import (
	"errors"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/weft/pkg/event"
)

type noEv = event.NoUserEvent

func keyEv(r rune) event.Event[noEv] {
	return event.Keyboard[noEv](event.KeyPress(event.Char(r)))
}

// --- Port Tests ---

func TestPortDueImmediately(t *testing.T) {
	p := NewPort[noEv](NewMockPoll[noEv](), 10*time.Millisecond, 1)
	if !p.ShouldPoll(time.Now()) {
		t.Error("fresh port should be due immediately")
	}
}

func TestPortAdvanceReschedules(t *testing.T) {
	p := NewPort[noEv](NewMockPoll[noEv](), 50*time.Millisecond, 1)
	now := time.Now()

	p.Advance(now)

	if p.ShouldPoll(now) {
		t.Error("port should not be due right after Advance")
	}
	if p.ShouldPoll(now.Add(20 * time.Millisecond)) {
		t.Error("port should not be due before one interval has elapsed")
	}
	if !p.ShouldPoll(now.Add(50 * time.Millisecond)) {
		t.Error("port should be due once the interval has elapsed")
	}
	if got := p.NextPoll(); !got.Equal(now.Add(50 * time.Millisecond)) {
		t.Errorf("NextPoll = %v, want %v", got, now.Add(50*time.Millisecond))
	}
}

func TestPortMaxPollClamp(t *testing.T) {
	p := NewPort[noEv](NewMockPoll[noEv](), time.Second, 0)
	if p.MaxPoll() != 1 {
		t.Errorf("MaxPoll = %d, want 1", p.MaxPoll())
	}
	p = NewPort[noEv](NewMockPoll[noEv](), time.Second, 8)
	if p.MaxPoll() != 8 {
		t.Errorf("MaxPoll = %d, want 8", p.MaxPoll())
	}
}

// --- Cfg Tests ---

func TestCfgStartRejectsBadInterval(t *testing.T) {
	_, err := NewCfg[noEv]().WithPort(NewMockPoll[noEv](), 0, 1).Start()
	if !errors.Is(err, ErrCouldNotStart) {
		t.Fatalf("Start error = %v, want ErrCouldNotStart", err)
	}
}

func TestCfgStartRejectsNegativeTick(t *testing.T) {
	_, err := NewCfg[noEv]().WithTickInterval(-time.Second).Start()
	if !errors.Is(err, ErrCouldNotStart) {
		t.Fatalf("Start error = %v, want ErrCouldNotStart", err)
	}
}

func TestCfgPollTimeoutDefault(t *testing.T) {
	l, err := NewCfg[noEv]().Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer l.Stop()

	if l.PollTimeout() != defaultPollTimeout {
		t.Errorf("PollTimeout = %v, want %v", l.PollTimeout(), defaultPollTimeout)
	}
}

// --- Listener Tests ---

func TestListenerDeliversEvents(t *testing.T) {
	src := NewMockPoll(WithEvents(keyEv('a')))
	l, err := NewCfg[noEv]().WithPort(src, 10*time.Millisecond, 1).Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer l.Stop()

	ev, ok, err := l.Poll(500 * time.Millisecond)
	if err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if !ok {
		t.Fatal("timed out waiting for event")
	}
	if ev != keyEv('a') {
		t.Errorf("event = %+v, want key 'a'", ev)
	}
}

func TestListenerFIFOAcrossSources(t *testing.T) {
	// Two sources registered in order; both due in the same cycle, so the
	// worker detects A before B and the channel must preserve that.
	first := NewMockPoll(WithEvents(keyEv('a')))
	second := NewMockPoll(WithEvents(keyEv('b')))

	l, err := NewCfg[noEv]().
		WithPort(first, 10*time.Millisecond, 1).
		WithPort(second, 10*time.Millisecond, 1).
		Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer l.Stop()

	got := make([]event.Event[noEv], 0, 2)
	for len(got) < 2 {
		ev, ok, err := l.Poll(500 * time.Millisecond)
		if err != nil {
			t.Fatalf("Poll failed: %v", err)
		}
		if !ok {
			t.Fatalf("timed out; got %d events", len(got))
		}
		got = append(got, ev)
	}

	if got[0] != keyEv('a') || got[1] != keyEv('b') {
		t.Errorf("order = %v then %v, want 'a' then 'b'", got[0].Key, got[1].Key)
	}
}

func TestListenerFIFOWithinSource(t *testing.T) {
	src := NewMockPoll(WithEvents(keyEv('1'), keyEv('2'), keyEv('3')))
	l, err := NewCfg[noEv]().WithPort(src, 10*time.Millisecond, 3).Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer l.Stop()

	for _, want := range []rune{'1', '2', '3'} {
		ev, ok, err := l.Poll(500 * time.Millisecond)
		if err != nil {
			t.Fatalf("Poll failed: %v", err)
		}
		if !ok {
			t.Fatalf("timed out waiting for %q", want)
		}
		if ev != keyEv(want) {
			t.Errorf("event = %v, want %q", ev.Key, want)
		}
	}
}

func TestListenerTick(t *testing.T) {
	l, err := NewCfg[noEv]().WithTickInterval(20 * time.Millisecond).Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer l.Stop()

	ev, ok, err := l.Poll(500 * time.Millisecond)
	if err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if !ok {
		t.Fatal("timed out waiting for tick")
	}
	if ev.Type != event.TypeTick {
		t.Errorf("event type = %v, want TypeTick", ev.Type)
	}
}

func TestListenerStopJoinsQuickly(t *testing.T) {
	// A 5ms source that always has an event floods the channel; Stop must
	// still return without deadlock inside the join window.
	src := NewMockPoll(WithRepeat(keyEv('x')))
	l, err := NewCfg[noEv]().WithPort(src, 5*time.Millisecond, 10).Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	start := time.Now()
	if err := l.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Stop took %v, want < 1s", elapsed)
	}
}

func TestListenerStopIdempotent(t *testing.T) {
	l, err := NewCfg[noEv]().Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := l.Stop(); err != nil {
		t.Fatalf("first Stop failed: %v", err)
	}
	if err := l.Stop(); err != nil {
		t.Errorf("second Stop = %v, want nil", err)
	}
	if err := l.Stop(); err != nil {
		t.Errorf("third Stop = %v, want nil", err)
	}
}

func TestListenerPollAfterStop(t *testing.T) {
	l, err := NewCfg[noEv]().Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	_ = l.Stop()

	_, ok, err := l.Poll(10 * time.Millisecond)
	if ok {
		t.Error("Poll after Stop should not yield events")
	}
	if !errors.Is(err, ErrListenerDied) {
		t.Errorf("Poll error = %v, want ErrListenerDied", err)
	}
}

func TestListenerPollErrorIsFatal(t *testing.T) {
	boom := errors.New("device gone")
	src := NewMockPoll(WithPollError[noEv](boom))
	l, err := NewCfg[noEv]().WithPort(src, 5*time.Millisecond, 1).Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer l.Stop()

	_, ok, err := l.Poll(500 * time.Millisecond)
	if ok {
		t.Fatal("Poll should not yield an event from a failing source")
	}
	if !errors.Is(err, ErrPollFailed) {
		t.Fatalf("Poll error = %v, want ErrPollFailed", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Poll error should wrap the source error, got %v", err)
	}

	// The failure is sticky: later polls keep reporting it.
	_, _, err2 := l.Poll(10 * time.Millisecond)
	if !errors.Is(err2, ErrPollFailed) {
		t.Errorf("second Poll error = %v, want ErrPollFailed", err2)
	}
}

func TestListenerErrorDeliveredAfterQueuedEvents(t *testing.T) {
	// Events detected before the failure must still reach the consumer.
	boom := errors.New("late failure")
	src := NewMockPoll(WithEvents(keyEv('a')), WithPollError[noEv](boom))
	l, err := NewCfg[noEv]().WithPort(src, 5*time.Millisecond, 2).Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer l.Stop()

	ev, ok, err := l.Poll(500 * time.Millisecond)
	if err != nil || !ok {
		t.Fatalf("Poll = (%v, %v, %v), want queued event first", ev, ok, err)
	}
	if ev != keyEv('a') {
		t.Errorf("event = %v, want 'a'", ev.Key)
	}

	_, ok, err = l.Poll(500 * time.Millisecond)
	if ok {
		t.Fatal("second Poll should report the failure, not an event")
	}
	if !errors.Is(err, ErrPollFailed) {
		t.Errorf("second Poll error = %v, want ErrPollFailed", err)
	}
}

func TestListenerTryPollEmpty(t *testing.T) {
	l, err := NewCfg[noEv]().Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer l.Stop()

	if _, ok, err := l.TryPoll(); ok || err != nil {
		t.Errorf("TryPoll on idle listener = (ok=%v, err=%v), want (false, nil)", ok, err)
	}
}

func TestListenerPollTimeout(t *testing.T) {
	src := NewMockPoll[noEv]()
	l, err := NewCfg[noEv]().WithPort(src, time.Hour, 1).Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer l.Stop()

	// Drain whatever the initial due cycle produced (nothing), then verify
	// the timeout path returns cleanly.
	start := time.Now()
	_, ok, err := l.Poll(30 * time.Millisecond)
	if ok || err != nil {
		t.Fatalf("Poll = (ok=%v, err=%v), want timeout", ok, err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Poll blocked %v, want ~30ms", elapsed)
	}
}

// --- MockPoll Tests ---

func TestMockPollQueueOrder(t *testing.T) {
	m := NewMockPoll(WithEvents(keyEv('a'), keyEv('b')))

	ev, ok, err := m.Poll()
	if err != nil || !ok || ev != keyEv('a') {
		t.Fatalf("first Poll = (%v, %v, %v), want 'a'", ev.Key, ok, err)
	}
	ev, ok, _ = m.Poll()
	if !ok || ev != keyEv('b') {
		t.Fatalf("second Poll = (%v, %v), want 'b'", ev.Key, ok)
	}
	if _, ok, _ = m.Poll(); ok {
		t.Error("drained mock should report no event")
	}
	if m.CallCount() != 3 {
		t.Errorf("CallCount = %d, want 3", m.CallCount())
	}
}

func TestMockPollRepeat(t *testing.T) {
	m := NewMockPoll(WithRepeat(keyEv('r')))
	for i := 0; i < 3; i++ {
		ev, ok, err := m.Poll()
		if err != nil || !ok || ev != keyEv('r') {
			t.Fatalf("Poll #%d = (%v, %v, %v), want 'r'", i, ev.Key, ok, err)
		}
	}
}

func TestMockPollPush(t *testing.T) {
	m := NewMockPoll[noEv]()
	if _, ok, _ := m.Poll(); ok {
		t.Fatal("empty mock should report no event")
	}
	m.Push(keyEv('z'))
	ev, ok, _ := m.Poll()
	if !ok || ev != keyEv('z') {
		t.Errorf("Poll after Push = (%v, %v), want 'z'", ev.Key, ok)
	}
}

func TestMockPollFunc(t *testing.T) {
	calls := 0
	m := NewMockPoll(WithPollFunc(func() (event.Event[noEv], bool, error) {
		calls++
		if calls > 1 {
			return event.Event[noEv]{}, false, nil
		}
		return keyEv('f'), true, nil
	}))

	ev, ok, _ := m.Poll()
	if !ok || ev != keyEv('f') {
		t.Fatalf("first Poll = (%v, %v), want 'f'", ev.Key, ok)
	}
	if _, ok, _ = m.Poll(); ok {
		t.Error("second Poll should report no event")
	}
}
