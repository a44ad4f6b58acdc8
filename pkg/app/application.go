// Package app assembles the framework core: a View of mounted components
// under a single-focus state machine with a LIFO backlog, a subscription
// registry deciding which non-focused components receive each event, and
// the Application facade draining the background listener once per loop
// iteration and routing every drained event into application messages.
//
// The foreground loop owns everything here exclusively; only the listener
// worker runs concurrently, behind its channel.
package app

import (
	"errors"
	"fmt"

	"gitlab.com/tinyland/lab/weft/pkg/event"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/listener"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// Sentinel errors reported by the subscription API.
var (
	// ErrAlreadySubscribed means an identical subscription is already
	// registered for the component.
	ErrAlreadySubscribed = errors.New("app: already subscribed")

	// ErrNotSubscribed means no subscription matched the unsubscribe
	// request.
	ErrNotSubscribed = errors.New("app: not subscribed")
)

// AttrBinding is one attribute assignment produced by an Injector.
type AttrBinding struct {
	Attr  props.Attr
	Value props.AttrValue
}

// Injector contributes attributes to components as they are mounted,
// letting themes and presets reach every component without the caller
// threading them through each mount call.
type Injector interface {
	// Inject returns the attributes to apply to the component mounted
	// under id. An empty result leaves the component untouched.
	Inject(id string) []AttrBinding
}

// subscription is one registry entry: a subscription bound to its target
// component. The registry preserves insertion order, which fixes the
// delivery order among subscribed components.
type subscription[U comparable] struct {
	id  string
	sub Sub[U]
}

// Application ties the view, the subscription registry, and the event
// listener together. One Tick call drains a bounded batch of events and
// routes each to the focused component first, then to every other mounted
// component whose subscription accepts it.
//
// All methods must be called from the single foreground goroutine.
type Application[M any, U comparable] struct {
	view      *View[M, U]
	subs      []subscription[U]
	listener  *listener.EventListener[U]
	injectors []Injector
}

// New validates the listener configuration, starts its worker, and
// returns the application driving it.
func New[M any, U comparable](cfg *listener.Cfg[U]) (*Application[M, U], error) {
	l, err := cfg.Start()
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return &Application[M, U]{
		view:     NewView[M, U](),
		listener: l,
	}, nil
}

// Mount registers a component under id together with its subscriptions,
// and applies every registered injector to it. Subscriptions already
// present are skipped.
func (a *Application[M, U]) Mount(id string, c Component[M, U], subs ...Sub[U]) error {
	if err := a.view.Mount(id, c); err != nil {
		return err
	}
	for _, in := range a.injectors {
		for _, b := range in.Inject(id) {
			c.SetAttr(b.Attr, b.Value)
		}
	}
	for _, s := range subs {
		if err := a.Subscribe(id, s); err != nil && !errors.Is(err, ErrAlreadySubscribed) {
			return err
		}
	}
	return nil
}

// Umount removes the component under id along with all its
// subscriptions. If it holds focus, focus falls back to the backlog.
func (a *Application[M, U]) Umount(id string) error {
	if err := a.view.Umount(id); err != nil {
		return err
	}
	a.dropSubs(id)
	return nil
}

// Remount replaces the component under id in place, keeping its mount
// order and focus standing, and replaces its subscriptions with the
// given set.
func (a *Application[M, U]) Remount(id string, c Component[M, U], subs ...Sub[U]) error {
	if err := a.view.Remount(id, c); err != nil {
		return err
	}
	a.dropSubs(id)
	for _, in := range a.injectors {
		for _, b := range in.Inject(id) {
			c.SetAttr(b.Attr, b.Value)
		}
	}
	for _, s := range subs {
		if err := a.Subscribe(id, s); err != nil && !errors.Is(err, ErrAlreadySubscribed) {
			return err
		}
	}
	return nil
}

// Active gives focus to component id.
func (a *Application[M, U]) Active(id string) error { return a.view.Active(id) }

// Blur takes focus away from the current holder, restoring the most
// recently backlogged component.
func (a *Application[M, U]) Blur() { a.view.Blur() }

// Focus returns the id of the focused component, or "" when unfocused.
func (a *Application[M, U]) Focus() string { return a.view.Focus() }

// CycleFocusForward moves focus to the next mounted component in mount
// order, wrapping.
func (a *Application[M, U]) CycleFocusForward() { a.view.CycleFocusForward() }

// CycleFocusBackward moves focus to the previous mounted component in
// mount order, wrapping.
func (a *Application[M, U]) CycleFocusBackward() { a.view.CycleFocusBackward() }

// Mounted reports whether a component is mounted under id.
func (a *Application[M, U]) Mounted(id string) bool { return a.view.Mounted(id) }

// MountedIds returns the mounted ids in mount order.
func (a *Application[M, U]) MountedIds() []string { return a.view.MountedIds() }

// Query returns the attribute stored under attr on component id.
func (a *Application[M, U]) Query(id string, attr props.Attr) (props.AttrValue, bool, error) {
	return a.view.Query(id, attr)
}

// SetAttr stores an attribute value on component id.
func (a *Application[M, U]) SetAttr(id string, attr props.Attr, value props.AttrValue) error {
	return a.view.SetAttr(id, attr, value)
}

// State reports the state of component id.
func (a *Application[M, U]) State(id string) (state.State, error) {
	return a.view.State(id)
}

// View draws component id into area of the frame.
func (a *Application[M, U]) View(id string, f *render.Frame, area layout.Rect) error {
	return a.view.Render(id, f, area)
}

// AddInjector registers an injector applied to every component mounted
// from now on.
func (a *Application[M, U]) AddInjector(in Injector) {
	if in != nil {
		a.injectors = append(a.injectors, in)
	}
}

// Subscribe registers a subscription for component id. The component must
// be mounted, and an identical subscription must not already exist.
func (a *Application[M, U]) Subscribe(id string, sub Sub[U]) error {
	if !a.view.Mounted(id) {
		return fmt.Errorf("%w: %q", ErrComponentNotMounted, id)
	}
	for _, entry := range a.subs {
		if entry.id == id && entry.sub.Equal(sub) {
			return fmt.Errorf("%w: %q", ErrAlreadySubscribed, id)
		}
	}
	a.subs = append(a.subs, subscription[U]{id: id, sub: sub})
	return nil
}

// Unsubscribe removes every subscription of component id whose event
// clause equals ev.
func (a *Application[M, U]) Unsubscribe(id string, ev EventClause[U]) error {
	kept := a.subs[:0]
	removed := 0
	for _, entry := range a.subs {
		if entry.id == id && entry.sub.ev == ev {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	a.subs = kept
	if removed == 0 {
		return fmt.Errorf("%w: %q", ErrNotSubscribed, id)
	}
	return nil
}

// dropSubs removes every subscription of component id.
func (a *Application[M, U]) dropSubs(id string) {
	kept := a.subs[:0]
	for _, entry := range a.subs {
		if entry.id != id {
			kept = append(kept, entry)
		}
	}
	a.subs = kept
}

// Tick drains events from the listener per the strategy and routes each
// one, returning the produced messages in delivery order: the focused
// component's message first per event, then subscribed components' in
// subscription order. A listener failure surfaces as the tick error and,
// once the worker has died, every later call reports the same cause.
func (a *Application[M, U]) Tick(strategy PollStrategy) ([]M, error) {
	events, err := a.drain(strategy)
	if err != nil {
		return nil, fmt.Errorf("app: tick: %w", err)
	}
	var msgs []M
	for _, ev := range events {
		msgs = append(msgs, a.route(ev)...)
	}
	return msgs, nil
}

// RestartListener stops the current listener and starts a fresh one from
// cfg. Use after a poll failure to resume event delivery, or to change
// the port set at runtime.
func (a *Application[M, U]) RestartListener(cfg *listener.Cfg[U]) error {
	if err := a.listener.Stop(); err != nil {
		return fmt.Errorf("app: restart listener: %w", err)
	}
	l, err := cfg.Start()
	if err != nil {
		return fmt.Errorf("app: restart listener: %w", err)
	}
	a.listener = l
	return nil
}

// Stop shuts the listener down. The view and its components stay usable;
// only event delivery ends.
func (a *Application[M, U]) Stop() error {
	if err := a.listener.Stop(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return nil
}

// drain collects one batch of events per the strategy.
func (a *Application[M, U]) drain(strategy PollStrategy) ([]event.Event[U], error) {
	switch strategy.kind {
	case StrategyOnce:
		ev, ok, err := a.listener.Poll(a.listener.PollTimeout())
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return []event.Event[U]{ev}, nil

	case StrategyUpTo:
		return a.drainReady(nil, strategy.n)

	case StrategyBlockFor:
		ev, ok, err := a.listener.Poll(strategy.timeout)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return a.drainReady([]event.Event[U]{ev}, strategy.n)

	default:
		return nil, nil
	}
}

// drainReady extends events with immediately available ones up to a total
// of n.
func (a *Application[M, U]) drainReady(events []event.Event[U], n int) ([]event.Event[U], error) {
	for len(events) < n {
		ev, ok, err := a.listener.TryPoll()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		events = append(events, ev)
	}
	return events, nil
}

// route delivers one event: first to the focused component, then to every
// other mounted component with a subscription whose event clause matches
// and whose activation clause holds. A component receives the event at
// most once, whichever path reaches it first.
func (a *Application[M, U]) route(ev event.Event[U]) []M {
	var msgs []M
	focus := a.view.Focus()
	if focus != "" {
		if m, ok := a.view.Forward(focus, ev); ok {
			msgs = append(msgs, m)
		}
	}
	var delivered map[string]bool
	for _, entry := range a.subs {
		if entry.id == focus || delivered[entry.id] {
			continue
		}
		if !a.view.Mounted(entry.id) {
			continue
		}
		if !entry.sub.ev.Matches(ev) || !entry.sub.clause.Evaluate(a.view) {
			continue
		}
		if delivered == nil {
			delivered = make(map[string]bool)
		}
		delivered[entry.id] = true
		if m, ok := a.view.Forward(entry.id, ev); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
