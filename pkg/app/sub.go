package app

import (
	"gitlab.com/tinyland/lab/weft/pkg/event"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// EventClauseKind discriminates an event clause.
type EventClauseKind uint8

const (
	// MatchAny matches every event.
	MatchAny EventClauseKind = iota
	// MatchAnyUser matches every user-defined event.
	MatchAnyUser
	// MatchTick matches tick events.
	MatchTick
	// MatchWindowResize matches resize events regardless of size.
	MatchWindowResize
	// MatchKey matches a keyboard event by exact key and modifiers.
	MatchKey
	// MatchUser matches one user-defined event by equality.
	MatchUser
)

// EventClause is the trigger half of a subscription: it decides whether a
// concrete event is of interest, independent of the activation clause.
// The zero EventClause matches every event.
type EventClause[U comparable] struct {
	kind EventClauseKind
	key  event.KeyEvent
	user U
}

// OnAny matches every event.
func OnAny[U comparable]() EventClause[U] {
	return EventClause[U]{kind: MatchAny}
}

// OnAnyUser matches every user-defined event.
func OnAnyUser[U comparable]() EventClause[U] {
	return EventClause[U]{kind: MatchAnyUser}
}

// OnTick matches tick events.
func OnTick[U comparable]() EventClause[U] {
	return EventClause[U]{kind: MatchTick}
}

// OnWindowResize matches window-resize events.
func OnWindowResize[U comparable]() EventClause[U] {
	return EventClause[U]{kind: MatchWindowResize}
}

// OnKey matches one keyboard event exactly, key and modifiers both.
func OnKey[U comparable](k event.KeyEvent) EventClause[U] {
	return EventClause[U]{kind: MatchKey, key: k}
}

// OnUser matches one user-defined event by equality.
func OnUser[U comparable](u U) EventClause[U] {
	return EventClause[U]{kind: MatchUser, user: u}
}

// Kind returns the clause's discriminant.
func (c EventClause[U]) Kind() EventClauseKind { return c.kind }

// Matches reports whether the clause accepts ev.
func (c EventClause[U]) Matches(ev event.Event[U]) bool {
	switch c.kind {
	case MatchAny:
		return true
	case MatchAnyUser:
		return ev.Type == event.TypeUser
	case MatchTick:
		return ev.Type == event.TypeTick
	case MatchWindowResize:
		return ev.Type == event.TypeResize
	case MatchKey:
		return ev.Type == event.TypeKeyboard && ev.Key == c.key
	case MatchUser:
		return ev.Type == event.TypeUser && ev.User == c.user
	default:
		return false
	}
}

// Snapshot is the read surface an activation clause is evaluated against:
// the mounted-component set at one instant of the foreground loop. A View
// satisfies it.
type Snapshot interface {
	Mounted(id string) bool
	Query(id string, attr props.Attr) (props.AttrValue, bool, error)
	State(id string) (state.State, error)
}

type subClauseKind uint8

const (
	clauseAlways subClauseKind = iota
	clauseIsMounted
	clauseHasAttrValue
	clauseHasState
	clauseNot
	clauseAnd
	clauseOr
)

// SubClause is the guard half of a subscription: a boolean expression
// over the mounted-component set, evaluated fresh for every candidate
// delivery. Clauses are finite trees built by the constructors below;
// evaluation is pure and missing ids simply make the predicate false.
// The zero SubClause is Always.
type SubClause struct {
	kind  subClauseKind
	id    string
	attr  props.Attr
	value props.AttrValue
	state state.State
	left  *SubClause
	right *SubClause
}

// Always holds unconditionally.
func Always() SubClause { return SubClause{kind: clauseAlways} }

// IsMounted holds while a component is mounted under id.
func IsMounted(id string) SubClause {
	return SubClause{kind: clauseIsMounted, id: id}
}

// HasAttrValue holds while component id is mounted and carries exactly
// value under attr.
func HasAttrValue(id string, attr props.Attr, value props.AttrValue) SubClause {
	return SubClause{kind: clauseHasAttrValue, id: id, attr: attr, value: value}
}

// HasState holds while component id is mounted and reports exactly st.
func HasState(id string, st state.State) SubClause {
	return SubClause{kind: clauseHasState, id: id, state: st}
}

// Not negates a clause.
func Not(c SubClause) SubClause {
	return SubClause{kind: clauseNot, left: &c}
}

// And holds when both clauses hold. Evaluation short-circuits.
func And(a, b SubClause) SubClause {
	return SubClause{kind: clauseAnd, left: &a, right: &b}
}

// Or holds when either clause holds. Evaluation short-circuits.
func Or(a, b SubClause) SubClause {
	return SubClause{kind: clauseOr, left: &a, right: &b}
}

// Evaluate walks the clause tree against the given snapshot.
func (c SubClause) Evaluate(view Snapshot) bool {
	switch c.kind {
	case clauseAlways:
		return true
	case clauseIsMounted:
		return view.Mounted(c.id)
	case clauseHasAttrValue:
		value, ok, err := view.Query(c.id, c.attr)
		return err == nil && ok && value.Equal(c.value)
	case clauseHasState:
		st, err := view.State(c.id)
		return err == nil && st.Equal(c.state)
	case clauseNot:
		return !c.left.Evaluate(view)
	case clauseAnd:
		return c.left.Evaluate(view) && c.right.Evaluate(view)
	case clauseOr:
		return c.left.Evaluate(view) || c.right.Evaluate(view)
	default:
		return false
	}
}

// Equal reports whether two clause trees are structurally identical.
func (c SubClause) Equal(o SubClause) bool {
	if c.kind != o.kind || c.id != o.id || c.attr != o.attr {
		return false
	}
	if !c.value.Equal(o.value) || !c.state.Equal(o.state) {
		return false
	}
	if (c.left == nil) != (o.left == nil) || (c.right == nil) != (o.right == nil) {
		return false
	}
	if c.left != nil && !c.left.Equal(*o.left) {
		return false
	}
	if c.right != nil && !c.right.Equal(*o.right) {
		return false
	}
	return true
}

// Sub pairs the trigger and the guard: a component receives an event
// through a subscription only when the event clause matches the event and
// the activation clause holds against the mounted set.
type Sub[U comparable] struct {
	ev     EventClause[U]
	clause SubClause
}

// NewSub builds a subscription from its trigger and guard.
func NewSub[U comparable](ev EventClause[U], when SubClause) Sub[U] {
	return Sub[U]{ev: ev, clause: when}
}

// EventClause returns the subscription's trigger.
func (s Sub[U]) EventClause() EventClause[U] { return s.ev }

// Clause returns the subscription's guard.
func (s Sub[U]) Clause() SubClause { return s.clause }

// Equal reports whether two subscriptions have the same trigger and guard.
func (s Sub[U]) Equal(o Sub[U]) bool {
	return s.ev == o.ev && s.clause.Equal(o.clause)
}
