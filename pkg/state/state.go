// Package state defines the values components report about themselves: a
// small tagged union over scalars, with container shapes for components whose
// state is a tuple, list, or map. States are compared exactly when evaluating
// state-based subscription clauses.
package state

// ValueKind discriminates a scalar state value.
type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueBool
	ValueInt
	ValueUint
	ValueFloat
	ValueStr
)

// Value is one scalar. The zero Value is the none value. Values are
// comparable with ==.
type Value struct {
	kind ValueKind
	b    bool
	i    int
	u    uint64
	f    float64
	s    string
}

// Bool wraps a bool.
func Bool(v bool) Value { return Value{kind: ValueBool, b: v} }

// Int wraps an int.
func Int(v int) Value { return Value{kind: ValueInt, i: v} }

// Uint wraps a uint64.
func Uint(v uint64) Value { return Value{kind: ValueUint, u: v} }

// Float wraps a float64.
func Float(v float64) Value { return Value{kind: ValueFloat, f: v} }

// Str wraps a string.
func Str(v string) Value { return Value{kind: ValueStr, s: v} }

// Kind returns the value's discriminant.
func (v Value) Kind() ValueKind { return v.kind }

// Bool returns the wrapped bool, or false for other kinds.
func (v Value) Bool() bool { return v.b }

// Int returns the wrapped int, or 0 for other kinds.
func (v Value) Int() int { return v.i }

// Uint returns the wrapped uint64, or 0 for other kinds.
func (v Value) Uint() uint64 { return v.u }

// Float returns the wrapped float64, or 0 for other kinds.
func (v Value) Float() float64 { return v.f }

// Str returns the wrapped string, or "" for other kinds.
func (v Value) Str() string { return v.s }

// Kind discriminates the state shape.
type Kind uint8

const (
	KindNone Kind = iota
	KindOne
	KindPair
	KindList
	KindMap
)

// State is what a component reports about itself. The zero State is the
// none state. Compare with Equal: list and map shapes are not comparable
// with ==.
type State struct {
	kind Kind
	one  Value
	pair [2]Value
	list []Value
	m    map[string]Value
}

// None returns the empty state.
func None() State { return State{} }

// One wraps a single value.
func One(v Value) State { return State{kind: KindOne, one: v} }

// Pair wraps two values.
func Pair(a, b Value) State { return State{kind: KindPair, pair: [2]Value{a, b}} }

// List wraps an ordered sequence of values.
func List(vs ...Value) State { return State{kind: KindList, list: vs} }

// Map wraps a keyed set of values.
func Map(m map[string]Value) State { return State{kind: KindMap, m: m} }

// Kind returns the state's shape.
func (s State) Kind() Kind { return s.kind }

// One returns the single wrapped value, or the zero Value for other shapes.
func (s State) One() Value { return s.one }

// Pair returns the two wrapped values.
func (s State) Pair() (Value, Value) { return s.pair[0], s.pair[1] }

// List returns the wrapped sequence. The slice is shared, not copied.
func (s State) List() []Value { return s.list }

// Get returns the value stored under key in a map state.
func (s State) Get(key string) (Value, bool) {
	v, ok := s.m[key]
	return v, ok
}

// Equal reports whether two states are exactly equal: same shape and same
// values, with lists compared element-wise and maps key-wise.
func (s State) Equal(o State) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case KindOne:
		return s.one == o.one
	case KindPair:
		return s.pair == o.pair
	case KindList:
		if len(s.list) != len(o.list) {
			return false
		}
		for i := range s.list {
			if s.list[i] != o.list[i] {
				return false
			}
		}
		return true
	case KindMap:
		if len(s.m) != len(o.m) {
			return false
		}
		for k, v := range s.m {
			if ov, ok := o.m[k]; !ok || ov != v {
				return false
			}
		}
		return true
	default:
		return true
	}
}
