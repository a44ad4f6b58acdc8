package props

import "gitlab.com/tinyland/lab/weft/pkg/state"

// PayloadKind discriminates the payload shapes.
type PayloadKind uint8

const (
	PayloadKindNone PayloadKind = iota
	PayloadKindOne
	PayloadKindPair
	PayloadKindVec
	PayloadKindMap
)

// Payload carries arbitrary scalar data inside an attribute, for component
// configuration the stock attributes do not cover.
type Payload struct {
	kind PayloadKind
	one  state.Value
	pair [2]state.Value
	vec  []state.Value
	m    map[string]state.Value
}

// PayloadOne wraps a single scalar.
func PayloadOne(v state.Value) Payload {
	return Payload{kind: PayloadKindOne, one: v}
}

// PayloadPair wraps two scalars.
func PayloadPair(a, b state.Value) Payload {
	return Payload{kind: PayloadKindPair, pair: [2]state.Value{a, b}}
}

// PayloadVec wraps an ordered list of scalars.
func PayloadVec(vs ...state.Value) Payload {
	return Payload{kind: PayloadKindVec, vec: vs}
}

// PayloadMap wraps a string-keyed map of scalars.
func PayloadMap(m map[string]state.Value) Payload {
	return Payload{kind: PayloadKindMap, m: m}
}

// Kind returns the payload shape.
func (p Payload) Kind() PayloadKind { return p.kind }

// One returns the single scalar, or the zero Value for other shapes.
func (p Payload) One() state.Value { return p.one }

// Pair returns both scalars, or zero Values for other shapes.
func (p Payload) Pair() (state.Value, state.Value) { return p.pair[0], p.pair[1] }

// Vec returns the scalar list, or nil for other shapes.
func (p Payload) Vec() []state.Value { return p.vec }

// Get returns the scalar stored under key in a map payload.
func (p Payload) Get(key string) (state.Value, bool) {
	v, ok := p.m[key]
	return v, ok
}

// Equal reports whether two payloads hold the same shape and values.
func (p Payload) Equal(o Payload) bool {
	if p.kind != o.kind {
		return false
	}
	switch p.kind {
	case PayloadKindOne:
		return p.one == o.one
	case PayloadKindPair:
		return p.pair == o.pair
	case PayloadKindVec:
		if len(p.vec) != len(o.vec) {
			return false
		}
		for i := range p.vec {
			if p.vec[i] != o.vec[i] {
				return false
			}
		}
		return true
	case PayloadKindMap:
		if len(p.m) != len(o.m) {
			return false
		}
		for k, v := range p.m {
			if ov, ok := o.m[k]; !ok || ov != v {
				return false
			}
		}
		return true
	default:
		return true
	}
}
