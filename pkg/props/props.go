// Package props defines the attribute system shared by every component:
// attribute selectors, the tagged value union stored under them, and the
// supporting value types (colors, styles, text spans, borders, payloads).
// Components keep their visual and behavioral configuration in a Props store
// so the application can query and mutate it generically, and so
// subscription clauses can match on exact attribute values.
package props

// Props is the attribute store carried by a component. The zero value is
// ready to use.
type Props struct {
	attrs map[Attr]AttrValue
}

// NewProps returns an empty attribute store.
func NewProps() *Props {
	return &Props{attrs: make(map[Attr]AttrValue)}
}

// Get returns the value stored under a, if any.
func (p *Props) Get(a Attr) (AttrValue, bool) {
	v, ok := p.attrs[a]
	return v, ok
}

// GetOr returns the value stored under a, or def when absent.
func (p *Props) GetOr(a Attr, def AttrValue) AttrValue {
	if v, ok := p.attrs[a]; ok {
		return v
	}
	return def
}

// Set stores v under a, replacing any previous value.
func (p *Props) Set(a Attr, v AttrValue) {
	if p.attrs == nil {
		p.attrs = make(map[Attr]AttrValue)
	}
	p.attrs[a] = v
}

// Delete removes the value stored under a, if any.
func (p *Props) Delete(a Attr) {
	delete(p.attrs, a)
}

// Len returns how many attributes are set.
func (p *Props) Len() int { return len(p.attrs) }
