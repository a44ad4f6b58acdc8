package app

import (
	"errors"
	"fmt"

	"gitlab.com/tinyland/lab/weft/pkg/event"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// Sentinel errors reported by the view's mount API. Wrapped causes carry
// the component id; match with errors.Is.
var (
	// ErrComponentAlreadyMounted means Mount was called with an id that is
	// already in use.
	ErrComponentAlreadyMounted = errors.New("app: component already mounted")

	// ErrComponentNotMounted means the id names no mounted component.
	ErrComponentNotMounted = errors.New("app: component not mounted")
)

// View holds the mounted components and the focus state machine: at most
// one component holds focus, and previously focused components wait in a
// LIFO backlog that blur and umount promote from. The focused id is never
// simultaneously in the backlog, the backlog holds no duplicates, and both
// only ever name mounted components.
//
// A View is not safe for concurrent use; like the Application that owns
// it, it belongs to the foreground loop.
type View[M any, U comparable] struct {
	components map[string]Component[M, U]
	order      []string
	focus      string
	stack      []string
}

// NewView returns an empty, unfocused view.
func NewView[M any, U comparable]() *View[M, U] {
	return &View[M, U]{components: make(map[string]Component[M, U])}
}

// Mount registers a component under id. Mounting an id twice is an error.
func (v *View[M, U]) Mount(id string, c Component[M, U]) error {
	if id == "" {
		return fmt.Errorf("app: mount: empty component id")
	}
	if c == nil {
		return fmt.Errorf("app: mount %q: nil component", id)
	}
	if _, ok := v.components[id]; ok {
		return fmt.Errorf("%w: %q", ErrComponentAlreadyMounted, id)
	}
	v.components[id] = c
	v.order = append(v.order, id)
	return nil
}

// Umount removes the component under id. If id holds focus it is blurred
// first, promoting the top of the backlog; the id is then stripped from
// every internal structure.
func (v *View[M, U]) Umount(id string) error {
	if _, ok := v.components[id]; !ok {
		return fmt.Errorf("%w: %q", ErrComponentNotMounted, id)
	}
	if v.focus == id {
		v.Blur()
	}
	v.dropBacklog(id)
	delete(v.components, id)
	for i, oid := range v.order {
		if oid == id {
			v.order = append(v.order[:i], v.order[i+1:]...)
			break
		}
	}
	return nil
}

// Remount replaces the component under id in place: it keeps its
// mount-order position, a focused id stays focused, and a backlogged id
// keeps its backlog slot. An unmounted id is mounted fresh.
func (v *View[M, U]) Remount(id string, c Component[M, U]) error {
	if _, ok := v.components[id]; !ok {
		return v.Mount(id, c)
	}
	hadFocus := v.focus == id
	slot := -1
	for i, sid := range v.stack {
		if sid == id {
			slot = i
			break
		}
	}
	pos := -1
	for i, oid := range v.order {
		if oid == id {
			pos = i
			break
		}
	}
	if err := v.Umount(id); err != nil {
		return err
	}
	if err := v.Mount(id, c); err != nil {
		return err
	}
	if pos >= 0 && pos < len(v.order)-1 {
		copy(v.order[pos+1:], v.order[pos:len(v.order)-1])
		v.order[pos] = id
	}
	if hadFocus {
		return v.Active(id)
	}
	if slot >= 0 {
		v.stack = append(v.stack, "")
		copy(v.stack[slot+1:], v.stack[slot:])
		v.stack[slot] = id
	}
	return nil
}

// Mounted reports whether a component is mounted under id.
func (v *View[M, U]) Mounted(id string) bool {
	_, ok := v.components[id]
	return ok
}

// MountedIds returns the mounted ids in mount order.
func (v *View[M, U]) MountedIds() []string {
	ids := make([]string, len(v.order))
	copy(ids, v.order)
	return ids
}

// Focus returns the id of the focused component, or "" when unfocused.
func (v *View[M, U]) Focus() string { return v.focus }

// Active gives focus to id. The previous holder, if any, is blurred and
// pushed onto the backlog; the new holder is removed from the backlog. A
// component that already holds focus keeps it, with the backlog untouched.
func (v *View[M, U]) Active(id string) error {
	if _, ok := v.components[id]; !ok {
		return fmt.Errorf("%w: %q", ErrComponentNotMounted, id)
	}
	if v.focus != "" && v.focus != id {
		v.setFocusFlag(v.focus, false)
		v.pushBacklog(v.focus)
	}
	v.focus = id
	v.setFocusFlag(id, true)
	v.dropBacklog(id)
	return nil
}

// Blur takes focus away from the current holder and restores the most
// recently backlogged component, if any. The blurred component is not
// pushed back onto the backlog. Without a focus holder this is a no-op.
func (v *View[M, U]) Blur() {
	if v.focus == "" {
		return
	}
	v.setFocusFlag(v.focus, false)
	v.focus = ""
	if n := len(v.stack); n > 0 {
		id := v.stack[n-1]
		v.stack = v.stack[:n-1]
		v.focus = id
		v.setFocusFlag(id, true)
	}
}

// CycleFocusForward moves focus to the next mounted component in mount
// order, wrapping around to the first component after the last. Without a
// focus holder it activates the first mounted component.
func (v *View[M, U]) CycleFocusForward() {
	if len(v.order) == 0 {
		return
	}
	if v.focus == "" {
		v.Active(v.order[0])
		return
	}
	idx := (v.focusedIndex() + 1) % len(v.order)
	v.Active(v.order[idx])
}

// CycleFocusBackward moves focus to the previous mounted component in
// mount order, wrapping around to the last component before the first.
// Without a focus holder it activates the last mounted component.
func (v *View[M, U]) CycleFocusBackward() {
	if len(v.order) == 0 {
		return
	}
	if v.focus == "" {
		v.Active(v.order[len(v.order)-1])
		return
	}
	idx := (v.focusedIndex() - 1 + len(v.order)) % len(v.order)
	v.Active(v.order[idx])
}

// focusedIndex returns the index of the focused component in the mount
// order, 0 if not found.
func (v *View[M, U]) focusedIndex() int {
	for i, id := range v.order {
		if id == v.focus {
			return i
		}
	}
	return 0
}

// Query returns the attribute stored under attr on component id. The
// boolean result is false when the component has no such attribute.
func (v *View[M, U]) Query(id string, attr props.Attr) (props.AttrValue, bool, error) {
	c, ok := v.components[id]
	if !ok {
		return props.NoValue, false, fmt.Errorf("%w: %q", ErrComponentNotMounted, id)
	}
	value, present := c.Query(attr)
	return value, present, nil
}

// SetAttr stores an attribute value on component id.
func (v *View[M, U]) SetAttr(id string, attr props.Attr, value props.AttrValue) error {
	c, ok := v.components[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrComponentNotMounted, id)
	}
	c.SetAttr(attr, value)
	return nil
}

// State reports the state of component id.
func (v *View[M, U]) State(id string) (state.State, error) {
	c, ok := v.components[id]
	if !ok {
		return state.None(), fmt.Errorf("%w: %q", ErrComponentNotMounted, id)
	}
	return c.State(), nil
}

// Render draws component id into area of the frame.
func (v *View[M, U]) Render(id string, f *render.Frame, area layout.Rect) error {
	c, ok := v.components[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrComponentNotMounted, id)
	}
	c.View(f, area)
	return nil
}

// Forward delivers an event to component id, returning the message it
// produced. An unmounted id produces nothing.
func (v *View[M, U]) Forward(id string, ev event.Event[U]) (M, bool) {
	c, ok := v.components[id]
	if !ok {
		var zero M
		return zero, false
	}
	return c.On(ev)
}

// setFocusFlag notifies a component of a focus transition through its
// focus attribute.
func (v *View[M, U]) setFocusFlag(id string, focused bool) {
	if c, ok := v.components[id]; ok {
		c.SetAttr(props.AttrFocus, props.Flag(focused))
	}
}

// pushBacklog appends id to the backlog, removing any existing occurrence
// first so the backlog stays duplicate-free.
func (v *View[M, U]) pushBacklog(id string) {
	v.dropBacklog(id)
	v.stack = append(v.stack, id)
}

// dropBacklog removes id from the backlog if present.
func (v *View[M, U]) dropBacklog(id string) {
	for i, sid := range v.stack {
		if sid == id {
			v.stack = append(v.stack[:i], v.stack[i+1:]...)
			return
		}
	}
}
