package terminal

import "gitlab.com/tinyland/lab/weft/pkg/event"

// InputPort adapts a backend's input stream into a poll source for the
// event listener, lifting terminal events into the application's user
// event space.
type InputPort[U comparable] struct {
	backend Backend
}

// NewInputPort returns a poll source reading from b.
func NewInputPort[U comparable](b Backend) *InputPort[U] {
	return &InputPort[U]{backend: b}
}

// Poll returns the backend's next pending event, if any.
func (p *InputPort[U]) Poll() (event.Event[U], bool, error) {
	ev, ok, err := p.backend.PollEvent()
	if err != nil {
		return event.None[U](), false, err
	}
	if !ok {
		return event.None[U](), false, nil
	}
	switch ev.Type {
	case event.TypeKeyboard:
		return event.Keyboard[U](ev.Key), true, nil
	case event.TypeResize:
		return event.Resize[U](ev.Width, ev.Height), true, nil
	default:
		return event.None[U](), false, nil
	}
}
