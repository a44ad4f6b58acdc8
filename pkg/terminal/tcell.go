package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gitlab.com/tinyland/lab/weft/pkg/event"
	"gitlab.com/tinyland/lab/weft/pkg/render"
)

// TcellBackend drives a full-screen session through tcell. Init switches to
// the alternate screen and raw input; Fini restores the terminal.
type TcellBackend struct {
	screen  tcell.Screen
	started bool
	closed  bool
}

// NewTcellBackend allocates a backend on the process terminal.
func NewTcellBackend() (*TcellBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: allocate screen: %w", err)
	}
	return &TcellBackend{screen: screen}, nil
}

// NewTcellBackendFor wraps an existing screen. Tests pass a tcell
// SimulationScreen here.
func NewTcellBackendFor(screen tcell.Screen) *TcellBackend {
	return &TcellBackend{screen: screen}
}

// Init takes over the terminal.
func (b *TcellBackend) Init() error {
	if b.closed {
		return ErrClosed
	}
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("terminal: init screen: %w", err)
	}
	b.screen.HideCursor()
	b.started = true
	return nil
}

// Fini restores the terminal. Safe to call more than once.
func (b *TcellBackend) Fini() {
	if b.started && !b.closed {
		b.screen.Fini()
	}
	b.closed = true
}

// Size returns the terminal dimensions in cells.
func (b *TcellBackend) Size() (int, int) {
	return b.screen.Size()
}

// Clear wipes the screen and forces a full repaint on the next Present.
func (b *TcellBackend) Clear() error {
	if b.closed {
		return ErrClosed
	}
	b.screen.Clear()
	b.screen.Sync()
	return nil
}

// Present draws the frame's buffer and applies its cursor request.
func (b *TcellBackend) Present(f *render.Frame) error {
	if b.closed {
		return ErrClosed
	}
	buf := f.Buffer()
	area := buf.Area()
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			cell, ok := buf.Get(x, y)
			if !ok || cell.IsContinuation() {
				continue
			}
			b.screen.SetContent(x, y, cell.Rune, cell.Comb, tcellStyle(cell.Style))
		}
	}
	if x, y, visible := f.Cursor(); visible {
		b.screen.ShowCursor(x, y)
	} else {
		b.screen.HideCursor()
	}
	b.screen.Show()
	return nil
}

// PollEvent returns the next pending keyboard or resize event. Events the
// framework does not model, mouse input for one, are discarded.
func (b *TcellBackend) PollEvent() (event.Event[event.NoUserEvent], bool, error) {
	if b.closed {
		return event.None[event.NoUserEvent](), false, ErrClosed
	}
	for b.screen.HasPendingEvent() {
		switch ev := b.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ke, ok := translateKey(ev); ok {
				return event.Keyboard[event.NoUserEvent](ke), true, nil
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			return event.Resize[event.NoUserEvent](w, h), true, nil
		}
	}
	return event.None[event.NoUserEvent](), false, nil
}

// translateKey maps a tcell key event onto the framework keyboard model.
func translateKey(ev *tcell.EventKey) (event.KeyEvent, bool) {
	mods := event.ModNone
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= event.ModShift
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= event.ModCtrl
	}
	if ev.Modifiers()&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mods |= event.ModAlt
	}

	var key event.Key
	switch ev.Key() {
	case tcell.KeyRune:
		key = event.Char(ev.Rune())
	case tcell.KeyEnter:
		key = event.Key{Code: event.KeyEnter}
	case tcell.KeyTab:
		key = event.Key{Code: event.KeyTab}
	case tcell.KeyBacktab:
		key = event.Key{Code: event.KeyBackTab}
	case tcell.KeyEsc:
		key = event.Key{Code: event.KeyEsc}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		key = event.Key{Code: event.KeyBackspace}
	case tcell.KeyDelete:
		key = event.Key{Code: event.KeyDelete}
	case tcell.KeyInsert:
		key = event.Key{Code: event.KeyInsert}
	case tcell.KeyUp:
		key = event.Key{Code: event.KeyUp}
	case tcell.KeyDown:
		key = event.Key{Code: event.KeyDown}
	case tcell.KeyLeft:
		key = event.Key{Code: event.KeyLeft}
	case tcell.KeyRight:
		key = event.Key{Code: event.KeyRight}
	case tcell.KeyHome:
		key = event.Key{Code: event.KeyHome}
	case tcell.KeyEnd:
		key = event.Key{Code: event.KeyEnd}
	case tcell.KeyPgUp:
		key = event.Key{Code: event.KeyPageUp}
	case tcell.KeyPgDn:
		key = event.Key{Code: event.KeyPageDown}
	default:
		switch k := ev.Key(); {
		case k >= tcell.KeyF1 && k <= tcell.KeyF64:
			key = event.Function(int(k-tcell.KeyF1) + 1)
		case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
			key = event.Char('a' + rune(k-tcell.KeyCtrlA))
			mods |= event.ModCtrl
		default:
			return event.KeyEvent{}, false
		}
	}
	return event.KeyEvent{Key: key, Mods: mods}, true
}
