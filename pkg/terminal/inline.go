package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/weft/pkg/event"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
)

const readChunk = 256

// InlineBackend draws frames below the shell prompt with raw ANSI instead
// of taking the alternate screen, the way finder-style tools do. Styling
// degrades with the detected color profile.
type InlineBackend struct {
	in  *os.File
	out *os.File

	output   *termenv.Output
	renderer *lipgloss.Renderer

	rawState *term.State
	winch    chan os.Signal
	readc    chan []byte
	stopRead chan struct{}
	readOnce sync.Once

	queue   []event.KeyEvent
	pending []byte

	rows    int // rows the drawn region spans
	curRow  int // region row the terminal cursor is parked on
	started bool
	closed  bool
}

// NewInlineBackend returns a backend on the process stdin and stdout.
func NewInlineBackend() *InlineBackend {
	return NewInlineBackendFiles(os.Stdin, os.Stdout)
}

// NewInlineBackendFiles returns a backend on explicit files, for sessions
// driving a different tty.
func NewInlineBackendFiles(in, out *os.File) *InlineBackend {
	output := termenv.NewOutput(out)
	renderer := lipgloss.NewRenderer(out)
	renderer.SetColorProfile(output.Profile)
	return &InlineBackend{
		in:       in,
		out:      out,
		output:   output,
		renderer: renderer,
		winch:    make(chan os.Signal, 1),
		readc:    make(chan []byte, 8),
		stopRead: make(chan struct{}),
	}
}

// Init switches the input to raw mode and starts the read pump.
func (b *InlineBackend) Init() error {
	if b.closed {
		return ErrClosed
	}
	if !isatty.IsTerminal(b.out.Fd()) && !isatty.IsCygwinTerminal(b.out.Fd()) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(b.in.Fd())
	if err != nil {
		return fmt.Errorf("terminal: enter raw mode: %w", err)
	}
	b.rawState = state
	b.output.HideCursor()
	notifyResize(b.winch)
	b.readOnce.Do(func() { go b.readLoop() })
	b.started = true
	return nil
}

// Fini restores the terminal. Safe to call more than once.
func (b *InlineBackend) Fini() {
	if b.closed {
		return
	}
	b.closed = true
	if !b.started {
		return
	}
	signal.Stop(b.winch)
	close(b.stopRead)
	if down := b.rows - 1 - b.curRow; down > 0 {
		b.output.CursorDown(down)
	}
	b.output.ShowCursor()
	fmt.Fprint(b.out, "\r\n")
	if b.rawState != nil {
		term.Restore(b.in.Fd(), b.rawState)
	}
}

// readLoop pumps raw bytes off the input file. It parks on Read, so it only
// notices a stop request after the next byte arrives; the process exit
// reaps it otherwise.
func (b *InlineBackend) readLoop() {
	for {
		buf := make([]byte, readChunk)
		n, err := b.in.Read(buf)
		if err != nil {
			return
		}
		select {
		case b.readc <- buf[:n]:
		case <-b.stopRead:
			return
		}
	}
}

// Size returns the terminal dimensions in cells.
func (b *InlineBackend) Size() (int, int) {
	if w, h, err := term.GetSize(b.out.Fd()); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return sizeFromEnv()
}

// Clear erases the drawn region and collapses it.
func (b *InlineBackend) Clear() error {
	if b.closed {
		return ErrClosed
	}
	if b.rows > 0 {
		if down := b.rows - 1 - b.curRow; down > 0 {
			b.output.CursorDown(down)
		}
		fmt.Fprint(b.out, "\r")
		b.output.ClearLines(b.rows)
		b.rows, b.curRow = 0, 0
	}
	return nil
}

// Present repaints the drawn region with the frame's buffer.
func (b *InlineBackend) Present(f *render.Frame) error {
	if b.closed {
		return ErrClosed
	}
	buf := f.Buffer()
	area := buf.Area()

	var sb strings.Builder
	sb.WriteString("\r")
	for i := 0; i < b.curRow; i++ {
		sb.WriteString(termenv.CSI + "1A")
	}
	for y := area.Y; y < area.Bottom(); y++ {
		sb.WriteString(b.renderRow(buf, y))
		sb.WriteString(termenv.CSI + "K")
		if y < area.Bottom()-1 {
			sb.WriteString("\r\n")
		}
	}
	if _, err := fmt.Fprint(b.out, sb.String()); err != nil {
		return fmt.Errorf("terminal: write frame: %w", err)
	}
	b.rows = area.Height
	b.curRow = area.Height - 1

	if x, y, visible := f.Cursor(); visible {
		row := min(max(y-area.Y, 0), b.rows-1)
		if up := b.curRow - row; up > 0 {
			b.output.CursorUp(up)
		}
		fmt.Fprint(b.out, "\r")
		if col := x - area.X; col > 0 {
			b.output.CursorForward(col)
		}
		b.output.ShowCursor()
		b.curRow = row
	} else {
		b.output.HideCursor()
	}
	return nil
}

// renderRow turns one buffer row into a styled string, grouping runs of
// equally styled cells into single renders.
func (b *InlineBackend) renderRow(buf *render.Buffer, y int) string {
	area := buf.Area()
	var sb strings.Builder
	var run strings.Builder
	runStyle := props.Style{}
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(lipglossStyle(b.renderer, runStyle).Render(run.String()))
		run.Reset()
	}
	for x := area.X; x < area.Right(); x++ {
		cell, ok := buf.Get(x, y)
		if !ok || cell.IsContinuation() {
			continue
		}
		if cell.Style != runStyle {
			flush()
			runStyle = cell.Style
		}
		run.WriteRune(cell.Rune)
		for _, r := range cell.Comb {
			run.WriteRune(r)
		}
	}
	flush()
	return sb.String()
}

// PollEvent returns the next decoded key or a resize, if any is pending.
func (b *InlineBackend) PollEvent() (event.Event[event.NoUserEvent], bool, error) {
	if b.closed {
		return event.None[event.NoUserEvent](), false, ErrClosed
	}
	if ke, ok := b.popKey(); ok {
		return event.Keyboard[event.NoUserEvent](ke), true, nil
	}
	select {
	case <-b.winch:
		w, h := b.Size()
		return event.Resize[event.NoUserEvent](w, h), true, nil
	default:
	}
	select {
	case chunk := <-b.readc:
		b.pending = append(b.pending, chunk...)
		events, rest := decodeInput(b.pending)
		b.pending = rest
		b.queue = append(b.queue, events...)
		if ke, ok := b.popKey(); ok {
			return event.Keyboard[event.NoUserEvent](ke), true, nil
		}
	default:
	}
	return event.None[event.NoUserEvent](), false, nil
}

func (b *InlineBackend) popKey() (event.KeyEvent, bool) {
	if len(b.queue) == 0 {
		return event.KeyEvent{}, false
	}
	ke := b.queue[0]
	b.queue = b.queue[1:]
	return ke, true
}
