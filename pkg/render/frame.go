package render

import "gitlab.com/tinyland/lab/weft/pkg/layout"

// Frame is the render target handed to component views for one draw pass.
// It wraps the backing buffer and collects the cursor request, if any.
type Frame struct {
	buf           *Buffer
	cursorX       int
	cursorY       int
	cursorVisible bool
}

// NewFrame returns a frame drawing into buf with the cursor hidden.
func NewFrame(buf *Buffer) *Frame {
	return &Frame{buf: buf}
}

// Size returns the area available to draw into.
func (f *Frame) Size() layout.Rect { return f.buf.Area() }

// Buffer returns the cell buffer views draw into.
func (f *Frame) Buffer() *Buffer { return f.buf }

// SetCursor asks for a visible cursor at (x, y) after this frame is shown.
// The last caller wins; without a call the cursor stays hidden.
func (f *Frame) SetCursor(x, y int) {
	f.cursorX, f.cursorY = x, y
	f.cursorVisible = true
}

// Cursor returns the requested cursor position and whether it is visible.
func (f *Frame) Cursor() (x, y int, visible bool) {
	return f.cursorX, f.cursorY, f.cursorVisible
}

// Reset clears the buffer and the cursor request for the next draw pass.
func (f *Frame) Reset() {
	f.buf.Clear()
	f.cursorX, f.cursorY, f.cursorVisible = 0, 0, false
}
