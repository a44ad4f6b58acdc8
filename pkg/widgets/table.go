package widgets

import (
	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// Table shows rows of styled spans in sized columns, with an optional
// header row. A scrollable table keeps a cursor row: Up/Down move it,
// Scroll moves it by the scroll-step attribute, Submit reports it. The
// state of a scrollable table is the cursor row index.
type Table struct {
	props  *props.Props
	cursor int
	offset int
}

// NewTable returns a table over the given rows.
func NewTable(rows props.Table) *Table {
	p := props.NewProps()
	p.Set(props.AttrContent, props.TableValue(rows))
	return &Table{props: p}
}

// WithHeaders sets the header row, one span per column.
func (t *Table) WithHeaders(headers ...props.TextSpan) *Table {
	t.props.Set(props.AttrText, props.TextValue(headers...))
	return t
}

// WithColumnWidths fixes the column widths as percentages of the
// interior width. Without it, columns size to their widest cell and the
// leftover space goes to the first column.
func (t *Table) WithColumnWidths(percents ...int) *Table {
	vs := make([]state.Value, len(percents))
	for i, p := range percents {
		vs[i] = state.Int(p)
	}
	t.props.Set(props.AttrWidth, props.PayloadValue(props.PayloadVec(vs...)))
	return t
}

// WithScroll makes the table scrollable with a cursor row.
func (t *Table) WithScroll(on bool) *Table {
	t.props.Set(props.AttrScroll, props.Flag(on))
	return t
}

// WithScrollStep sets how many rows one Scroll command moves.
func (t *Table) WithScrollStep(n int) *Table {
	t.props.Set(props.AttrScrollStep, props.Size(n))
	return t
}

// WithTitle frames the table with a title in the top border.
func (t *Table) WithTitle(title string, align props.Alignment) *Table {
	t.props.Set(props.AttrTitle, props.TitleValue(title, align))
	return t
}

// WithBorders sets the frame drawn around the table.
func (t *Table) WithBorders(b props.Borders) *Table {
	t.props.Set(props.AttrBorders, props.BordersValue(b))
	return t
}

// WithForeground sets the default text color.
func (t *Table) WithForeground(c props.Color) *Table {
	t.props.Set(props.AttrForeground, props.ColorValue(c))
	return t
}

// WithHighlightedColor sets the background of the cursor row.
func (t *Table) WithHighlightedColor(c props.Color) *Table {
	t.props.Set(props.AttrHighlightedColor, props.ColorValue(c))
	return t
}

// Cursor returns the cursor row index.
func (t *Table) Cursor() int {
	return t.cursor
}

// View draws the header and the visible window of rows.
func (t *Table) View(f *render.Frame, area layout.Rect) {
	if area.Empty() || !visible(t.props) {
		return
	}
	buf := f.Buffer()
	fillBackground(buf, area, t.props)
	inner := drawBorders(buf, area, t.props)
	if inner.Empty() {
		return
	}

	rows := t.rows()
	headers := t.headers()
	widths := t.columnWidths(inner.Width, rows, headers)
	base := baseStyle(t.props)

	y := inner.Y
	if len(headers) > 0 {
		headerStyle := base
		headerStyle.Mods = headerStyle.Mods.With(props.ModifierBold)
		drawTableRow(buf, inner.X, y, widths, headers, headerStyle, false)
		y++
		if y < inner.Bottom() {
			for x := inner.X; x < inner.Right(); x++ {
				buf.Set(x, y, '─', base)
			}
			y++
		}
	}

	visibleRows := inner.Bottom() - y
	if visibleRows <= 0 {
		return
	}
	scrollable := t.scrollable()
	t.clampCursor(len(rows))
	t.scrollIntoView(visibleRows, len(rows))

	highlight := focusedStyle(t.props)
	if v, ok := t.props.Get(props.AttrHighlightedColor); ok {
		highlight = base
		highlight.Bg = v.Color()
	}

	for i := 0; i < visibleRows; i++ {
		idx := t.offset + i
		if idx >= len(rows) {
			break
		}
		selected := scrollable && idx == t.cursor && hasFocus(t.props)
		style := base
		if selected {
			style = highlight
		}
		drawTableRow(buf, inner.X, y+i, widths, rows[idx], style, !selected)
	}
}

// Query returns the attribute value stored under attr.
func (t *Table) Query(attr props.Attr) (props.AttrValue, bool) {
	return t.props.Get(attr)
}

// SetAttr stores value under attr. Replacing the content keeps the
// cursor, clamped on the next draw.
func (t *Table) SetAttr(attr props.Attr, value props.AttrValue) {
	t.props.Set(attr, value)
}

// State returns the cursor row for a scrollable table, the empty state
// otherwise.
func (t *Table) State() state.State {
	if !t.scrollable() {
		return state.None()
	}
	return state.One(state.Int(t.cursor))
}

// Perform moves the cursor of a scrollable table.
func (t *Table) Perform(cmd command.Cmd) command.CmdResult {
	if !t.scrollable() {
		return command.CmdResult{}
	}
	n := len(t.rows())
	switch cmd.Kind() {
	case command.CmdMove:
		switch cmd.Dir() {
		case command.Up:
			t.cursor = clamp(t.cursor-1, 0, max(n-1, 0))
		case command.Down:
			t.cursor = clamp(t.cursor+1, 0, max(n-1, 0))
		default:
			return command.CmdResult{}
		}
		return command.Changed(t.State())
	case command.CmdScroll:
		step := t.props.GetOr(props.AttrScrollStep, props.Size(8)).Size()
		switch cmd.Dir() {
		case command.Up:
			t.cursor = clamp(t.cursor-step, 0, max(n-1, 0))
		case command.Down:
			t.cursor = clamp(t.cursor+step, 0, max(n-1, 0))
		default:
			return command.CmdResult{}
		}
		return command.Changed(t.State())
	case command.CmdGoTo:
		switch cmd.Pos().Kind {
		case command.PositionBegin:
			t.cursor = 0
		case command.PositionEnd:
			t.cursor = max(n-1, 0)
		case command.PositionAt:
			t.cursor = clamp(cmd.Pos().Idx, 0, max(n-1, 0))
		}
		return command.Changed(t.State())
	case command.CmdSubmit:
		return command.Submitted(t.State())
	default:
		return command.CmdResult{}
	}
}

func (t *Table) rows() props.Table {
	return t.props.GetOr(props.AttrContent, props.TableValue(nil)).Table()
}

func (t *Table) headers() []props.TextSpan {
	return t.props.GetOr(props.AttrText, props.TextValue()).Text()
}

func (t *Table) scrollable() bool {
	return t.props.GetOr(props.AttrScroll, props.Flag(false)).Flag()
}

func (t *Table) clampCursor(n int) {
	t.cursor = clamp(t.cursor, 0, max(n-1, 0))
}

// scrollIntoView adjusts the window so the cursor row is visible.
func (t *Table) scrollIntoView(visible, n int) {
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+visible {
		t.offset = t.cursor - visible + 1
	}
	maxOffset := max(n-visible, 0)
	if t.offset > maxOffset {
		t.offset = maxOffset
	}
}

// columnWidths resolves per-column widths for the interior width.
// Width percentages from the width attribute win; otherwise columns take
// their widest cell and the first column absorbs the slack.
func (t *Table) columnWidths(total int, rows props.Table, headers []props.TextSpan) []int {
	cols := len(headers)
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return nil
	}
	gaps := cols - 1
	avail := total - gaps
	if avail < cols {
		avail = cols
	}

	if v, ok := t.props.Get(props.AttrWidth); ok {
		pcts := v.Payload().Vec()
		widths := make([]int, cols)
		for i := 0; i < cols; i++ {
			pct := 0
			if i < len(pcts) {
				pct = pcts[i].Int()
			}
			widths[i] = avail * pct / 100
			if widths[i] < 1 {
				widths[i] = 1
			}
		}
		return widths
	}

	widths := make([]int, cols)
	for i, h := range headers {
		if i < cols {
			widths[i] = VisibleWidth(h.Content)
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := VisibleWidth(cell.Content); w > widths[i] {
				widths[i] = w
			}
		}
	}
	used := 0
	for _, w := range widths {
		used += w
	}
	if used > avail {
		// Shrink right to left until the row fits.
		for i := cols - 1; i >= 0 && used > avail; i-- {
			over := used - avail
			cut := widths[i] - 1
			if cut > over {
				cut = over
			}
			if cut > 0 {
				widths[i] -= cut
				used -= cut
			}
		}
	} else if used < avail {
		widths[0] += avail - used
	}
	return widths
}

// drawTableRow writes one row of cells at (x, y) using the resolved
// column widths. Cell styles overlay the row style unless the row is
// highlighted.
func drawTableRow(buf *render.Buffer, x, y int, widths []int, cells []props.TextSpan, rowStyle props.Style, useCellStyle bool) {
	for col, w := range widths {
		if w <= 0 {
			continue
		}
		var cell props.TextSpan
		if col < len(cells) {
			cell = cells[col]
		}
		style := rowStyle
		if useCellStyle {
			style = mergeSpanStyle(rowStyle, cell)
		}
		content := PadRight(Truncate(cell.Content, w), w)
		buf.SetStringN(x, y, content, w, style)
		x += w + 1
	}
}
