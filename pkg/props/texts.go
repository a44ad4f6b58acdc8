package props

// TextSpan is a run of text with its own colors and modifiers.
type TextSpan struct {
	Content string
	Fg      Color
	Bg      Color
	Mods    TextModifiers
}

// Span returns a plain span with default styling.
func Span(content string) TextSpan {
	return TextSpan{Content: content}
}

// WithFg returns the span with the foreground replaced.
func (t TextSpan) WithFg(c Color) TextSpan {
	t.Fg = c
	return t
}

// WithBg returns the span with the background replaced.
func (t TextSpan) WithBg(c Color) TextSpan {
	t.Bg = c
	return t
}

// WithMods returns the span with the modifiers replaced.
func (t TextSpan) WithMods(m TextModifiers) TextSpan {
	t.Mods = m
	return t
}

// Style returns the span's styling as a Style.
func (t TextSpan) Style() Style {
	return Style{Fg: t.Fg, Bg: t.Bg, Mods: t.Mods}
}

// Table is rich text organized in rows of styled spans.
type Table [][]TextSpan

// Equal reports whether two tables hold the same spans in the same cells.
func (t Table) Equal(o Table) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if len(t[i]) != len(o[i]) {
			return false
		}
		for j := range t[i] {
			if t[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}

// TableBuilder assembles a Table row by row.
type TableBuilder struct {
	rows Table
}

// NewTableBuilder returns a builder with one empty row open.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{rows: Table{nil}}
}

// Col appends a span to the current row.
func (b *TableBuilder) Col(span TextSpan) *TableBuilder {
	last := len(b.rows) - 1
	b.rows[last] = append(b.rows[last], span)
	return b
}

// Row closes the current row and opens a new one.
func (b *TableBuilder) Row() *TableBuilder {
	b.rows = append(b.rows, nil)
	return b
}

// Build returns the assembled table. A trailing empty row is dropped, so
// chaining Row calls without columns does not produce phantom rows.
func (b *TableBuilder) Build() Table {
	rows := b.rows
	if n := len(rows); n > 0 && len(rows[n-1]) == 0 {
		rows = rows[:n-1]
	}
	return rows
}
