package props

// AttrValueKind discriminates the AttrValue variants.
type AttrValueKind uint8

const (
	ValueNone AttrValueKind = iota
	ValueFlag
	ValueSize
	ValueNumber
	ValueStr
	ValueColor
	ValueStyle
	ValueAlignment
	ValueBorders
	ValueDirection
	ValueInputType
	ValueSpan
	ValueText
	ValueTable
	ValueTitle
	ValuePayload
	ValueDataset
)

// AttrValue is the tagged union stored under an attribute. The zero value is
// the none variant. Compare values with Equal; some variants carry slices.
type AttrValue struct {
	kind    AttrValueKind
	flag    bool
	n       int
	str     string
	color   Color
	style   Style
	align   Alignment
	borders Borders
	dir     Direction
	input   InputType
	span    TextSpan
	text    []TextSpan
	table   Table
	payload Payload
	dataset []Dataset
}

// NoValue is the none variant, for GetOr defaults.
var NoValue = AttrValue{}

// Flag wraps a boolean.
func Flag(v bool) AttrValue { return AttrValue{kind: ValueFlag, flag: v} }

// Size wraps a non-negative dimension.
func Size(n int) AttrValue { return AttrValue{kind: ValueSize, n: n} }

// Number wraps a signed quantity.
func Number(n int) AttrValue { return AttrValue{kind: ValueNumber, n: n} }

// Str wraps a string.
func Str(s string) AttrValue { return AttrValue{kind: ValueStr, str: s} }

// ColorValue wraps a color.
func ColorValue(c Color) AttrValue { return AttrValue{kind: ValueColor, color: c} }

// StyleValue wraps a style.
func StyleValue(s Style) AttrValue { return AttrValue{kind: ValueStyle, style: s} }

// AlignValue wraps an alignment.
func AlignValue(a Alignment) AttrValue { return AttrValue{kind: ValueAlignment, align: a} }

// BordersValue wraps a border description.
func BordersValue(b Borders) AttrValue { return AttrValue{kind: ValueBorders, borders: b} }

// DirectionValue wraps a direction.
func DirectionValue(d Direction) AttrValue { return AttrValue{kind: ValueDirection, dir: d} }

// InputTypeValue wraps an input mode.
func InputTypeValue(t InputType) AttrValue { return AttrValue{kind: ValueInputType, input: t} }

// SpanValue wraps a single styled span.
func SpanValue(s TextSpan) AttrValue { return AttrValue{kind: ValueSpan, span: s} }

// TextValue wraps a sequence of styled spans.
func TextValue(spans ...TextSpan) AttrValue { return AttrValue{kind: ValueText, text: spans} }

// TableValue wraps rich tabular text.
func TableValue(t Table) AttrValue { return AttrValue{kind: ValueTable, table: t} }

// TitleValue wraps a box title with its alignment.
func TitleValue(text string, align Alignment) AttrValue {
	return AttrValue{kind: ValueTitle, str: text, align: align}
}

// PayloadValue wraps arbitrary scalar data.
func PayloadValue(p Payload) AttrValue { return AttrValue{kind: ValuePayload, payload: p} }

// DatasetValue wraps chart series.
func DatasetValue(ds ...Dataset) AttrValue { return AttrValue{kind: ValueDataset, dataset: ds} }

// Kind returns the variant tag.
func (v AttrValue) Kind() AttrValueKind { return v.kind }

// IsNone reports whether v is the none variant.
func (v AttrValue) IsNone() bool { return v.kind == ValueNone }

// Flag returns the wrapped boolean, or false for other variants.
func (v AttrValue) Flag() bool { return v.flag }

// Size returns the wrapped dimension, or zero for other variants.
func (v AttrValue) Size() int { return v.n }

// Number returns the wrapped quantity, or zero for other variants.
func (v AttrValue) Number() int { return v.n }

// Str returns the wrapped string, or "" for other variants.
func (v AttrValue) Str() string { return v.str }

// Color returns the wrapped color, or the default color for other variants.
func (v AttrValue) Color() Color { return v.color }

// Style returns the wrapped style, or the zero style for other variants.
func (v AttrValue) Style() Style { return v.style }

// Align returns the wrapped alignment, or AlignLeft for other variants.
func (v AttrValue) Align() Alignment { return v.align }

// Borders returns the wrapped borders, or the zero borders for other variants.
func (v AttrValue) Borders() Borders { return v.borders }

// Direction returns the wrapped direction, or horizontal for other variants.
func (v AttrValue) Direction() Direction { return v.dir }

// InputType returns the wrapped input mode, or text for other variants.
func (v AttrValue) InputType() InputType { return v.input }

// Span returns the wrapped span, or the zero span for other variants.
func (v AttrValue) Span() TextSpan { return v.span }

// Text returns the wrapped spans, or nil for other variants.
func (v AttrValue) Text() []TextSpan { return v.text }

// Table returns the wrapped table, or nil for other variants.
func (v AttrValue) Table() Table { return v.table }

// Title returns the wrapped title text and alignment.
func (v AttrValue) Title() (string, Alignment) { return v.str, v.align }

// Payload returns the wrapped payload, or the none payload for other variants.
func (v AttrValue) Payload() Payload { return v.payload }

// Dataset returns the wrapped series, or nil for other variants.
func (v AttrValue) Dataset() []Dataset { return v.dataset }

// Equal reports whether two values hold the same variant and contents.
func (v AttrValue) Equal(o AttrValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueFlag:
		return v.flag == o.flag
	case ValueSize, ValueNumber:
		return v.n == o.n
	case ValueStr:
		return v.str == o.str
	case ValueColor:
		return v.color == o.color
	case ValueStyle:
		return v.style == o.style
	case ValueAlignment:
		return v.align == o.align
	case ValueBorders:
		return v.borders == o.borders
	case ValueDirection:
		return v.dir == o.dir
	case ValueInputType:
		return v.input == o.input
	case ValueSpan:
		return v.span == o.span
	case ValueText:
		if len(v.text) != len(o.text) {
			return false
		}
		for i := range v.text {
			if v.text[i] != o.text[i] {
				return false
			}
		}
		return true
	case ValueTable:
		return v.table.Equal(o.table)
	case ValueTitle:
		return v.str == o.str && v.align == o.align
	case ValuePayload:
		return v.payload.Equal(o.payload)
	case ValueDataset:
		if len(v.dataset) != len(o.dataset) {
			return false
		}
		for i := range v.dataset {
			if !v.dataset[i].Equal(o.dataset[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
