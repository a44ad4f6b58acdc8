package props

// Attr selects one attribute in a Props store.
type Attr string

// Attributes understood by the stock widgets. Components are free to define
// their own via CustomAttr.
const (
	AttrAlignment        Attr = "alignment"
	AttrBackground       Attr = "background"
	AttrBorders          Attr = "borders"
	AttrContent          Attr = "content"
	AttrCurrentValue     Attr = "value"
	AttrDataset          Attr = "dataset"
	AttrDirection        Attr = "direction"
	AttrDisplay          Attr = "display"
	AttrFocus            Attr = "focus"
	AttrFocusStyle       Attr = "focus-style"
	AttrForeground       Attr = "foreground"
	AttrHeight           Attr = "height"
	AttrHighlightedColor Attr = "highlighted-color"
	AttrHighlightedStr   Attr = "highlighted-str"
	AttrInputLength      Attr = "input-length"
	AttrInputType        Attr = "input-type"
	AttrRewind           Attr = "rewind"
	AttrScroll           Attr = "scroll"
	AttrScrollStep       Attr = "scroll-step"
	AttrStyle            Attr = "style"
	AttrText             Attr = "text"
	AttrTitle            Attr = "title"
	AttrWidth            Attr = "width"
	AttrWrap             Attr = "wrap"
)

// CustomAttr returns a component-private attribute selector. The name is
// prefixed so custom attributes can never shadow stock ones.
func CustomAttr(name string) Attr {
	return Attr("custom-" + name)
}
