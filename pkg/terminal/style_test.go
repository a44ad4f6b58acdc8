package terminal

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/weft/pkg/layout"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/render"
)

// --- Style Mapping Tests ---

func TestTcellColorMapping(t *testing.T) {
	if got := tcellColor(props.ColorDefault); got != tcell.ColorDefault {
		t.Errorf("default = %v", got)
	}
	if got := tcellColor(props.Indexed(3)); got != tcell.PaletteColor(3) {
		t.Errorf("indexed = %v", got)
	}
	if got := tcellColor(props.RGB(10, 20, 30)); got != tcell.NewRGBColor(10, 20, 30) {
		t.Errorf("rgb = %v", got)
	}
}

func TestTcellStyleMapping(t *testing.T) {
	st := tcellStyle(props.Style{
		Fg:   props.ColorGreen,
		Mods: props.ModifierBold | props.ModifierUnderlined,
	})
	fg, _, attrs := st.Decompose()
	if fg != tcell.PaletteColor(2) {
		t.Errorf("fg = %v, want palette green", fg)
	}
	if attrs&tcell.AttrBold == 0 || attrs&tcell.AttrUnderline == 0 {
		t.Errorf("attrs = %v, want bold and underline", attrs)
	}
	if attrs&tcell.AttrItalic != 0 {
		t.Errorf("attrs = %v, italic should be unset", attrs)
	}
}

func TestLipglossColorMapping(t *testing.T) {
	if _, isNone := lipglossColor(props.ColorDefault).(lipgloss.NoColor); !isNone {
		t.Error("default color should map to NoColor")
	}
	if got := lipglossColor(props.Indexed(4)); got != lipgloss.Color("4") {
		t.Errorf("indexed = %v, want lipgloss 4", got)
	}
	if got := lipglossColor(props.RGB(0xe5, 0xc0, 0x7b)); got != lipgloss.Color("#e5c07b") {
		t.Errorf("rgb = %v, want #e5c07b", got)
	}
}

// --- Inline Row Rendering Tests ---

func TestRenderRowPlain(t *testing.T) {
	b := NewInlineBackendFiles(os.Stdin, os.Stdout)
	b.renderer.SetColorProfile(termenv.Ascii)

	buf := render.NewBuffer(layout.NewRect(6, 1))
	buf.SetString(0, 0, "hi", props.Style{})
	if got := b.renderRow(buf, 0); got != "hi    " {
		t.Errorf("row = %q", got)
	}
}

func TestRenderRowGroupsStyledRuns(t *testing.T) {
	b := NewInlineBackendFiles(os.Stdin, os.Stdout)
	b.renderer.SetColorProfile(termenv.ANSI)

	buf := render.NewBuffer(layout.NewRect(4, 1))
	buf.SetSpans(0, 0, []props.TextSpan{
		props.Span("ab").WithFg(props.ColorRed),
		props.Span("cd"),
	}, 4)

	got := b.renderRow(buf, 0)
	if stripped := ansi.Strip(got); stripped != "abcd" {
		t.Errorf("stripped row = %q, want abcd", stripped)
	}
	if got == "abcd" {
		t.Error("styled row carries no escape sequences")
	}
	if ansi.StringWidth(got) != 4 {
		t.Errorf("visible width = %d, want 4", ansi.StringWidth(got))
	}
}

func TestRenderRowWideRunes(t *testing.T) {
	b := NewInlineBackendFiles(os.Stdin, os.Stdout)
	b.renderer.SetColorProfile(termenv.Ascii)

	buf := render.NewBuffer(layout.NewRect(5, 1))
	buf.SetString(0, 0, "日x", props.Style{})
	got := b.renderRow(buf, 0)
	if got != "日x  " {
		t.Errorf("row = %q", got)
	}
	if ansi.StringWidth(got) != 5 {
		t.Errorf("visible width = %d, want 5", ansi.StringWidth(got))
	}
}
