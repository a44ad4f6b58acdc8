package theme

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/weft/pkg/props"
)

// wireTheme is the serialized shape shared by the TOML and YAML codecs.
// Colors travel as strings in any form props.ParseColor accepts: palette
// names, "#RRGGBB" triplets, or 256-palette indices.
type wireTheme struct {
	Name   string     `toml:"name" yaml:"name"`
	Base   wireBase   `toml:"base" yaml:"base"`
	Widget wireWidget `toml:"widget" yaml:"widget"`
	Status wireStatus `toml:"status" yaml:"status"`
	Bar    wireBar    `toml:"bar" yaml:"bar"`
	Chart  wireChart  `toml:"chart" yaml:"chart"`
}

type wireBase struct {
	Background string `toml:"background" yaml:"background"`
	Foreground string `toml:"foreground" yaml:"foreground"`
	Dim        string `toml:"dim" yaml:"dim"`
	Accent     string `toml:"accent" yaml:"accent"`
}

type wireWidget struct {
	Border      string `toml:"border" yaml:"border"`
	BorderFocus string `toml:"border_focus" yaml:"border_focus"`
	Title       string `toml:"title" yaml:"title"`
	Highlight   string `toml:"highlight" yaml:"highlight"`
}

type wireStatus struct {
	Good string `toml:"good" yaml:"good"`
	Warn string `toml:"warn" yaml:"warn"`
	Bad  string `toml:"bad" yaml:"bad"`
}

type wireBar struct {
	Filled string `toml:"filled" yaml:"filled"`
	Empty  string `toml:"empty" yaml:"empty"`
}

type wireChart struct {
	Line string `toml:"line" yaml:"line"`
	Grid string `toml:"grid" yaml:"grid"`
}

// FromTOML parses and validates a TOML theme definition.
func FromTOML(data []byte) (Theme, error) {
	var w wireTheme
	if err := toml.Unmarshal(data, &w); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	return w.theme()
}

// ToTOML serializes a theme to TOML bytes.
func ToTOML(t Theme) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(wire(t)); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// FromYAML parses and validates a YAML theme definition.
func FromYAML(data []byte) (Theme, error) {
	var w wireTheme
	if err := yaml.Unmarshal(data, &w); err != nil {
		return Theme{}, fmt.Errorf("theme: parse YAML: %w", err)
	}
	return w.theme()
}

// ToYAML serializes a theme to YAML bytes.
func ToYAML(t Theme) ([]byte, error) {
	data, err := yaml.Marshal(wire(t))
	if err != nil {
		return nil, fmt.Errorf("theme: encode YAML: %w", err)
	}
	return data, nil
}

// theme validates the wire form and resolves every color. All fields are
// required; a theme file that drops one is rejected rather than silently
// falling back to the terminal default.
func (w wireTheme) theme() (Theme, error) {
	if w.Name == "" {
		return Theme{}, fmt.Errorf("theme: missing required field %q", "name")
	}
	t := Theme{Name: w.Name}
	fields := []struct {
		key string
		src string
		dst *props.Color
	}{
		{"base.background", w.Base.Background, &t.Background},
		{"base.foreground", w.Base.Foreground, &t.Foreground},
		{"base.dim", w.Base.Dim, &t.Dim},
		{"base.accent", w.Base.Accent, &t.Accent},
		{"widget.border", w.Widget.Border, &t.Border},
		{"widget.border_focus", w.Widget.BorderFocus, &t.BorderFocus},
		{"widget.title", w.Widget.Title, &t.Title},
		{"widget.highlight", w.Widget.Highlight, &t.Highlight},
		{"status.good", w.Status.Good, &t.Good},
		{"status.warn", w.Status.Warn, &t.Warn},
		{"status.bad", w.Status.Bad, &t.Bad},
		{"bar.filled", w.Bar.Filled, &t.BarFilled},
		{"bar.empty", w.Bar.Empty, &t.BarEmpty},
		{"chart.line", w.Chart.Line, &t.ChartLine},
		{"chart.grid", w.Chart.Grid, &t.ChartGrid},
	}
	for _, f := range fields {
		if f.src == "" {
			return Theme{}, fmt.Errorf("theme: missing required field %q", f.key)
		}
		c, err := props.ParseColor(f.src)
		if err != nil {
			return Theme{}, fmt.Errorf("theme: field %q: %w", f.key, err)
		}
		*f.dst = c
	}
	return t, nil
}

// wire converts a theme back to its serialized shape. Color.String
// renders forms ParseColor accepts, so encode and decode round-trip.
func wire(t Theme) wireTheme {
	return wireTheme{
		Name: t.Name,
		Base: wireBase{
			Background: t.Background.String(),
			Foreground: t.Foreground.String(),
			Dim:        t.Dim.String(),
			Accent:     t.Accent.String(),
		},
		Widget: wireWidget{
			Border:      t.Border.String(),
			BorderFocus: t.BorderFocus.String(),
			Title:       t.Title.String(),
			Highlight:   t.Highlight.String(),
		},
		Status: wireStatus{
			Good: t.Good.String(),
			Warn: t.Warn.String(),
			Bad:  t.Bad.String(),
		},
		Bar: wireBar{
			Filled: t.BarFilled.String(),
			Empty:  t.BarEmpty.String(),
		},
		Chart: wireChart{
			Line: t.ChartLine.String(),
			Grid: t.ChartGrid.String(),
		},
	}
}
