// Package theme defines named color palettes and applies them to
// components. Palettes live in a registry seeded with builtin themes;
// more can be registered programmatically or loaded from TOML or YAML
// files in the user's config directory. A Styler pushes a palette into
// every mounted component as an application injector.
package theme

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/weft/pkg/props"
)

// EnvVar names the environment variable that overrides the theme name
// passed to Resolve.
const EnvVar = "WEFT_THEME"

// ErrUnknownTheme means no registered or on-disk theme matched the name.
var ErrUnknownTheme = errors.New("theme: unknown theme")

// Theme is a named palette. Fields cover the attributes the stock
// widgets read plus the status and data colors applications conventionally
// need next to them.
type Theme struct {
	Name string

	// Base colors
	Background props.Color
	Foreground props.Color
	Dim        props.Color
	Accent     props.Color

	// Widget chrome
	Border      props.Color
	BorderFocus props.Color
	Title       props.Color

	// Status colors
	Good props.Color
	Warn props.Color
	Bad  props.Color

	// Progress bars
	BarFilled props.Color
	BarEmpty  props.Color

	// Charts and sparklines
	ChartLine props.Color
	ChartGrid props.Color

	// Selection highlight
	Highlight props.Color
}

// Base returns the theme's resting text style.
func (t Theme) Base() props.Style {
	return props.Style{Fg: t.Foreground, Bg: t.Background}
}

// Focused returns the style for the focused component's chrome.
func (t Theme) Focused() props.Style {
	return props.Style{Fg: t.BorderFocus, Bg: t.Background, Mods: props.ModifierBold}
}

// StatusColor maps a status word to its palette color. Recognized words:
// "ok", "healthy", "running", "warn", "warning", "error", "err",
// "critical", "failed". Anything else is dim.
func (t Theme) StatusColor(status string) props.Color {
	switch strings.ToLower(status) {
	case "ok", "healthy", "running":
		return t.Good
	case "warn", "warning":
		return t.Warn
	case "error", "err", "critical", "failed":
		return t.Bad
	default:
		return t.Dim
	}
}

// BarColor returns the fill color for a progress ratio. Thresholds:
// >=0.9 bad, >=0.7 warn, else the normal fill.
func (t Theme) BarColor(ratio float64) props.Color {
	switch {
	case ratio >= 0.9:
		return t.Bad
	case ratio >= 0.7:
		return t.Warn
	default:
		return t.BarFilled
	}
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	registerBuiltins()
}

// Register adds a theme to the registry under its lowercase name,
// replacing any previous entry.
func Register(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: refusing to register unnamed theme")
	}
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
	return nil
}

// Get returns a registered theme by name.
func Get(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all registered theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the builtin default theme.
func Default() Theme {
	t, _ := Get("default")
	return t
}

// Resolve picks the theme to use: the WEFT_THEME environment variable
// wins over name, the registry is consulted first, then the theme files
// in the config search path. An unresolvable name falls back to the
// default theme.
func Resolve(name string) Theme {
	if env := os.Getenv(EnvVar); env != "" {
		name = env
	}
	if name == "" {
		return Default()
	}
	if t, ok := Get(name); ok {
		return t
	}
	if t, err := LoadNamed(name); err == nil {
		return t
	}
	return Default()
}
