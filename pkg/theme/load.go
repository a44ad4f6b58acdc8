package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FromFile loads a theme from path, picking the codec by extension:
// .toml, .yaml or .yml.
func FromFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FromTOML(data)
	case ".yaml", ".yml":
		return FromYAML(data)
	default:
		return Theme{}, fmt.Errorf("theme: unsupported extension %q", filepath.Ext(path))
	}
}

// LoadNamed searches the config directories for a theme file named after
// name and loads the first hit. Files are tried as name.toml, name.yaml
// and name.yml in each directory in order.
func LoadNamed(name string) (Theme, error) {
	for _, dir := range searchDirs() {
		for _, ext := range []string{".toml", ".yaml", ".yml"} {
			p := filepath.Join(dir, name+ext)
			if _, err := os.Stat(p); err == nil {
				return FromFile(p)
			}
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// searchDirs returns the ordered list of theme directories to try.
// Search order:
//  1. $XDG_CONFIG_HOME/weft/themes
//  2. ~/.config/weft/themes
func searchDirs() []string {
	home, _ := os.UserHomeDir()
	var dirs []string

	xdg := xdgConfigHome(home)
	dirs = append(dirs, filepath.Join(xdg, "weft", "themes"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		dirs = append(dirs, filepath.Join(defaultXDG, "weft", "themes"))
	}

	return dirs
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
