package theme

import "gitlab.com/tinyland/lab/weft/pkg/props"

// hex parses a color literal for the builtin tables.
func hex(s string) props.Color {
	c, err := props.ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// registerBuiltins seeds the registry with the shipped palettes.
func registerBuiltins() {
	for _, t := range []Theme{
		defaultTheme(),
		gruvboxTheme(),
		nordTheme(),
		catppuccinTheme(),
		draculaTheme(),
		tokyoNightTheme(),
	} {
		registry[t.Name] = t
	}
}

// defaultTheme returns the dark neutral theme with purple accent.
func defaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: hex("#1e1e1e"),
		Foreground: hex("#d4d4d4"),
		Dim:        hex("#6b6b6b"),
		Accent:     hex("#7c3aed"),

		Border:      hex("#3e3e3e"),
		BorderFocus: hex("#7c3aed"),
		Title:       hex("#d4d4d4"),

		Good: hex("#4ec970"),
		Warn: hex("#e5c07b"),
		Bad:  hex("#e06c75"),

		BarFilled: hex("#4ec970"),
		BarEmpty:  hex("#3e3e3e"),

		ChartLine: hex("#7c3aed"),
		ChartGrid: hex("#3e3e3e"),

		Highlight: hex("#f9e2af"),
	}
}

// gruvboxTheme returns the warm retro Gruvbox theme.
func gruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: hex("#282828"),
		Foreground: hex("#ebdbb2"),
		Dim:        hex("#928374"),
		Accent:     hex("#fe8019"),

		Border:      hex("#504945"),
		BorderFocus: hex("#fe8019"),
		Title:       hex("#ebdbb2"),

		Good: hex("#b8bb26"),
		Warn: hex("#fabd2f"),
		Bad:  hex("#fb4934"),

		BarFilled: hex("#b8bb26"),
		BarEmpty:  hex("#504945"),

		ChartLine: hex("#fe8019"),
		ChartGrid: hex("#504945"),

		Highlight: hex("#fabd2f"),
	}
}

// nordTheme returns the arctic blue Nord theme.
func nordTheme() Theme {
	return Theme{
		Name:       "nord",
		Background: hex("#2e3440"),
		Foreground: hex("#eceff4"),
		Dim:        hex("#4c566a"),
		Accent:     hex("#88c0d0"),

		Border:      hex("#3b4252"),
		BorderFocus: hex("#88c0d0"),
		Title:       hex("#eceff4"),

		Good: hex("#a3be8c"),
		Warn: hex("#ebcb8b"),
		Bad:  hex("#bf616a"),

		BarFilled: hex("#a3be8c"),
		BarEmpty:  hex("#3b4252"),

		ChartLine: hex("#88c0d0"),
		ChartGrid: hex("#3b4252"),

		Highlight: hex("#ebcb8b"),
	}
}

// catppuccinTheme returns the pastel Catppuccin Mocha theme.
func catppuccinTheme() Theme {
	return Theme{
		Name:       "catppuccin",
		Background: hex("#1e1e2e"),
		Foreground: hex("#cdd6f4"),
		Dim:        hex("#6c7086"),
		Accent:     hex("#cba6f7"),

		Border:      hex("#313244"),
		BorderFocus: hex("#cba6f7"),
		Title:       hex("#cdd6f4"),

		Good: hex("#a6e3a1"),
		Warn: hex("#f9e2af"),
		Bad:  hex("#f38ba8"),

		BarFilled: hex("#a6e3a1"),
		BarEmpty:  hex("#313244"),

		ChartLine: hex("#cba6f7"),
		ChartGrid: hex("#313244"),

		Highlight: hex("#f9e2af"),
	}
}

// draculaTheme returns the Dracula theme.
func draculaTheme() Theme {
	return Theme{
		Name:       "dracula",
		Background: hex("#282a36"),
		Foreground: hex("#f8f8f2"),
		Dim:        hex("#6272a4"),
		Accent:     hex("#bd93f9"),

		Border:      hex("#44475a"),
		BorderFocus: hex("#bd93f9"),
		Title:       hex("#f8f8f2"),

		Good: hex("#50fa7b"),
		Warn: hex("#f1fa8c"),
		Bad:  hex("#ff5555"),

		BarFilled: hex("#50fa7b"),
		BarEmpty:  hex("#44475a"),

		ChartLine: hex("#bd93f9"),
		ChartGrid: hex("#44475a"),

		Highlight: hex("#f1fa8c"),
	}
}

// tokyoNightTheme returns the Tokyo Night theme.
func tokyoNightTheme() Theme {
	return Theme{
		Name:       "tokyo-night",
		Background: hex("#1a1b26"),
		Foreground: hex("#c0caf5"),
		Dim:        hex("#565f89"),
		Accent:     hex("#7aa2f7"),

		Border:      hex("#292e42"),
		BorderFocus: hex("#7aa2f7"),
		Title:       hex("#c0caf5"),

		Good: hex("#9ece6a"),
		Warn: hex("#e0af68"),
		Bad:  hex("#f7768e"),

		BarFilled: hex("#9ece6a"),
		BarEmpty:  hex("#292e42"),

		ChartLine: hex("#7aa2f7"),
		ChartGrid: hex("#292e42"),

		Highlight: hex("#e0af68"),
	}
}
