package termtest

// ghosttyProfile returns the Ghostty terminal profile: truecolor and the
// full glyph set.
func ghosttyProfile() Profile {
	return Profile{
		Name: "Ghostty",
		Env: map[string]string{
			"TERM":         "xterm-ghostty",
			"TERM_PROGRAM": "ghostty",
			"COLORTERM":    "truecolor",
		},
		ColorDepth: 24,
		BoxDrawing: true,
		Braille:    true,
		Blocks:     true,
		AltScreen:  true,
		Resize:     true,
	}
}

// kittyProfile returns the Kitty terminal profile: truecolor and the full
// glyph set.
func kittyProfile() Profile {
	return Profile{
		Name: "Kitty",
		Env: map[string]string{
			"TERM":            "xterm-kitty",
			"TERM_PROGRAM":    "kitty",
			"COLORTERM":       "truecolor",
			"KITTY_WINDOW_ID": "1",
		},
		ColorDepth: 24,
		BoxDrawing: true,
		Braille:    true,
		Blocks:     true,
		AltScreen:  true,
		Resize:     true,
	}
}

// iterm2Profile returns the iTerm2 terminal profile: truecolor and the
// full glyph set.
func iterm2Profile() Profile {
	return Profile{
		Name: "iTerm2",
		Env: map[string]string{
			"TERM":             "xterm-256color",
			"TERM_PROGRAM":     "iTerm.app",
			"COLORTERM":        "truecolor",
			"ITERM_SESSION_ID": "w0t0p0:ABCDEF-1234",
		},
		ColorDepth: 24,
		BoxDrawing: true,
		Braille:    true,
		Blocks:     true,
		AltScreen:  true,
		Resize:     true,
	}
}

// weztermProfile returns the WezTerm terminal profile: truecolor and the
// full glyph set.
func weztermProfile() Profile {
	return Profile{
		Name: "WezTerm",
		Env: map[string]string{
			"TERM":               "xterm-256color",
			"TERM_PROGRAM":       "WezTerm",
			"COLORTERM":          "truecolor",
			"WEZTERM_EXECUTABLE": "/usr/local/bin/wezterm",
		},
		ColorDepth: 24,
		BoxDrawing: true,
		Braille:    true,
		Blocks:     true,
		AltScreen:  true,
		Resize:     true,
	}
}

// appleTerminalProfile returns the macOS Terminal.app profile: 256-color
// only, everything else intact.
func appleTerminalProfile() Profile {
	return Profile{
		Name: "Apple Terminal",
		Env: map[string]string{
			"TERM":         "xterm-256color",
			"TERM_PROGRAM": "Apple_Terminal",
		},
		ColorDepth: 256,
		BoxDrawing: true,
		Braille:    true,
		Blocks:     true,
		AltScreen:  true,
		Resize:     true,
	}
}

// tmuxProfile returns a tmux pane profile. Color passthrough depends on
// the outer terminal, so the conservative depth is 256.
func tmuxProfile() Profile {
	return Profile{
		Name: "tmux",
		Env: map[string]string{
			"TERM":         "tmux-256color",
			"TERM_PROGRAM": "tmux",
			"TMUX":         "/tmp/tmux-1000/default,1234,0",
		},
		ColorDepth: 256,
		BoxDrawing: true,
		Braille:    true,
		Blocks:     true,
		Mux:        true,
		AltScreen:  true,
		Resize:     true,
	}
}

// screenProfile returns a GNU screen profile. Screen traditionally
// mangles braille output.
func screenProfile() Profile {
	return Profile{
		Name: "GNU Screen",
		Env: map[string]string{
			"TERM": "screen",
			"STY":  "1234.pts-0.host",
		},
		ColorDepth: 256,
		BoxDrawing: true,
		Blocks:     true,
		Mux:        true,
		AltScreen:  true,
		Resize:     true,
	}
}

// linuxConsoleProfile returns the Linux virtual console profile: the VGA
// font has box-drawing glyphs but neither braille nor eighth blocks, and
// the display never resizes.
func linuxConsoleProfile() Profile {
	return Profile{
		Name: "Linux console",
		Env: map[string]string{
			"TERM": "linux",
		},
		ColorDepth: 256,
		BoxDrawing: true,
	}
}

// dumbProfile returns the TERM=dumb profile: no styling, no glyph
// guarantees, no screen control.
func dumbProfile() Profile {
	return Profile{
		Name: "dumb",
		Env: map[string]string{
			"TERM": "dumb",
		},
		ColorDepth: 256,
	}
}
