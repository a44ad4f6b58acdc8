// Package termtest carries terminal emulator profiles and a feature
// compatibility matrix for cross-terminal testing. A profile describes
// the environment one emulator presents and what its renderer can show;
// tests apply that environment and assert how capability detection and
// drawing degrade on it.
package termtest

// Profile describes one terminal emulator for testing.
type Profile struct {
	Name       string
	Env        map[string]string // environment the terminal sets
	ColorDepth int               // 24 for truecolor, 256 otherwise
	BoxDrawing bool              // box-drawing glyphs for widget frames
	Braille    bool              // braille patterns for chart plots
	Blocks     bool              // eighth-block glyphs for bars and sparklines
	Mux        bool              // runs inside a terminal multiplexer
	AltScreen  bool              // alternate screen for full-screen sessions
	Resize     bool              // delivers SIGWINCH on resize
}

// TrueColor reports whether the profile takes 24-bit color.
func (p Profile) TrueColor() bool { return p.ColorDepth == 24 }

// Profiles returns every known terminal profile.
func Profiles() []Profile {
	return []Profile{
		ghosttyProfile(),
		kittyProfile(),
		iterm2Profile(),
		weztermProfile(),
		appleTerminalProfile(),
		tmuxProfile(),
		screenProfile(),
		linuxConsoleProfile(),
		dumbProfile(),
	}
}

// Lookup returns the named profile.
func Lookup(name string) (Profile, bool) {
	for _, p := range Profiles() {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}
