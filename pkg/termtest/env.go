package termtest

import "testing"

// identityVars are cleared before a profile's environment is applied, so
// the host terminal never leaks into the simulated one.
var identityVars = []string{
	"TERM", "TERM_PROGRAM", "TERM_PROGRAM_VERSION", "COLORTERM",
	"NO_COLOR", "CLICOLOR", "CLICOLOR_FORCE",
	"TMUX", "STY", "ZELLIJ",
	"SSH_CONNECTION", "SSH_TTY", "SSH_CLIENT",
	"KITTY_WINDOW_ID", "ITERM_SESSION_ID", "WEZTERM_EXECUTABLE",
	"GHOSTTY_RESOURCES_DIR", "GOOGLE_CLOUD_SHELL",
}

// Apply installs the profile's environment for the duration of the test.
// Restoration is handled by t.Setenv's cleanup.
func Apply(t testing.TB, p Profile) {
	t.Helper()
	for _, v := range identityVars {
		t.Setenv(v, "")
	}
	for k, v := range p.Env {
		t.Setenv(k, v)
	}
}
