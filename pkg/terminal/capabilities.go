package terminal

import (
	"os"
	"strconv"
	"sync"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities is the cached capability summary for the current session:
// whether a terminal is attached, how much color it takes, and the
// environment quirks that affect rendering.
type Capabilities struct {
	TTY       bool            // Attached to a terminal
	Profile   termenv.Profile // Color profile the environment advertises
	TrueColor bool            // 24-bit color support
	SSH       bool            // Running over SSH
	Mux       bool            // Inside a multiplexer (tmux, screen, zellij)
	Cols      int             // Terminal columns
	Rows      int             // Terminal rows
}

var (
	cached     *Capabilities
	detectOnce sync.Once
	refreshMu  sync.Mutex
)

// DetectCapabilities performs detection once and caches the result. Safe to
// call from multiple goroutines.
func DetectCapabilities() *Capabilities {
	detectOnce.Do(func() {
		cached = detect()
	})
	return cached
}

// ForceRefresh re-detects capabilities, replacing the cached value. Use
// after the session changes underneath the process, attaching to tmux say.
func ForceRefresh() *Capabilities {
	refreshMu.Lock()
	defer refreshMu.Unlock()
	detectOnce = sync.Once{}
	cached = detect()
	return cached
}

// Cached returns the previously detected capabilities, nil before the
// first detection.
func Cached() *Capabilities {
	return cached
}

func detect() *Capabilities {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	// The profile is read from the environment alone; whether anything is
	// attached to draw on is the TTY field's job.
	profile := termenv.NewOutput(os.Stdout, termenv.WithTTY(true)).EnvColorProfile()

	cols, rows := 0, 0
	if tty {
		if w, h, err := term.GetSize(fd); err == nil {
			cols, rows = w, h
		}
	}
	if cols <= 0 || rows <= 0 {
		cols, rows = sizeFromEnv()
	}

	return &Capabilities{
		TTY:       tty,
		Profile:   profile,
		TrueColor: profile == termenv.TrueColor,
		SSH:       os.Getenv("SSH_CONNECTION") != "" || os.Getenv("SSH_TTY") != "",
		Mux:       os.Getenv("TMUX") != "" || os.Getenv("STY") != "" || os.Getenv("ZELLIJ") != "",
		Cols:      cols,
		Rows:      rows,
	}
}

// sizeFromEnv reads COLUMNS/LINES, falling back to 80x24.
func sizeFromEnv() (cols, rows int) {
	return envInt("COLUMNS", 80), envInt("LINES", 24)
}

// envInt reads an integer from the named environment variable, returning
// def when unset or unparseable.
func envInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
