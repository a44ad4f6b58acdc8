package terminal

import (
	"testing"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/weft/pkg/termtest"
)

// --- Capability Detection Tests ---

func TestSizeFromEnv(t *testing.T) {
	t.Setenv("COLUMNS", "120")
	t.Setenv("LINES", "40")
	cols, rows := sizeFromEnv()
	if cols != 120 || rows != 40 {
		t.Errorf("sizeFromEnv() = %d, %d, want 120, 40", cols, rows)
	}
}

func TestSizeFromEnvDefaults(t *testing.T) {
	t.Setenv("COLUMNS", "")
	t.Setenv("LINES", "")
	cols, rows := sizeFromEnv()
	if cols != 80 || rows != 24 {
		t.Errorf("sizeFromEnv() = %d, %d, want 80, 24", cols, rows)
	}
}

func TestEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "132", 132},
		{"empty", "", 7},
		{"garbage", "wide", 7},
		{"negative", "-3", 7},
		{"zero", "0", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WEFT_TEST_COLS", tt.value)
			if got := envInt("WEFT_TEST_COLS", 7); got != tt.want {
				t.Errorf("envInt(%q, 7) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestDetectCapabilitiesCaches(t *testing.T) {
	first := DetectCapabilities()
	if first == nil {
		t.Fatal("DetectCapabilities() = nil")
	}
	if second := DetectCapabilities(); second != first {
		t.Error("second detection did not reuse the cached result")
	}
	if Cached() != first {
		t.Error("Cached() diverged from DetectCapabilities()")
	}
}

func TestForceRefreshReplacesCache(t *testing.T) {
	first := DetectCapabilities()
	refreshed := ForceRefresh()
	if refreshed == nil {
		t.Fatal("ForceRefresh() = nil")
	}
	if refreshed == first {
		t.Error("ForceRefresh() returned the stale pointer")
	}
	if Cached() != refreshed {
		t.Error("Cached() did not pick up the refreshed result")
	}
}

func TestCapabilitiesInvariants(t *testing.T) {
	caps := ForceRefresh()
	if caps.TrueColor != (caps.Profile == termenv.TrueColor) {
		t.Errorf("TrueColor = %v with profile %v", caps.TrueColor, caps.Profile)
	}
	if caps.Cols <= 0 || caps.Rows <= 0 {
		t.Errorf("size = %dx%d, want positive", caps.Cols, caps.Rows)
	}
}

func TestCapabilitiesSSHFlag(t *testing.T) {
	t.Setenv("SSH_CONNECTION", "")
	t.Setenv("SSH_TTY", "")
	if caps := ForceRefresh(); caps.SSH {
		t.Error("SSH = true without SSH environment")
	}
	t.Setenv("SSH_CONNECTION", "10.0.0.5 52413 10.0.0.1 22")
	if caps := ForceRefresh(); !caps.SSH {
		t.Error("SSH = false with SSH_CONNECTION set")
	}
}

func TestCapabilitiesMuxFlag(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("STY", "")
	t.Setenv("ZELLIJ", "")
	if caps := ForceRefresh(); caps.Mux {
		t.Error("Mux = true outside a multiplexer")
	}
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1234,0")
	if caps := ForceRefresh(); !caps.Mux {
		t.Error("Mux = false inside tmux")
	}
}

func TestCapabilitiesSizeFallsBackToEnv(t *testing.T) {
	caps := ForceRefresh()
	if caps.TTY {
		t.Skip("attached to a terminal, env fallback not reachable")
	}
	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "50")
	caps = ForceRefresh()
	if caps.Cols != 132 || caps.Rows != 50 {
		t.Errorf("size = %dx%d, want 132x50", caps.Cols, caps.Rows)
	}
}

// Detection under each emulator's environment must agree with the
// profile's color depth and multiplexer flag.
func TestDetectAcrossTerminalProfiles(t *testing.T) {
	for _, p := range termtest.Profiles() {
		t.Run(p.Name, func(t *testing.T) {
			termtest.Apply(t, p)
			caps := ForceRefresh()
			if caps.TrueColor != p.TrueColor() {
				t.Errorf("TrueColor = %t on %s, want %t (profile %v)",
					caps.TrueColor, p.Name, p.TrueColor(), caps.Profile)
			}
			if caps.Mux != p.Mux {
				t.Errorf("Mux = %t on %s, want %t", caps.Mux, p.Name, p.Mux)
			}
			if caps.SSH {
				t.Errorf("SSH = true on local profile %s", p.Name)
			}
		})
	}
	ForceRefresh()
}
