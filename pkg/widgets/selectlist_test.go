package widgets

import (
	"testing"

	"gitlab.com/tinyland/lab/weft/pkg/command"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

func TestSelectOpensOnMove(t *testing.T) {
	s := NewSelect("red", "green", "blue")
	if s.Open() {
		t.Fatal("select should start closed")
	}
	s.Perform(command.Move(command.Down))
	if !s.Open() {
		t.Fatal("Move should open the list")
	}
	// The first Move only opens; the highlight stays on the committed
	// choice.
	if s.highlighted != 0 {
		t.Errorf("highlight = %d, want 0", s.highlighted)
	}
}

func TestSelectCommit(t *testing.T) {
	s := NewSelect("red", "green", "blue")
	s.Perform(command.Move(command.Down))
	s.Perform(command.Move(command.Down))
	s.Perform(command.Move(command.Down))

	res := s.Perform(command.Submit())
	if res.Kind() != command.ResultSubmitted {
		t.Fatalf("Submit = %v", res.Kind())
	}
	if s.Open() {
		t.Error("Submit should close the list")
	}
	if s.Choice() != 2 {
		t.Errorf("choice = %d, want 2", s.Choice())
	}
	if !res.State().Equal(state.One(state.Int(2))) {
		t.Errorf("submitted state = %v", res.State())
	}
}

func TestSelectCancelReverts(t *testing.T) {
	s := NewSelect("a", "b").WithChoice(1)
	s.Perform(command.Move(command.Down))
	s.Perform(command.Move(command.Up))
	if s.highlighted != 0 {
		t.Fatalf("highlight = %d, want 0", s.highlighted)
	}

	s.Perform(command.Cancel())
	if s.Open() {
		t.Error("Cancel should close the list")
	}
	if s.Choice() != 1 {
		t.Errorf("choice = %d, want untouched 1", s.Choice())
	}
	if s.highlighted != 1 {
		t.Errorf("highlight = %d, want reset to committed choice", s.highlighted)
	}
}

func TestSelectSubmitOpensWhenClosed(t *testing.T) {
	s := NewSelect("a", "b")
	res := s.Perform(command.Submit())
	if res.Kind() != command.ResultChanged {
		t.Fatalf("Submit on closed = %v, want changed", res.Kind())
	}
	if !s.Open() {
		t.Error("Submit on a closed select should open it")
	}
}

func TestSelectClosedView(t *testing.T) {
	s := NewSelect("alpha", "beta")
	buf := renderWidget(t, s, 10, 1)
	if got := rowText(t, buf, 0); got != "alpha    ▼" {
		t.Errorf("closed row = %q", got)
	}
}

func TestSelectOpenViewHighlights(t *testing.T) {
	s := NewSelect("alpha", "beta").WithHighlight("> ")
	s.Perform(command.Move(command.Down))
	s.Perform(command.Move(command.Down))
	buf := renderWidget(t, s, 10, 2)
	if got := rowText(t, buf, 0); got != "  alpha" {
		t.Errorf("row 0 = %q", got)
	}
	if got := rowText(t, buf, 1); got != "> beta" {
		t.Errorf("row 1 = %q", got)
	}
}

func TestSelectCancelWhenClosedIsNoop(t *testing.T) {
	s := NewSelect("a")
	if res := s.Perform(command.Cancel()); res.Kind() != command.ResultNone {
		t.Errorf("Cancel on closed = %v, want none", res.Kind())
	}
}
