package app

import (
	"testing"

	"gitlab.com/tinyland/lab/weft/pkg/event"
	"gitlab.com/tinyland/lab/weft/pkg/props"
	"gitlab.com/tinyland/lab/weft/pkg/state"
)

// --- Event Clause Tests ---

func TestEventClauseMatches(t *testing.T) {
	ctrlC := event.KeyEvent{Key: event.Char('c'), Mods: event.ModCtrl}

	tests := []struct {
		name   string
		clause EventClause[string]
		ev     event.Event[string]
		want   bool
	}{
		{"any matches key", OnAny[string](), event.Keyboard[string](event.KeyPress(event.Char('x'))), true},
		{"any matches tick", OnAny[string](), event.Tick[string](), true},
		{"any matches user", OnAny[string](), event.User("ping"), true},
		{"any user matches user", OnAnyUser[string](), event.User("ping"), true},
		{"any user rejects tick", OnAnyUser[string](), event.Tick[string](), false},
		{"tick matches tick", OnTick[string](), event.Tick[string](), true},
		{"tick rejects key", OnTick[string](), event.Keyboard[string](event.KeyPress(event.Char('x'))), false},
		{"resize matches any size", OnWindowResize[string](), event.Resize[string](80, 24), true},
		{"resize rejects tick", OnWindowResize[string](), event.Tick[string](), false},
		{"key matches exact", OnKey[string](ctrlC), event.Keyboard[string](ctrlC), true},
		{"key rejects other rune", OnKey[string](ctrlC), event.Keyboard[string](event.KeyPress(event.Char('c'))), false},
		{"key rejects extra mods", OnKey[string](event.KeyPress(event.Char('c'))), event.Keyboard[string](ctrlC), false},
		{"user matches equal", OnUser("ping"), event.User("ping"), true},
		{"user rejects other", OnUser("ping"), event.User("pong"), false},
		{"user rejects tick", OnUser("ping"), event.Tick[string](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.clause.Matches(tt.ev); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZeroEventClauseMatchesEverything(t *testing.T) {
	var c EventClause[string]
	if !c.Matches(event.Tick[string]()) || !c.Matches(event.User("u")) {
		t.Error("zero event clause should match every event")
	}
}

// --- Activation Clause Tests ---

func TestIsMountedClause(t *testing.T) {
	v := testView(t, "x")

	if !IsMounted("x").Evaluate(v) {
		t.Error("IsMounted(x) = false with x mounted")
	}
	if IsMounted("y").Evaluate(v) {
		t.Error("IsMounted(y) = true with y unmounted")
	}
}

func TestAndNotTruthTable(t *testing.T) {
	v := testView(t, "x")
	clause := And(IsMounted("x"), Not(IsMounted("y")))

	if !clause.Evaluate(v) {
		t.Error("And(IsMounted(x), Not(IsMounted(y))) = false with only x mounted")
	}

	if err := v.Mount("y", NewPlaceholder[string, noEv]("y")); err != nil {
		t.Fatalf("Mount(y) failed: %v", err)
	}
	if clause.Evaluate(v) {
		t.Error("And(IsMounted(x), Not(IsMounted(y))) = true with y mounted")
	}
}

func TestOrClause(t *testing.T) {
	v := testView(t, "x")

	if !Or(IsMounted("ghost"), IsMounted("x")).Evaluate(v) {
		t.Error("Or with one true branch = false")
	}
	if Or(IsMounted("ghost"), IsMounted("specter")).Evaluate(v) {
		t.Error("Or with no true branch = true")
	}
}

func TestHasAttrValueClause(t *testing.T) {
	v := testView(t, "x")
	v.SetAttr("x", props.AttrDisplay, props.Flag(true))

	if !HasAttrValue("x", props.AttrDisplay, props.Flag(true)).Evaluate(v) {
		t.Error("HasAttrValue = false for matching attribute")
	}
	if HasAttrValue("x", props.AttrDisplay, props.Flag(false)).Evaluate(v) {
		t.Error("HasAttrValue = true for mismatched value")
	}
	if HasAttrValue("x", props.AttrScroll, props.Flag(true)).Evaluate(v) {
		t.Error("HasAttrValue = true for absent attribute")
	}
	if HasAttrValue("ghost", props.AttrDisplay, props.Flag(true)).Evaluate(v) {
		t.Error("HasAttrValue = true for unmounted id")
	}
}

func TestHasStateClause(t *testing.T) {
	v := NewView[string, noEv]()
	ph := NewPlaceholder[string, noEv]("x").WithState(state.One(state.Str("ready")))
	if err := v.Mount("x", ph); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}

	if !HasState("x", state.One(state.Str("ready"))).Evaluate(v) {
		t.Error("HasState = false for matching state")
	}
	if HasState("x", state.One(state.Str("busy"))).Evaluate(v) {
		t.Error("HasState = true for mismatched state")
	}
	if HasState("ghost", state.None()).Evaluate(v) {
		t.Error("HasState = true for unmounted id")
	}
}

func TestNestedClause(t *testing.T) {
	v := testView(t, "x", "y")
	v.SetAttr("y", props.AttrDisplay, props.Flag(true))

	clause := Or(
		And(IsMounted("x"), HasAttrValue("y", props.AttrDisplay, props.Flag(false))),
		Not(IsMounted("ghost")),
	)
	if !clause.Evaluate(v) {
		t.Error("nested clause = false, want true via the Or right branch")
	}
}

func TestZeroSubClauseIsAlways(t *testing.T) {
	v := NewView[string, noEv]()
	var c SubClause
	if !c.Evaluate(v) {
		t.Error("zero SubClause should evaluate true")
	}
	if !Always().Evaluate(v) {
		t.Error("Always() should evaluate true")
	}
}

// --- Subscription Equality Tests ---

func TestSubEqual(t *testing.T) {
	a := NewSub(OnTick[string](), And(IsMounted("x"), Not(IsMounted("y"))))
	b := NewSub(OnTick[string](), And(IsMounted("x"), Not(IsMounted("y"))))
	if !a.Equal(b) {
		t.Error("structurally identical subs compare unequal")
	}

	c := NewSub(OnAny[string](), And(IsMounted("x"), Not(IsMounted("y"))))
	if a.Equal(c) {
		t.Error("subs with different event clauses compare equal")
	}

	d := NewSub(OnTick[string](), And(IsMounted("x"), Not(IsMounted("z"))))
	if a.Equal(d) {
		t.Error("subs with different guard leaves compare equal")
	}

	e := NewSub(OnTick[string](), IsMounted("x"))
	if a.Equal(e) {
		t.Error("subs with different guard shapes compare equal")
	}
}
