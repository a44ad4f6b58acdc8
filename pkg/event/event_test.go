package event

import "testing"

func TestKeyConstructors(t *testing.T) {
	if k := Char('q'); k.Code != KeyChar || k.Char != 'q' {
		t.Errorf("Char('q') = %+v", k)
	}
	if k := Function(5); k.Code != KeyFunction || k.Fn != 5 {
		t.Errorf("Function(5) = %+v", k)
	}
}

func TestKeyEquality(t *testing.T) {
	if Char('a') != Char('a') {
		t.Error("identical char keys should compare equal")
	}
	if Char('a') == Char('b') {
		t.Error("distinct char keys should not compare equal")
	}
	if Function(1) == Function(2) {
		t.Error("distinct function keys should not compare equal")
	}
	if (Key{Code: KeyEnter}) != (Key{Code: KeyEnter}) {
		t.Error("named keys should compare equal")
	}
}

func TestKeyModsBitset(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModShift) {
		t.Errorf("mods %v missing expected bits", m)
	}
	if m.Has(ModAlt) {
		t.Errorf("mods %v should not contain Alt", m)
	}
	if !m.Has(ModCtrl | ModShift) {
		t.Error("Has should accept a combined mask")
	}
	if ModNone.Has(ModCtrl) {
		t.Error("empty set should not report Ctrl")
	}
}

func TestKeyString(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{Char('x'), "x"},
		{Function(12), "F12"},
		{Key{Code: KeyEsc}, "Esc"},
		{Key{Code: KeyBackTab}, "BackTab"},
		{Key{}, "Null"},
	}
	for _, c := range cases {
		if got := c.key.String(); got != c.want {
			t.Errorf("%+v String() = %q, want %q", c.key, got, c.want)
		}
	}
}

func TestKeyEventString(t *testing.T) {
	ev := KeyEvent{Key: Char('c'), Mods: ModCtrl}
	if got := ev.String(); got != "Ctrl+c" {
		t.Errorf("String() = %q, want %q", got, "Ctrl+c")
	}
	if got := KeyPress(Char('c')).String(); got != "c" {
		t.Errorf("String() = %q, want %q", got, "c")
	}
}

func TestEventEquality(t *testing.T) {
	a := Keyboard[NoUserEvent](KeyPress(Char('a')))
	b := Keyboard[NoUserEvent](KeyPress(Char('a')))
	if a != b {
		t.Error("identical keyboard events should compare equal")
	}
	if Tick[NoUserEvent]() != Tick[NoUserEvent]() {
		t.Error("tick events should compare equal")
	}
	if Resize[NoUserEvent](80, 24) == Resize[NoUserEvent](120, 40) {
		t.Error("resizes with different sizes should not compare equal")
	}
}

func TestUserEventEquality(t *testing.T) {
	type usr struct{ N int }
	if User(usr{1}) != User(usr{1}) {
		t.Error("identical user events should compare equal")
	}
	if User(usr{1}) == User(usr{2}) {
		t.Error("distinct user events should not compare equal")
	}
}
