package hotkey

import "testing"

func TestEqualIgnoresID(t *testing.T) {
	a := New(ModControl|ModShift, KeyA)
	b := New(ModControl|ModShift, KeyA)
	if a.ID() == b.ID() {
		t.Fatalf("distinct constructions share id %d", a.ID())
	}
	if !a.Equal(b) {
		t.Error("identities with the same (mods, key) are not Equal")
	}
	if a.Combo() != b.Combo() {
		t.Error("identities with the same (mods, key) hash to different combos")
	}
}

func TestCounterMonotonic(t *testing.T) {
	var c Counter
	prev := c.New(0, KeyA).ID()
	for i := 0; i < 100; i++ {
		id := c.New(0, KeyA).ID()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestMatchesMasksLockModifiers(t *testing.T) {
	hk := New(ModControl, KeyD)

	if !hk.Matches(ModControl, KeyD) {
		t.Error("exact modifiers do not match")
	}
	// Bits outside the four tracked modifiers (as an OS would report for
	// NumLock or CapsLock) must not affect matching.
	if !hk.Matches(ModControl|Modifiers(1<<6), KeyD) {
		t.Error("untracked modifier bit broke the match")
	}
	if hk.Matches(ModControl|ModShift, KeyD) {
		t.Error("extra tracked modifier still matched")
	}
	if hk.Matches(ModControl, KeyE) {
		t.Error("different key still matched")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		hk   HotKey
		want string
	}{
		{New(0, F11), "F11"},
		{New(ModControl, KeyQ), "Ctrl+KeyQ"},
		{New(ModControl|ModAlt|ModShift|ModMeta, Space), "Ctrl+Alt+Shift+Super+Space"},
	}
	for _, tc := range tests {
		if got := tc.hk.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
