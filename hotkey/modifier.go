package hotkey

import "strings"

// Modifiers is a bit set over the four modifier keys tracked for global
// shortcuts. Lock keys (NumLock, CapsLock) are never part of the set.
type Modifiers uint8

const (
	// ModAlt is the Alt key (Option on macOS).
	ModAlt Modifiers = 1 << iota

	// ModControl is the Control key.
	ModControl

	// ModShift is the Shift key.
	ModShift

	// ModMeta is the Meta key (Command on macOS, Win on Windows).
	ModMeta
)

// ModSuper is an alias for ModMeta.
const ModSuper = ModMeta

// Has reports whether m contains every modifier in mods.
func (m Modifiers) Has(mods Modifiers) bool {
	return m&mods == mods
}

// IsEmpty reports whether no modifier is set.
func (m Modifiers) IsEmpty() bool {
	return m == 0
}

// String renders the set in canonical Ctrl, Alt, Shift, Meta order,
// joined by "+". The result is accepted by Parse.
func (m Modifiers) String() string {
	if m == 0 {
		return ""
	}
	var parts []string
	if m.Has(ModControl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "+")
}
