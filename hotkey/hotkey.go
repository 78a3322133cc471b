package hotkey

import (
	"strings"
	"sync/atomic"
)

// Counter allocates process-unique hotkey ids. Ids increase monotonically
// and are never reused. The zero value is ready to use; tests construct
// their own Counter to stay isolated from the package default.
type Counter struct {
	n atomic.Uint32
}

// Next returns a fresh id.
func (c *Counter) Next() uint32 {
	return c.n.Add(1)
}

// New builds a HotKey whose id is drawn from this counter.
func (c *Counter) New(mods Modifiers, key Key) HotKey {
	return HotKey{mods: mods, key: key, id: c.Next()}
}

// defaultCounter serves New and Parse.
var defaultCounter Counter

// HotKey is a keyboard shortcut: a modifier set plus exactly one key.
// Two hotkeys built from the same (Modifiers, Key) pair compare equal
// under Equal even though their ids differ; the id only names the
// registration in delivered events.
type HotKey struct {
	mods Modifiers
	key  Key
	id   uint32
}

// New builds a HotKey with a fresh id from the package counter.
func New(mods Modifiers, key Key) HotKey {
	return defaultCounter.New(mods, key)
}

// Mods returns the modifier set.
func (h HotKey) Mods() Modifiers { return h.mods }

// Key returns the key code.
func (h HotKey) Key() Key { return h.key }

// ID returns the process-unique id assigned at construction.
func (h HotKey) ID() uint32 { return h.id }

// Equal reports whether both hotkeys name the same (Modifiers, Key)
// combination. The id is ignored.
func (h HotKey) Equal(other HotKey) bool {
	return h.mods == other.mods && h.key == other.key
}

// Matches reports whether an observed (modifiers, key) pair triggers this
// hotkey. The incoming modifiers are masked to the four tracked bits, so
// lock-key state reported by the OS does not affect the outcome.
func (h HotKey) Matches(mods Modifiers, key Key) bool {
	const tracked = ModAlt | ModControl | ModShift | ModMeta
	return h.mods == mods&tracked && h.key == key
}

// Combo is the (Modifiers, Key) pair stripped of the id, usable as a map
// key when deduplicating registrations.
type Combo struct {
	Mods Modifiers
	Key  Key
}

// Combo returns the identity of the hotkey without its id.
func (h HotKey) Combo() Combo {
	return Combo{Mods: h.mods, Key: h.key}
}

// String renders the hotkey in its canonical parseable form, for example
// "Ctrl+Shift+KeyQ" or "F11" for a bare key.
func (h HotKey) String() string {
	if h.mods == 0 {
		return h.key.String()
	}
	var b strings.Builder
	b.WriteString(h.mods.String())
	b.WriteByte('+')
	b.WriteString(h.key.String())
	return b.String()
}
