// Package hotkey defines the identity of a global keyboard shortcut:
// a set of modifiers plus exactly one key, with a process-unique id.
//
// A HotKey can be built directly:
//
//	hk := hotkey.New(hotkey.ModShift, hotkey.KeyD)
//
// or parsed from a shortcut string, where all modifiers must be listed
// before the key ("shift+alt+KeyQ" is legal, "shift+KeyQ+alt" is not):
//
//	hk, err := hotkey.Parse("ctrl+shift+KeyQ")
package hotkey
