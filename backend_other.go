//go:build !linux && !freebsd && !openbsd && !netbsd && !dragonfly && !windows

package globalhotkey

import "github.com/tauri-apps/global-hotkey/hotkey"

// noopBackend stands in on platforms without a native implementation.
// Registrations are accepted and silently inert: nothing is grabbed and
// no events are ever delivered.
type noopBackend struct{}

func newBackend(cfg config) (backend, error) {
	return noopBackend{}, nil
}

func (noopBackend) register(hotkey.HotKey) error   { return nil }
func (noopBackend) unregister(hotkey.HotKey) error { return nil }
func (noopBackend) close() error                   { return nil }
