package globalhotkey

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tauri-apps/global-hotkey/hotkey"
)

// fakeBackend records the contract calls the Manager makes.
type fakeBackend struct {
	registered   []hotkey.HotKey
	unregistered []hotkey.HotKey
	failOn       hotkey.Combo
	closed       bool
}

func (f *fakeBackend) register(hk hotkey.HotKey) error {
	if hk.Combo() == f.failOn {
		return ErrAlreadyRegistered
	}
	f.registered = append(f.registered, hk)
	return nil
}

func (f *fakeBackend) unregister(hk hotkey.HotKey) error {
	f.unregistered = append(f.unregistered, hk)
	return nil
}

func (f *fakeBackend) close() error {
	f.closed = true
	return nil
}

func newFakeManager() (*Manager, *fakeBackend) {
	fb := &fakeBackend{}
	return &Manager{b: fb, bus: NewEventBus()}, fb
}

func TestManagerRegisterAllStopsAtFirstError(t *testing.T) {
	m, fb := newFakeManager()

	bad := hotkey.New(hotkey.ModControl, hotkey.KeyB)
	fb.failOn = bad.Combo()

	hks := []hotkey.HotKey{
		hotkey.New(hotkey.ModControl, hotkey.KeyA),
		bad,
		hotkey.New(hotkey.ModControl, hotkey.KeyC),
	}
	err := m.RegisterAll(hks)
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("RegisterAll = %v, want ErrAlreadyRegistered", err)
	}
	if len(fb.registered) != 1 || !fb.registered[0].Equal(hks[0]) {
		t.Errorf("registered = %v, want only the element before the failure", fb.registered)
	}
}

// UnregisterAll must unregister each element, not re-register it.
func TestManagerUnregisterAllUnregisters(t *testing.T) {
	m, fb := newFakeManager()

	hks := []hotkey.HotKey{
		hotkey.New(hotkey.ModControl, hotkey.KeyA),
		hotkey.New(hotkey.ModAlt, hotkey.KeyB),
	}
	if err := m.RegisterAll(hks); err != nil {
		t.Fatalf("RegisterAll failed: %v", err)
	}
	fb.registered = nil

	if err := m.UnregisterAll(hks); err != nil {
		t.Fatalf("UnregisterAll failed: %v", err)
	}
	if len(fb.registered) != 0 {
		t.Errorf("UnregisterAll re-registered %v", fb.registered)
	}
	if len(fb.unregistered) != len(hks) {
		t.Fatalf("unregistered %d hotkeys, want %d", len(fb.unregistered), len(hks))
	}
	for i, hk := range hks {
		if !fb.unregistered[i].Equal(hk) {
			t.Errorf("unregistered[%d] = %v, want %v", i, fb.unregistered[i], hk)
		}
	}
}

func TestManagerClose(t *testing.T) {
	m, fb := newFakeManager()
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !fb.closed {
		t.Error("backend not closed")
	}
}

// End-to-end over the X11 state machine: a registered hotkey's press
// reaches the manager's receiver.
func TestManagerDeliversThroughBus(t *testing.T) {
	disp := newFakeDisplay()
	bus := NewEventBus()
	m := &Manager{
		b: newX11Backend(disp, config{
			bus:          bus,
			log:          zerolog.Nop(),
			pollInterval: time.Millisecond,
		}),
		bus: bus,
	}
	defer m.Close()

	hk := hotkey.New(hotkey.ModShift, hotkey.KeyD)
	if err := m.Register(hk); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	disp.push(xKeyEvent{Keycode: uint8(hotkey.KeyD), State: xModShift, Press: true})
	rx := m.Receiver()
	ev := recvEvent(t, rx)
	if ev.ID != hk.ID() || ev.State != StatePressed {
		t.Fatalf("event = %+v, want id %d Pressed", ev, hk.ID())
	}
}
