package globalhotkey

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tauri-apps/global-hotkey/hotkey"
)

type grabPair struct {
	code uint8
	mods uint16
}

// fakeDisplay scripts an X connection for the state-machine tests. The
// worker goroutine is the only caller of the xdisplay methods, so the
// mutex only guards against the test goroutine feeding events in.
type fakeDisplay struct {
	mu        sync.Mutex
	events    []xKeyEvent
	grabs     map[grabPair]bool
	foreign   map[grabPair]bool // combinations owned by "another client"
	unmapped  map[hotkey.Key]bool
	ungrabbed []grabPair
	closed    bool
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{
		grabs:    make(map[grabPair]bool),
		foreign:  make(map[grabPair]bool),
		unmapped: make(map[hotkey.Key]bool),
	}
}

func (d *fakeDisplay) push(ev ...xKeyEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, ev...)
}

func (d *fakeDisplay) pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.events)
}

func (d *fakeDisplay) PollKeyEvent() (xKeyEvent, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.events) == 0 {
		return xKeyEvent{}, false
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev, true
}

func (d *fakeDisplay) Keycode(k hotkey.Key) (uint8, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.unmapped[k] {
		return 0, false
	}
	return uint8(k), true
}

func (d *fakeDisplay) GrabKey(code uint8, mods uint16) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p := grabPair{code, mods}
	if d.foreign[p] {
		return true, nil
	}
	d.grabs[p] = true
	return false, nil
}

func (d *fakeDisplay) UngrabKey(code uint8, mods uint16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p := grabPair{code, mods}
	delete(d.grabs, p)
	d.ungrabbed = append(d.ungrabbed, p)
}

func (d *fakeDisplay) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

func (d *fakeDisplay) grabCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.grabs)
}

func (d *fakeDisplay) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

func startX11(t *testing.T) (*x11Backend, *fakeDisplay, *Receiver) {
	t.Helper()
	disp := newFakeDisplay()
	bus := NewEventBus()
	b := newX11Backend(disp, config{
		bus:          bus,
		log:          zerolog.Nop(),
		pollInterval: time.Millisecond,
	})
	t.Cleanup(func() { b.close() })
	return b, disp, bus.Receiver()
}

func recvEvent(t *testing.T, rx *Receiver) Event {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if ev, ok := rx.TryRecv(); ok {
			return ev
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timed out waiting for event")
	return Event{}
}

// expectQuiet asserts no event arrives within the grace window.
func expectQuiet(t *testing.T, rx *Receiver) {
	t.Helper()
	time.Sleep(30 * time.Millisecond)
	if ev, ok := rx.TryRecv(); ok {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func waitDrained(t *testing.T, disp *fakeDisplay) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for disp.pending() > 0 {
		if time.Now().After(deadline) {
			t.Fatal("worker never drained the event queue")
		}
		time.Sleep(time.Millisecond)
	}
	// One extra interval so the last polled event is fully handled.
	time.Sleep(10 * time.Millisecond)
}

func TestX11RegisterGrabsLockVariants(t *testing.T) {
	b, disp, _ := startX11(t)

	hk := hotkey.New(hotkey.ModControl|hotkey.ModShift, hotkey.KeyD)
	if err := b.register(hk); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// The grab must cover {none, NumLock, CapsLock, both} on top of the
	// requested modifiers.
	if got := disp.grabCount(); got != 4 {
		t.Fatalf("grab count = %d, want 4", got)
	}
	mods := x11Mods(hk.Mods())
	disp.mu.Lock()
	defer disp.mu.Unlock()
	for _, m := range xIgnoredMods {
		if !disp.grabs[grabPair{uint8(hotkey.KeyD), mods | m}] {
			t.Errorf("missing grab for lock mask %#x", m)
		}
	}
}

func TestX11RegisterConflictCycle(t *testing.T) {
	b, _, _ := startX11(t)

	first := hotkey.New(hotkey.ModControl, hotkey.KeyQ)
	second := hotkey.New(hotkey.ModControl, hotkey.KeyQ)

	if err := b.register(first); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := b.register(second); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("second register = %v, want ErrAlreadyRegistered", err)
	}
	if err := b.unregister(first); err != nil {
		t.Fatalf("unregister failed: %v", err)
	}
	if err := b.register(second); err != nil {
		t.Fatalf("register after unregister failed: %v", err)
	}
}

func TestX11ForeignGrabRollsBack(t *testing.T) {
	b, disp, _ := startX11(t)

	hk := hotkey.New(hotkey.ModAlt, hotkey.KeyF)
	mods := x11Mods(hk.Mods())

	// Another client holds the CapsLock variant; the whole registration
	// must fail and every variant grabbed before it must be released.
	disp.mu.Lock()
	disp.foreign[grabPair{uint8(hotkey.KeyF), mods | xModLock}] = true
	disp.mu.Unlock()

	if err := b.register(hk); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("register = %v, want ErrAlreadyRegistered", err)
	}
	if got := disp.grabCount(); got != 0 {
		t.Errorf("grabs left after rollback: %d", got)
	}
}

func TestX11UnregisterNeverRegistered(t *testing.T) {
	b, _, _ := startX11(t)
	if err := b.unregister(hotkey.New(0, hotkey.KeyZ)); err != nil {
		t.Fatalf("unregister of never-registered hotkey = %v, want nil", err)
	}
}

func TestX11UnknownScancode(t *testing.T) {
	b, disp, _ := startX11(t)
	disp.mu.Lock()
	disp.unmapped[hotkey.AudioVolumeUp] = true
	disp.mu.Unlock()

	err := b.register(hotkey.New(0, hotkey.AudioVolumeUp))
	if !errors.Is(err, ErrFailedToRegister) {
		t.Fatalf("register = %v, want ErrFailedToRegister", err)
	}
}

// A press followed by auto-repeat presses collapses into one logical
// press; the release then produces exactly one logical release.
func TestX11RepeatCollapse(t *testing.T) {
	b, disp, rx := startX11(t)

	hk := hotkey.New(hotkey.ModControl, hotkey.KeyA)
	if err := b.register(hk); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	code := uint8(hotkey.KeyA)
	press := xKeyEvent{Keycode: code, State: xModControl, Press: true}
	for i := 0; i < 6; i++ {
		disp.push(press)
	}
	waitDrained(t, disp)

	ev := recvEvent(t, rx)
	if ev.ID != hk.ID() || ev.State != StatePressed {
		t.Fatalf("event = %+v, want id %d Pressed", ev, hk.ID())
	}
	expectQuiet(t, rx)

	disp.push(xKeyEvent{Keycode: code, State: xModControl, Press: false})
	waitDrained(t, disp)

	ev = recvEvent(t, rx)
	if ev.ID != hk.ID() || ev.State != StateReleased {
		t.Fatalf("event = %+v, want id %d Released", ev, hk.ID())
	}
	expectQuiet(t, rx)
}

// A hotkey fires regardless of NumLock/CapsLock state: the event's lock
// bits are masked off before the table lookup.
func TestX11LockModifierInvariance(t *testing.T) {
	b, disp, rx := startX11(t)

	hk := hotkey.New(0, hotkey.F5)
	if err := b.register(hk); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	code := uint8(hotkey.F5)
	states := []uint16{0, xMod2, xModLock, xMod2 | xModLock}
	for _, s := range states {
		disp.push(
			xKeyEvent{Keycode: code, State: s, Press: true},
			xKeyEvent{Keycode: code, State: s, Press: false},
		)
		waitDrained(t, disp)

		if ev := recvEvent(t, rx); ev.State != StatePressed {
			t.Fatalf("state %#x: first event %+v, want Pressed", s, ev)
		}
		if ev := recvEvent(t, rx); ev.State != StateReleased {
			t.Fatalf("state %#x: second event %+v, want Released", s, ev)
		}
	}
}

// Events for combinations that were never registered are dropped.
func TestX11UnmatchedEventIgnored(t *testing.T) {
	b, disp, rx := startX11(t)

	if err := b.register(hotkey.New(hotkey.ModControl, hotkey.KeyA)); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	disp.push(xKeyEvent{Keycode: uint8(hotkey.KeyB), State: xModControl, Press: true})
	disp.push(xKeyEvent{Keycode: uint8(hotkey.KeyA), State: xModControl | xModShift, Press: true})
	waitDrained(t, disp)
	expectQuiet(t, rx)
}

func TestX11CloseJoinsAndReleases(t *testing.T) {
	disp := newFakeDisplay()
	b := newX11Backend(disp, config{
		bus:          NewEventBus(),
		log:          zerolog.Nop(),
		pollInterval: time.Millisecond,
	})

	if err := b.register(hotkey.New(hotkey.ModControl, hotkey.KeyC)); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := b.close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if !disp.isClosed() {
		t.Error("display connection not closed")
	}
	if got := disp.grabCount(); got != 0 {
		t.Errorf("grabs left after close: %d", got)
	}
	// Calls after close return without an answer.
	if err := b.register(hotkey.New(hotkey.ModControl, hotkey.KeyV)); err != nil {
		t.Errorf("register after close = %v, want nil", err)
	}
	if err := b.close(); err != nil {
		t.Errorf("second close = %v, want nil", err)
	}
}
