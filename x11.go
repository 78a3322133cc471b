package globalhotkey

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tauri-apps/global-hotkey/hotkey"
)

// X11 core modifier mask bits (X11/X.h).
const (
	xModShift   uint16 = 1 << 0
	xModLock    uint16 = 1 << 1 // CapsLock
	xModControl uint16 = 1 << 2
	xMod1       uint16 = 1 << 3 // Alt
	xMod2       uint16 = 1 << 4 // NumLock
	xMod4       uint16 = 1 << 6 // Super
)

// xTrackedMods are the modifier bits that participate in matching. The
// server also reports lock-key bits in the event state; those are masked
// off before the table lookup.
const xTrackedMods = xModControl | xModShift | xMod1 | xMod4

// xIgnoredMods are the lock-mask permutations every grab is repeated
// under. XGrabKey matches the exact modifier state, and the server treats
// an engaged NumLock or CapsLock as a modifier, so a registration must
// cover all four states to fire regardless of the locks.
var xIgnoredMods = [4]uint16{0, xMod2, xModLock, xMod2 | xModLock}

// xKeyEvent is one native key press or release as seen on the display
// connection.
type xKeyEvent struct {
	Keycode uint8
	State   uint16 // modifier mask at event time, lock bits included
	Press   bool
}

// xdisplay is the small capability surface the state machine needs from a
// display connection. The real implementation wraps an X connection; the
// tests drive the machine with a scripted fake.
type xdisplay interface {
	// PollKeyEvent returns one pending key event without blocking, or
	// ok=false when none is queued.
	PollKeyEvent() (ev xKeyEvent, ok bool)

	// Keycode translates a symbolic key to the native keycode, or
	// ok=false when the key has no binding on this display.
	Keycode(k hotkey.Key) (code uint8, ok bool)

	// GrabKey grabs (keycode, mods) on the root window. conflict=true
	// means another client already holds the combination.
	GrabKey(code uint8, mods uint16) (conflict bool, err error)

	// UngrabKey releases a grab. Releasing a combination that is not
	// grabbed is harmless.
	UngrabKey(code uint8, mods uint16)

	// Close terminates the connection.
	Close()
}

type x11RequestKind uint8

const (
	x11Register x11RequestKind = iota
	x11Unregister
	x11Shutdown
)

// x11Request travels from the public methods to the worker. The worker
// sends exactly one reply per register/unregister request before moving
// on, which is what lets the callers block on the one-slot reply channel.
type x11Request struct {
	kind  x11RequestKind
	hk    hotkey.HotKey
	reply chan error
}

// x11GrabKey keys the registration table: the grab's modifier mask
// (tracked bits only) plus the native keycode.
type x11GrabKey struct {
	mods    uint16
	keycode uint8
}

// x11Entry is the per-grab state. repeating flips on the first press and
// back on the release, collapsing native auto-repeat into a single
// logical press/release pair.
type x11Entry struct {
	id        uint32
	repeating bool
}

// x11Backend runs the registration table and display connection on a
// dedicated worker goroutine. The handle itself holds only the request
// channel; nothing here is shared mutable state, so no locks are needed.
type x11Backend struct {
	requests chan x11Request
	done     chan struct{}
}

// newX11Backend starts the worker. disp must already be connected; the
// worker assumes ownership and closes it on shutdown.
func newX11Backend(disp xdisplay, cfg config) *x11Backend {
	b := &x11Backend{
		requests: make(chan x11Request),
		done:     make(chan struct{}),
	}
	w := &x11Worker{
		disp:     disp,
		bus:      cfg.bus,
		log:      cfg.log,
		interval: cfg.pollInterval,
		table:    make(map[x11GrabKey]*x11Entry),
	}
	go w.run(b.requests, b.done)
	return b
}

func (b *x11Backend) register(hk hotkey.HotKey) error {
	return b.request(x11Request{kind: x11Register, hk: hk, reply: make(chan error, 1)})
}

func (b *x11Backend) unregister(hk hotkey.HotKey) error {
	return b.request(x11Request{kind: x11Unregister, hk: hk, reply: make(chan error, 1)})
}

// request sends one control message and blocks until the worker replies.
// A worker that is already gone yields no answer; the call then reports
// success, an accepted limitation of the teardown path.
func (b *x11Backend) request(req x11Request) error {
	select {
	case b.requests <- req:
	case <-b.done:
		return nil
	}
	select {
	case err := <-req.reply:
		return err
	case <-b.done:
		return nil
	}
}

func (b *x11Backend) close() error {
	select {
	case b.requests <- x11Request{kind: x11Shutdown}:
	case <-b.done:
		return nil
	}
	<-b.done
	return nil
}

// x11Worker owns the display connection and registration table. Only the
// worker goroutine ever touches them.
type x11Worker struct {
	disp     xdisplay
	bus      *EventBus
	log      zerolog.Logger
	interval time.Duration
	table    map[x11GrabKey]*x11Entry
}

// run is the polling loop. Each iteration drains at most one native key
// event and at most one control request, then sleeps for the poll
// interval; delivery latency is bounded by that interval.
func (w *x11Worker) run(requests <-chan x11Request, done chan<- struct{}) {
	defer close(done)
	w.log.Debug().Msg("x11 hotkey worker running")

	for {
		if ev, ok := w.disp.PollKeyEvent(); ok {
			w.handleKeyEvent(ev)
		}

		select {
		case req := <-requests:
			switch req.kind {
			case x11Register:
				req.reply <- w.register(req.hk)
			case x11Unregister:
				req.reply <- w.unregister(req.hk)
			case x11Shutdown:
				w.shutdown()
				return
			}
		default:
		}

		time.Sleep(w.interval)
	}
}

func (w *x11Worker) handleKeyEvent(ev xKeyEvent) {
	mods := ev.State & xTrackedMods
	entry, ok := w.table[x11GrabKey{mods: mods, keycode: ev.Keycode}]
	if !ok {
		return
	}
	switch {
	case ev.Press && !entry.repeating:
		entry.repeating = true
		w.bus.send(Event{ID: entry.id, State: StatePressed})
	case !ev.Press && entry.repeating:
		entry.repeating = false
		w.bus.send(Event{ID: entry.id, State: StateReleased})
	}
}

func (w *x11Worker) register(hk hotkey.HotKey) error {
	keycode, ok := w.disp.Keycode(hk.Key())
	if !ok {
		return fmt.Errorf("%w: no native scancode for %s", ErrFailedToRegister, hk.Key())
	}
	mods := x11Mods(hk.Mods())
	key := x11GrabKey{mods: mods, keycode: keycode}

	if _, dup := w.table[key]; dup {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, hk)
	}

	for _, m := range xIgnoredMods {
		conflict, err := w.disp.GrabKey(keycode, mods|m)
		if err != nil || conflict {
			// Roll back every variant; ungrabbing one that was never
			// grabbed is harmless.
			for _, u := range xIgnoredMods {
				w.disp.UngrabKey(keycode, mods|u)
			}
			if err != nil {
				return fmt.Errorf("grabbing %s: %w", hk, err)
			}
			w.log.Debug().Stringer("hotkey", hk).Msg("grab conflict")
			return fmt.Errorf("%w: %s", ErrAlreadyRegistered, hk)
		}
	}

	w.table[key] = &x11Entry{id: hk.ID()}
	w.log.Debug().Stringer("hotkey", hk).Uint8("keycode", keycode).Msg("registered")
	return nil
}

func (w *x11Worker) unregister(hk hotkey.HotKey) error {
	keycode, ok := w.disp.Keycode(hk.Key())
	if !ok {
		return fmt.Errorf("%w: no native scancode for %s", ErrFailedToUnregister, hk.Key())
	}
	mods := x11Mods(hk.Mods())
	for _, m := range xIgnoredMods {
		w.disp.UngrabKey(keycode, mods|m)
	}
	// Removing an absent entry is fine: unregistering a hotkey that was
	// never registered is not an error.
	delete(w.table, x11GrabKey{mods: mods, keycode: keycode})
	w.log.Debug().Stringer("hotkey", hk).Msg("unregistered")
	return nil
}

// shutdown ungrabs everything still in the table, then closes the
// display. This is the only path out of the loop.
func (w *x11Worker) shutdown() {
	for key := range w.table {
		for _, m := range xIgnoredMods {
			w.disp.UngrabKey(key.keycode, key.mods|m)
		}
	}
	w.disp.Close()
	w.log.Debug().Msg("x11 hotkey worker stopped")
}

// x11Mods translates the portable modifier set to the X11 mask.
func x11Mods(mods hotkey.Modifiers) uint16 {
	var m uint16
	if mods.Has(hotkey.ModShift) {
		m |= xModShift
	}
	if mods.Has(hotkey.ModControl) {
		m |= xModControl
	}
	if mods.Has(hotkey.ModAlt) {
		m |= xMod1
	}
	if mods.Has(hotkey.ModMeta) {
		m |= xMod4
	}
	return m
}
