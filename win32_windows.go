//go:build windows

package globalhotkey

import (
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"

	"github.com/tauri-apps/global-hotkey/hotkey"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procRegisterHotKey   = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey = user32.NewProc("UnregisterHotKey")
	procPeekMessageW     = user32.NewProc("PeekMessageW")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

const (
	wmHotkey = 0x0312
	pmRemove = 0x0001

	modAlt      = 0x0001
	modControl  = 0x0002
	modShift    = 0x0004
	modWin      = 0x0008
	modNoRepeat = 0x4000

	errHotkeyAlreadyRegistered windows.Errno = 1409
)

// winPoint mirrors the Win32 POINT struct.
type winPoint struct {
	x int32
	y int32
}

// winMsg mirrors the Win32 MSG struct. Field order and sizes must match
// the native layout.
type winMsg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      winPoint
	// Reserved by Windows; required for the correct struct size.
	lPrivate uint32
}

type winRequestKind uint8

const (
	winRegister winRequestKind = iota
	winUnregister
	winShutdown
)

type winRequest struct {
	kind  winRequestKind
	hk    hotkey.HotKey
	reply chan error
}

// winCombo keys the registration table by native combination.
type winCombo struct {
	mods uint32
	vk   uint32
}

type winEntry struct {
	id      uint32
	vk      uint32
	pressed bool
}

// winBackend runs RegisterHotKey and the message pump on one pinned OS
// thread. RegisterHotKey with a NULL window is bound to the registering
// thread, so register/unregister requests are marshalled to the worker
// through the same request/reply pattern as the X11 backend.
type winBackend struct {
	requests chan winRequest
	done     chan struct{}
}

func newWinBackend(cfg config) *winBackend {
	b := &winBackend{
		requests: make(chan winRequest),
		done:     make(chan struct{}),
	}
	w := &winWorker{
		bus:      cfg.bus,
		log:      cfg.log,
		interval: cfg.pollInterval,
		table:    make(map[winCombo]*winEntry),
		byID:     make(map[uint32]*winEntry),
	}
	go w.run(b.requests, b.done)
	return b
}

func (b *winBackend) register(hk hotkey.HotKey) error {
	return b.request(winRequest{kind: winRegister, hk: hk, reply: make(chan error, 1)})
}

func (b *winBackend) unregister(hk hotkey.HotKey) error {
	return b.request(winRequest{kind: winUnregister, hk: hk, reply: make(chan error, 1)})
}

func (b *winBackend) request(req winRequest) error {
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

func (b *winBackend) close() error {
	select {
	case b.requests <- winRequest{kind: winShutdown}:
	case <-b.done:
		return nil
	}
	<-b.done
	return nil
}

type winWorker struct {
	bus      *EventBus
	log      zerolog.Logger
	interval time.Duration
	table    map[winCombo]*winEntry
	byID     map[uint32]*winEntry
}

// run pumps the thread message queue. Hotkey registrations live and die
// with this thread, so it stays locked to the goroutine for its whole
// life.
func (w *winWorker) run(requests <-chan winRequest, done chan<- struct{}) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(done)
	w.log.Debug().Msg("win32 hotkey worker running")

	for {
		w.pumpMessage()
		w.pollReleases()

		select {
		case req := <-requests:
			switch req.kind {
			case winRegister:
				req.reply <- w.register(req.hk)
			case winUnregister:
				req.reply <- w.unregister(req.hk)
			case winShutdown:
				w.shutdown()
				return
			}
		default:
		}

		time.Sleep(w.interval)
	}
}

// pumpMessage drains at most one pending thread message. WM_HOTKEY
// carries our registration id in wParam.
func (w *winWorker) pumpMessage() {
	var msg winMsg
	ret, _, _ := procPeekMessageW.Call(
		uintptr(unsafe.Pointer(&msg)), 0, 0, 0, pmRemove)
	if ret == 0 {
		return
	}
	if msg.message != wmHotkey {
		return
	}
	entry, ok := w.byID[uint32(msg.wParam)]
	if !ok || entry.pressed {
		return
	}
	entry.pressed = true
	w.bus.send(Event{ID: entry.id, State: StatePressed})
}

// pollReleases emits a release once the main key of a pressed hotkey is
// physically up. Windows reports no release message for RegisterHotKey,
// so the key state is sampled instead.
func (w *winWorker) pollReleases() {
	for _, entry := range w.byID {
		if !entry.pressed {
			continue
		}
		state, _, _ := procGetAsyncKeyState.Call(uintptr(entry.vk))
		if uint16(state)&0x8000 == 0 {
			entry.pressed = false
			w.bus.send(Event{ID: entry.id, State: StateReleased})
		}
	}
}

func (w *winWorker) register(hk hotkey.HotKey) error {
	vk, ok := winVKeys[hk.Key()]
	if !ok {
		return fmt.Errorf("%w: no virtual-key code for %s", ErrFailedToRegister, hk.Key())
	}
	mods := winMods(hk.Mods())
	combo := winCombo{mods: mods, vk: vk}
	if _, dup := w.table[combo]; dup {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, hk)
	}

	// MOD_NOREPEAT keeps the OS from re-sending WM_HOTKEY while the key
	// is held, matching the edge-triggered press semantics elsewhere.
	ret, _, callErr := procRegisterHotKey.Call(
		0, uintptr(hk.ID()), uintptr(mods|modNoRepeat), uintptr(vk))
	if ret == 0 {
		if errno, isErrno := callErr.(windows.Errno); isErrno && errno == errHotkeyAlreadyRegistered {
			return fmt.Errorf("%w: %s", ErrAlreadyRegistered, hk)
		}
		return fmt.Errorf("%w: %s: %v", ErrFailedToRegister, hk, callErr)
	}

	entry := &winEntry{id: hk.ID(), vk: vk}
	w.table[combo] = entry
	w.byID[hk.ID()] = entry
	w.log.Debug().Stringer("hotkey", hk).Msg("registered")
	return nil
}

func (w *winWorker) unregister(hk hotkey.HotKey) error {
	vk, ok := winVKeys[hk.Key()]
	if !ok {
		return fmt.Errorf("%w: no virtual-key code for %s", ErrFailedToUnregister, hk.Key())
	}
	combo := winCombo{mods: winMods(hk.Mods()), vk: vk}
	entry, ok := w.table[combo]
	if !ok {
		// Never registered: a no-op, not an error.
		return nil
	}

	ret, _, callErr := procUnregisterHotKey.Call(0, uintptr(entry.id))
	delete(w.table, combo)
	delete(w.byID, entry.id)
	if ret == 0 {
		return fmt.Errorf("%w: %s: %v", ErrFailedToUnregister, hk, callErr)
	}
	w.log.Debug().Stringer("hotkey", hk).Msg("unregistered")
	return nil
}

func (w *winWorker) shutdown() {
	for combo, entry := range w.table {
		procUnregisterHotKey.Call(0, uintptr(entry.id))
		delete(w.table, combo)
		delete(w.byID, entry.id)
	}
	w.log.Debug().Msg("win32 hotkey worker stopped")
}

func winMods(mods hotkey.Modifiers) uint32 {
	var m uint32
	if mods.Has(hotkey.ModAlt) {
		m |= modAlt
	}
	if mods.Has(hotkey.ModControl) {
		m |= modControl
	}
	if mods.Has(hotkey.ModShift) {
		m |= modShift
	}
	if mods.Has(hotkey.ModMeta) {
		m |= modWin
	}
	return m
}
