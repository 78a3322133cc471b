//go:build linux || freebsd || openbsd || netbsd || dragonfly

package globalhotkey

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/tauri-apps/global-hotkey/hotkey"
)

// xgbDisplay implements xdisplay over an X protocol connection. It is
// created on the caller's goroutine but from then on owned exclusively
// by the backend worker.
type xgbDisplay struct {
	conn *xgb.Conn
	root xproto.Window

	// Keyboard mapping snapshot taken at connect time, used for
	// keysym-to-keycode translation.
	minKeycode xproto.Keycode
	perKeycode byte
	keysyms    []xproto.Keysym
}

// openXDisplay connects to the X server named by DISPLAY and selects key
// input on the root window. Any failure tears the connection back down;
// nothing is leaked.
func openXDisplay() (*xgbDisplay, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("opening display: %w", err)
	}

	setup := xproto.Setup(conn)
	root := setup.DefaultScreen(conn).Root

	err = xproto.ChangeWindowAttributesChecked(conn, root, xproto.CwEventMask,
		[]uint32{xproto.EventMaskKeyPress | xproto.EventMaskKeyRelease}).Check()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("selecting key input on root window: %w", err)
	}

	count := byte(setup.MaxKeycode - setup.MinKeycode + 1)
	mapping, err := xproto.GetKeyboardMapping(conn, setup.MinKeycode, count).Reply()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("fetching keyboard mapping: %w", err)
	}

	return &xgbDisplay{
		conn:       conn,
		root:       root,
		minKeycode: setup.MinKeycode,
		perKeycode: mapping.KeysymsPerKeycode,
		keysyms:    mapping.Keysyms,
	}, nil
}

// PollKeyEvent drains one pending event without blocking. Auto-repeat
// releases are suppressed here: the X server reports a repeat as a
// release/press pair, so a release whose key is still physically held
// (per QueryKeymap) is a repeat artifact, not a real release. The state
// machine therefore sees detectable-auto-repeat semantics.
func (d *xgbDisplay) PollKeyEvent() (xKeyEvent, bool) {
	for {
		ev, err := d.conn.PollForEvent()
		if ev == nil && err == nil {
			return xKeyEvent{}, false
		}
		if err != nil {
			continue
		}
		switch e := ev.(type) {
		case xproto.KeyPressEvent:
			return xKeyEvent{Keycode: uint8(e.Detail), State: e.State, Press: true}, true
		case xproto.KeyReleaseEvent:
			if d.keyHeld(uint8(e.Detail)) {
				continue
			}
			return xKeyEvent{Keycode: uint8(e.Detail), State: e.State, Press: false}, true
		default:
			continue
		}
	}
}

// keyHeld reports whether the key is physically down right now.
func (d *xgbDisplay) keyHeld(keycode uint8) bool {
	reply, err := xproto.QueryKeymap(d.conn).Reply()
	if err != nil {
		return false
	}
	return reply.Keys[keycode/8]&(1<<(keycode%8)) != 0
}

// Keycode scans the mapping snapshot for the first keycode bound to the
// key's keysym, in any shift column.
func (d *xgbDisplay) Keycode(k hotkey.Key) (uint8, bool) {
	keysym, ok := x11Keysyms[k]
	if !ok {
		return 0, false
	}
	per := int(d.perKeycode)
	for i, sym := range d.keysyms {
		if uint32(sym) == keysym {
			return uint8(int(d.minKeycode) + i/per), true
		}
	}
	return 0, false
}

// GrabKey grabs the combination on the root window. A BadAccess reply
// means another client already holds it.
func (d *xgbDisplay) GrabKey(code uint8, mods uint16) (bool, error) {
	err := xproto.GrabKeyChecked(d.conn, false, d.root, mods, xproto.Keycode(code),
		xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
	if err != nil {
		if _, conflict := err.(xproto.AccessError); conflict {
			return true, nil
		}
		return false, fmt.Errorf("grab keycode %d mods %#x: %w", code, mods, err)
	}
	return false, nil
}

func (d *xgbDisplay) UngrabKey(code uint8, mods uint16) {
	xproto.UngrabKey(d.conn, xproto.Keycode(code), d.root, mods)
}

func (d *xgbDisplay) Close() {
	d.conn.Close()
}
