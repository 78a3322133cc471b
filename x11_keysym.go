//go:build linux || freebsd || openbsd || netbsd || dragonfly

package globalhotkey

import "github.com/tauri-apps/global-hotkey/hotkey"

// x11Keysyms maps each symbolic key to its X keysym (keysymdef.h). The
// printable Latin-1 range matches ASCII; letters use the lowercase form
// found in the unshifted keyboard-mapping column.
var x11Keysyms = map[hotkey.Key]uint32{
	hotkey.KeyA: 'a',
	hotkey.KeyB: 'b',
	hotkey.KeyC: 'c',
	hotkey.KeyD: 'd',
	hotkey.KeyE: 'e',
	hotkey.KeyF: 'f',
	hotkey.KeyG: 'g',
	hotkey.KeyH: 'h',
	hotkey.KeyI: 'i',
	hotkey.KeyJ: 'j',
	hotkey.KeyK: 'k',
	hotkey.KeyL: 'l',
	hotkey.KeyM: 'm',
	hotkey.KeyN: 'n',
	hotkey.KeyO: 'o',
	hotkey.KeyP: 'p',
	hotkey.KeyQ: 'q',
	hotkey.KeyR: 'r',
	hotkey.KeyS: 's',
	hotkey.KeyT: 't',
	hotkey.KeyU: 'u',
	hotkey.KeyV: 'v',
	hotkey.KeyW: 'w',
	hotkey.KeyX: 'x',
	hotkey.KeyY: 'y',
	hotkey.KeyZ: 'z',

	hotkey.Digit0: '0',
	hotkey.Digit1: '1',
	hotkey.Digit2: '2',
	hotkey.Digit3: '3',
	hotkey.Digit4: '4',
	hotkey.Digit5: '5',
	hotkey.Digit6: '6',
	hotkey.Digit7: '7',
	hotkey.Digit8: '8',
	hotkey.Digit9: '9',

	hotkey.Backquote:    '`',
	hotkey.Backslash:    '\\',
	hotkey.BracketLeft:  '[',
	hotkey.BracketRight: ']',
	hotkey.Comma:        ',',
	hotkey.Equal:        '=',
	hotkey.Minus:        '-',
	hotkey.Period:       '.',
	hotkey.Quote:        '\'',
	hotkey.Semicolon:    ';',
	hotkey.Slash:        '/',

	hotkey.Backspace: 0xff08, // XK_BackSpace
	hotkey.Enter:     0xff0d, // XK_Return
	hotkey.Space:     ' ',
	hotkey.Tab:       0xff09, // XK_Tab
	hotkey.Delete:    0xffff, // XK_Delete
	hotkey.Insert:    0xff63, // XK_Insert

	hotkey.End:        0xff57, // XK_End
	hotkey.Home:       0xff50, // XK_Home
	hotkey.PageDown:   0xff56, // XK_Next
	hotkey.PageUp:     0xff55, // XK_Prior
	hotkey.ArrowDown:  0xff54, // XK_Down
	hotkey.ArrowLeft:  0xff51, // XK_Left
	hotkey.ArrowRight: 0xff53, // XK_Right
	hotkey.ArrowUp:    0xff52, // XK_Up

	hotkey.CapsLock:    0xffe5, // XK_Caps_Lock
	hotkey.NumLock:     0xff7f, // XK_Num_Lock
	hotkey.ScrollLock:  0xff14, // XK_Scroll_Lock
	hotkey.PrintScreen: 0xff61, // XK_Print
	hotkey.Escape:      0xff1b, // XK_Escape

	hotkey.Numpad0:        0xffb0, // XK_KP_0
	hotkey.Numpad1:        0xffb1,
	hotkey.Numpad2:        0xffb2,
	hotkey.Numpad3:        0xffb3,
	hotkey.Numpad4:        0xffb4,
	hotkey.Numpad5:        0xffb5,
	hotkey.Numpad6:        0xffb6,
	hotkey.Numpad7:        0xffb7,
	hotkey.Numpad8:        0xffb8,
	hotkey.Numpad9:        0xffb9,
	hotkey.NumpadAdd:      0xffab, // XK_KP_Add
	hotkey.NumpadDecimal:  0xffae, // XK_KP_Decimal
	hotkey.NumpadDivide:   0xffaf, // XK_KP_Divide
	hotkey.NumpadEnter:    0xff8d, // XK_KP_Enter
	hotkey.NumpadEqual:    0xffbd, // XK_KP_Equal
	hotkey.NumpadMultiply: 0xffaa, // XK_KP_Multiply
	hotkey.NumpadSubtract: 0xffad, // XK_KP_Subtract

	hotkey.F1:  0xffbe,
	hotkey.F2:  0xffbf,
	hotkey.F3:  0xffc0,
	hotkey.F4:  0xffc1,
	hotkey.F5:  0xffc2,
	hotkey.F6:  0xffc3,
	hotkey.F7:  0xffc4,
	hotkey.F8:  0xffc5,
	hotkey.F9:  0xffc6,
	hotkey.F10: 0xffc7,
	hotkey.F11: 0xffc8,
	hotkey.F12: 0xffc9,
	hotkey.F13: 0xffca,
	hotkey.F14: 0xffcb,
	hotkey.F15: 0xffcc,
	hotkey.F16: 0xffcd,
	hotkey.F17: 0xffce,
	hotkey.F18: 0xffcf,
	hotkey.F19: 0xffd0,
	hotkey.F20: 0xffd1,
	hotkey.F21: 0xffd2,
	hotkey.F22: 0xffd3,
	hotkey.F23: 0xffd4,
	hotkey.F24: 0xffd5,

	hotkey.AudioVolumeDown: 0x1008ff11, // XF86XK_AudioLowerVolume
	hotkey.AudioVolumeMute: 0x1008ff12, // XF86XK_AudioMute
	hotkey.AudioVolumeUp:   0x1008ff13, // XF86XK_AudioRaiseVolume
}
