//go:build windows

package globalhotkey

import "github.com/tauri-apps/global-hotkey/hotkey"

// winVKeys maps each symbolic key to its Win32 virtual-key code
// (winuser.h).
var winVKeys = map[hotkey.Key]uint32{
	hotkey.KeyA: 'A',
	hotkey.KeyB: 'B',
	hotkey.KeyC: 'C',
	hotkey.KeyD: 'D',
	hotkey.KeyE: 'E',
	hotkey.KeyF: 'F',
	hotkey.KeyG: 'G',
	hotkey.KeyH: 'H',
	hotkey.KeyI: 'I',
	hotkey.KeyJ: 'J',
	hotkey.KeyK: 'K',
	hotkey.KeyL: 'L',
	hotkey.KeyM: 'M',
	hotkey.KeyN: 'N',
	hotkey.KeyO: 'O',
	hotkey.KeyP: 'P',
	hotkey.KeyQ: 'Q',
	hotkey.KeyR: 'R',
	hotkey.KeyS: 'S',
	hotkey.KeyT: 'T',
	hotkey.KeyU: 'U',
	hotkey.KeyV: 'V',
	hotkey.KeyW: 'W',
	hotkey.KeyX: 'X',
	hotkey.KeyY: 'Y',
	hotkey.KeyZ: 'Z',

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

	hotkey.Backquote:    0xC0, // VK_OEM_3
	hotkey.Backslash:    0xDC, // VK_OEM_5
	hotkey.BracketLeft:  0xDB, // VK_OEM_4
	hotkey.BracketRight: 0xDD, // VK_OEM_6
	hotkey.Comma:        0xBC, // VK_OEM_COMMA
	hotkey.Equal:        0xBB, // VK_OEM_PLUS
	hotkey.Minus:        0xBD, // VK_OEM_MINUS
	hotkey.Period:       0xBE, // VK_OEM_PERIOD
	hotkey.Quote:        0xDE, // VK_OEM_7
	hotkey.Semicolon:    0xBA, // VK_OEM_1
	hotkey.Slash:        0xBF, // VK_OEM_2

	hotkey.Backspace: 0x08, // VK_BACK
	hotkey.Enter:     0x0D, // VK_RETURN
	hotkey.Space:     0x20, // VK_SPACE
	hotkey.Tab:       0x09, // VK_TAB
	hotkey.Delete:    0x2E, // VK_DELETE
	hotkey.Insert:    0x2D, // VK_INSERT

	hotkey.End:        0x23, // VK_END
	hotkey.Home:       0x24, // VK_HOME
	hotkey.PageDown:   0x22, // VK_NEXT
	hotkey.PageUp:     0x21, // VK_PRIOR
	hotkey.ArrowDown:  0x28, // VK_DOWN
	hotkey.ArrowLeft:  0x25, // VK_LEFT
	hotkey.ArrowRight: 0x27, // VK_RIGHT
	hotkey.ArrowUp:    0x26, // VK_UP

	hotkey.CapsLock:    0x14, // VK_CAPITAL
	hotkey.NumLock:     0x90, // VK_NUMLOCK
	hotkey.ScrollLock:  0x91, // VK_SCROLL
	hotkey.PrintScreen: 0x2C, // VK_SNAPSHOT
	hotkey.Escape:      0x1B, // VK_ESCAPE

	hotkey.Numpad0:        0x60, // VK_NUMPAD0
	hotkey.Numpad1:        0x61,
	hotkey.Numpad2:        0x62,
	hotkey.Numpad3:        0x63,
	hotkey.Numpad4:        0x64,
	hotkey.Numpad5:        0x65,
	hotkey.Numpad6:        0x66,
	hotkey.Numpad7:        0x67,
	hotkey.Numpad8:        0x68,
	hotkey.Numpad9:        0x69,
	hotkey.NumpadAdd:      0x6B, // VK_ADD
	hotkey.NumpadDecimal:  0x6E, // VK_DECIMAL
	hotkey.NumpadDivide:   0x6F, // VK_DIVIDE
	hotkey.NumpadEnter:    0x0D, // VK_RETURN
	hotkey.NumpadEqual:    0x92, // VK_OEM_NEC_EQUAL
	hotkey.NumpadMultiply: 0x6A, // VK_MULTIPLY
	hotkey.NumpadSubtract: 0x6D, // VK_SUBTRACT

	hotkey.F1:  0x70,
	hotkey.F2:  0x71,
	hotkey.F3:  0x72,
	hotkey.F4:  0x73,
	hotkey.F5:  0x74,
	hotkey.F6:  0x75,
	hotkey.F7:  0x76,
	hotkey.F8:  0x77,
	hotkey.F9:  0x78,
	hotkey.F10: 0x79,
	hotkey.F11: 0x7A,
	hotkey.F12: 0x7B,
	hotkey.F13: 0x7C,
	hotkey.F14: 0x7D,
	hotkey.F15: 0x7E,
	hotkey.F16: 0x7F,
	hotkey.F17: 0x80,
	hotkey.F18: 0x81,
	hotkey.F19: 0x82,
	hotkey.F20: 0x83,
	hotkey.F21: 0x84,
	hotkey.F22: 0x85,
	hotkey.F23: 0x86,
	hotkey.F24: 0x87,

	hotkey.AudioVolumeDown: 0xAE, // VK_VOLUME_DOWN
	hotkey.AudioVolumeMute: 0xAD, // VK_VOLUME_MUTE
	hotkey.AudioVolumeUp:   0xAF, // VK_VOLUME_UP
}
