package hotkey

import (
	"fmt"
	"strings"
)

// Key is one symbolic key code from a closed set modeled on the W3C
// UI Events code values. It identifies a physical key position, not the
// character it produces under the current layout.
type Key uint16

const (
	KeyNone Key = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Digit row
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9

	// Punctuation
	Backquote
	Backslash
	BracketLeft
	BracketRight
	Comma
	Equal
	Minus
	Period
	Quote
	Semicolon
	Slash

	// Whitespace and editing
	Backspace
	Enter
	Space
	Tab
	Delete
	Insert

	// Navigation
	End
	Home
	PageDown
	PageUp
	ArrowDown
	ArrowLeft
	ArrowRight
	ArrowUp

	// Locks and system keys
	CapsLock
	NumLock
	ScrollLock
	PrintScreen
	Escape

	// Numpad
	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadAdd
	NumpadDecimal
	NumpadDivide
	NumpadEnter
	NumpadEqual
	NumpadMultiply
	NumpadSubtract

	// Function keys
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24

	// Media
	AudioVolumeDown
	AudioVolumeMute
	AudioVolumeUp

	keyCount // sentinel, keep last
)

// keyNames holds the canonical token for each key, used by String and,
// uppercased, by the parser.
var keyNames = [keyCount]string{
	KeyNone: "None",

	KeyA: "KeyA",
	KeyB: "KeyB",
	KeyC: "KeyC",
	KeyD: "KeyD",
	KeyE: "KeyE",
	KeyF: "KeyF",
	KeyG: "KeyG",
	KeyH: "KeyH",
	KeyI: "KeyI",
	KeyJ: "KeyJ",
	KeyK: "KeyK",
	KeyL: "KeyL",
	KeyM: "KeyM",
	KeyN: "KeyN",
	KeyO: "KeyO",
	KeyP: "KeyP",
	KeyQ: "KeyQ",
	KeyR: "KeyR",
	KeyS: "KeyS",
	KeyT: "KeyT",
	KeyU: "KeyU",
	KeyV: "KeyV",
	KeyW: "KeyW",
	KeyX: "KeyX",
	KeyY: "KeyY",
	KeyZ: "KeyZ",

	Digit0: "Digit0",
	Digit1: "Digit1",
	Digit2: "Digit2",
	Digit3: "Digit3",
	Digit4: "Digit4",
	Digit5: "Digit5",
	Digit6: "Digit6",
	Digit7: "Digit7",
	Digit8: "Digit8",
	Digit9: "Digit9",

	Backquote:    "Backquote",
	Backslash:    "Backslash",
	BracketLeft:  "BracketLeft",
	BracketRight: "BracketRight",
	Comma:        "Comma",
	Equal:        "Equal",
	Minus:        "Minus",
	Period:       "Period",
	Quote:        "Quote",
	Semicolon:    "Semicolon",
	Slash:        "Slash",

	Backspace: "Backspace",
	Enter:     "Enter",
	Space:     "Space",
	Tab:       "Tab",
	Delete:    "Delete",
	Insert:    "Insert",

	End:        "End",
	Home:       "Home",
	PageDown:   "PageDown",
	PageUp:     "PageUp",
	ArrowDown:  "ArrowDown",
	ArrowLeft:  "ArrowLeft",
	ArrowRight: "ArrowRight",
	ArrowUp:    "ArrowUp",

	CapsLock:    "CapsLock",
	NumLock:     "NumLock",
	ScrollLock:  "ScrollLock",
	PrintScreen: "PrintScreen",
	Escape:      "Escape",

	Numpad0:        "Numpad0",
	Numpad1:        "Numpad1",
	Numpad2:        "Numpad2",
	Numpad3:        "Numpad3",
	Numpad4:        "Numpad4",
	Numpad5:        "Numpad5",
	Numpad6:        "Numpad6",
	Numpad7:        "Numpad7",
	Numpad8:        "Numpad8",
	Numpad9:        "Numpad9",
	NumpadAdd:      "NumpadAdd",
	NumpadDecimal:  "NumpadDecimal",
	NumpadDivide:   "NumpadDivide",
	NumpadEnter:    "NumpadEnter",
	NumpadEqual:    "NumpadEqual",
	NumpadMultiply: "NumpadMultiply",
	NumpadSubtract: "NumpadSubtract",

	F1:  "F1",
	F2:  "F2",
	F3:  "F3",
	F4:  "F4",
	F5:  "F5",
	F6:  "F6",
	F7:  "F7",
	F8:  "F8",
	F9:  "F9",
	F10: "F10",
	F11: "F11",
	F12: "F12",
	F13: "F13",
	F14: "F14",
	F15: "F15",
	F16: "F16",
	F17: "F17",
	F18: "F18",
	F19: "F19",
	F20: "F20",
	F21: "F21",
	F22: "F22",
	F23: "F23",
	F24: "F24",

	AudioVolumeDown: "AudioVolumeDown",
	AudioVolumeMute: "AudioVolumeMute",
	AudioVolumeUp:   "AudioVolumeUp",
}

// keyAliases maps additional uppercase parse tokens to keys, on top of
// the canonical names. Single-character aliases let users write "ctrl+Q"
// instead of "ctrl+KeyQ".
var keyAliases = map[string]Key{
	"`":  Backquote,
	"\\": Backslash,
	"[":  BracketLeft,
	"]":  BracketRight,
	",":  Comma,
	"=":  Equal,
	"-":  Minus,
	".":  Period,
	"'":  Quote,
	";":  Semicolon,
	"/":  Slash,

	"A": KeyA,
	"B": KeyB,
	"C": KeyC,
	"D": KeyD,
	"E": KeyE,
	"F": KeyF,
	"G": KeyG,
	"H": KeyH,
	"I": KeyI,
	"J": KeyJ,
	"K": KeyK,
	"L": KeyL,
	"M": KeyM,
	"N": KeyN,
	"O": KeyO,
	"P": KeyP,
	"Q": KeyQ,
	"R": KeyR,
	"S": KeyS,
	"T": KeyT,
	"U": KeyU,
	"V": KeyV,
	"W": KeyW,
	"X": KeyX,
	"Y": KeyY,
	"Z": KeyZ,

	"0": Digit0,
	"1": Digit1,
	"2": Digit2,
	"3": Digit3,
	"4": Digit4,
	"5": Digit5,
	"6": Digit6,
	"7": Digit7,
	"8": Digit8,
	"9": Digit9,

	"ESC":    Escape,
	"DOWN":   ArrowDown,
	"LEFT":   ArrowLeft,
	"RIGHT":  ArrowRight,
	"UP":     ArrowUp,
	"NUM0":   Numpad0,
	"NUM1":   Numpad1,
	"NUM2":   Numpad2,
	"NUM3":   Numpad3,
	"NUM4":   Numpad4,
	"NUM5":   Numpad5,
	"NUM6":   Numpad6,
	"NUM7":   Numpad7,
	"NUM8":   Numpad8,
	"NUM9":   Numpad9,

	"NUMADD":      NumpadAdd,
	"NUMPADPLUS":  NumpadAdd,
	"NUMPLUS":     NumpadAdd,
	"NUMDECIMAL":  NumpadDecimal,
	"NUMDIVIDE":   NumpadDivide,
	"NUMENTER":    NumpadEnter,
	"NUMEQUAL":    NumpadEqual,
	"NUMMULTIPLY": NumpadMultiply,
	"NUMSUBTRACT": NumpadSubtract,
	"VOLUMEDOWN":  AudioVolumeDown,
	"VOLUMEMUTE":  AudioVolumeMute,
	"VOLUMEUP":    AudioVolumeUp,
}

// keysByToken is the full uppercase-token lookup table, built from the
// canonical names plus the aliases.
var keysByToken = buildKeyTable()

func buildKeyTable() map[string]Key {
	t := make(map[string]Key, int(keyCount)+len(keyAliases))
	for k := Key(1); k < keyCount; k++ {
		t[strings.ToUpper(keyNames[k])] = k
	}
	for tok, k := range keyAliases {
		t[tok] = k
	}
	return t
}

// String returns the canonical token for the key, accepted by Parse.
func (k Key) String() string {
	if k < keyCount && keyNames[k] != "" {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// Keys returns every key in the closed set, in declaration order.
func Keys() []Key {
	out := make([]Key, 0, keyCount-1)
	for k := Key(1); k < keyCount; k++ {
		out = append(out, k)
	}
	return out
}
