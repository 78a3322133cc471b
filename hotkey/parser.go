package hotkey

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Parse errors. Wrapped values carry the offending input; match with
// errors.Is.
var (
	// ErrEmptyToken reports an empty token, such as a trailing "+".
	ErrEmptyToken = errors.New("empty token in hotkey string")

	// ErrUnexpectedFormat reports a token after the key: either two keys
	// were given or a modifier was listed after the key. The key must be
	// the last token.
	ErrUnexpectedFormat = errors.New("the key must be the last token in the hotkey string")

	// ErrUnrecognizedKey reports a token that resolves to no known key.
	ErrUnrecognizedKey = errors.New("unrecognized key token")
)

// modifiersByToken maps uppercase modifier keywords to their bit.
// COMMANDORCONTROL and friends are absent: they are platform-resolved in
// parse, not a fixed bit.
var modifiersByToken = map[string]Modifiers{
	"OPTION":  ModAlt,
	"ALT":     ModAlt,
	"CONTROL": ModControl,
	"CTRL":    ModControl,
	"COMMAND": ModMeta,
	"CMD":     ModMeta,
	"SUPER":   ModMeta,
	"SHIFT":   ModShift,
}

// Parse parses a shortcut string into a HotKey with a fresh id from the
// package counter. See ParseWith for the grammar.
func Parse(s string) (HotKey, error) {
	return ParseWith(&defaultCounter, s)
}

// ParseWith parses a shortcut string, drawing the id from c.
//
// Tokens are separated by "+" and matched case-insensitively. Every token
// except the last must be a modifier keyword (Option/Alt, Control/Ctrl,
// Command/Cmd/Super, Shift, or the CmdOrCtrl alias family); the last token
// must resolve to a key. A single-token string is a bare key with no
// modifiers. CmdOrCtrl resolves to Meta on macOS and Control everywhere
// else, decided here at parse time.
func ParseWith(c *Counter, s string) (HotKey, error) {
	tokens := strings.Split(s, "+")

	// A single token is a bare key; the modifier keywords are not
	// consulted at all.
	if len(tokens) == 1 {
		key, err := parseKey(tokens[0])
		if err != nil {
			return HotKey{}, err
		}
		return c.New(0, key), nil
	}

	var mods Modifiers
	key := KeyNone
	for _, raw := range tokens {
		token := strings.TrimSpace(raw)
		if token == "" {
			return HotKey{}, fmt.Errorf("%w: %q", ErrEmptyToken, s)
		}
		if key != KeyNone {
			// A key was already consumed, so this is either a second key
			// ("Ctrl+C+A") or a modifier listed after the key ("Ctrl+C+Shift").
			return HotKey{}, fmt.Errorf("%w: %q", ErrUnexpectedFormat, s)
		}

		upper := strings.ToUpper(token)
		if m, ok := modifiersByToken[upper]; ok {
			mods |= m
			continue
		}
		switch upper {
		case "COMMANDORCONTROL", "COMMANDORCTRL", "CMDORCONTROL", "CMDORCTRL":
			if runtime.GOOS == "darwin" {
				mods |= ModMeta
			} else {
				mods |= ModControl
			}
			continue
		}

		k, err := parseKey(token)
		if err != nil {
			return HotKey{}, err
		}
		key = k
	}

	if key == KeyNone {
		// Only modifiers were given, e.g. "Ctrl+Shift".
		return HotKey{}, fmt.Errorf("%w: %q", ErrUnexpectedFormat, s)
	}
	return c.New(mods, key), nil
}

func parseKey(token string) (Key, error) {
	if k, ok := keysByToken[strings.ToUpper(strings.TrimSpace(token))]; ok {
		return k, nil
	}
	return KeyNone, fmt.Errorf("%w: %q", ErrUnrecognizedKey, token)
}
