package globalhotkey

import "errors"

// Sentinel errors returned by Manager operations. Returned values wrap
// these with the hotkey concerned; match with errors.Is.
var (
	// ErrAlreadyRegistered reports that the native key combination is
	// already grabbed, either by this manager or by another client. The
	// manager stays usable; pick another combination.
	ErrAlreadyRegistered = errors.New("hotkey is already registered")

	// ErrFailedToRegister reports that the key has no native scancode on
	// this platform. Permanent for that key.
	ErrFailedToRegister = errors.New("failed to register hotkey")

	// ErrFailedToUnregister reports a native unregister failure. The
	// manager state is not corrupted; the grab may simply linger.
	ErrFailedToUnregister = errors.New("failed to unregister hotkey")

	// ErrClosed reports an operation on a closed manager.
	ErrClosed = errors.New("hotkey manager is closed")
)
