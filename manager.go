package globalhotkey

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tauri-apps/global-hotkey/hotkey"
)

// backend is the contract every platform implementation satisfies.
// Construction happens in newBackend (one per build tag) and must fail
// atomically: on error no goroutine keeps running and no native resource
// stays acquired.
type backend interface {
	// register grabs the hotkey's native combination. Registering a
	// combination that is already grabbed returns ErrAlreadyRegistered;
	// a key without a native translation returns ErrFailedToRegister.
	register(hk hotkey.HotKey) error

	// unregister releases the grab. Unregistering a hotkey that was never
	// registered is a no-op, not an error.
	unregister(hk hotkey.HotKey) error

	// close releases everything still registered, then the native
	// resources, swallowing per-hotkey failures.
	close() error
}

type config struct {
	bus          *EventBus
	log          zerolog.Logger
	pollInterval time.Duration
}

// Option configures a Manager.
type Option func(*config)

// WithEventBus routes this manager's events to bus instead of DefaultBus.
func WithEventBus(bus *EventBus) Option {
	return func(c *config) { c.bus = bus }
}

// WithLogger enables diagnostic logging. Errors are always returned to
// the caller, never logged in their place; the logger only sees worker
// lifecycle and grab traces.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithPollInterval sets the polling-backend loop interval. Hotkey
// delivery latency is bounded by this interval. Default 50ms.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// Manager owns the platform registration state for one set of hotkeys.
// All methods are safe for concurrent use. Register and Unregister block
// the calling goroutine until the platform worker replies.
type Manager struct {
	b   backend
	bus *EventBus
}

// NewManager acquires the platform resources and returns a ready manager.
func NewManager(opts ...Option) (*Manager, error) {
	cfg := config{
		bus:          DefaultBus,
		log:          zerolog.Nop(),
		pollInterval: 50 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	b, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}
	return &Manager{b: b, bus: cfg.bus}, nil
}

// Receiver returns a non-blocking handle on this manager's event bus.
func (m *Manager) Receiver() *Receiver {
	return m.bus.Receiver()
}

// Register makes hk fire globally. Registering the same native
// combination twice on one manager returns ErrAlreadyRegistered.
func (m *Manager) Register(hk hotkey.HotKey) error {
	return m.b.register(hk)
}

// Unregister stops hk from firing. Unregistering a hotkey that was never
// registered succeeds.
func (m *Manager) Unregister(hk hotkey.HotKey) error {
	return m.b.unregister(hk)
}

// RegisterAll registers each hotkey in order, stopping at the first
// failure. Hotkeys registered before the failure stay registered.
func (m *Manager) RegisterAll(hks []hotkey.HotKey) error {
	for _, hk := range hks {
		if err := m.Register(hk); err != nil {
			return err
		}
	}
	return nil
}

// UnregisterAll unregisters each hotkey in order, stopping at the first
// failure.
func (m *Manager) UnregisterAll(hks []hotkey.HotKey) error {
	for _, hk := range hks {
		if err := m.Unregister(hk); err != nil {
			return err
		}
	}
	return nil
}

// Close unregisters everything still registered and releases the native
// resources, waiting for the platform worker to finish. Per-hotkey
// teardown failures are swallowed.
func (m *Manager) Close() error {
	return m.b.close()
}
