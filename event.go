package globalhotkey

import "sync"

// EventState says whether the hotkey was pressed or released.
type EventState uint8

const (
	StatePressed EventState = iota
	StateReleased
)

func (s EventState) String() string {
	switch s {
	case StatePressed:
		return "Pressed"
	case StateReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// Event is delivered when a registered hotkey fires. ID is the id of the
// HotKey that was registered; the event carries no other identity.
type Event struct {
	ID    uint32
	State EventState
}

// Handler receives events synchronously, on whichever goroutine observed
// the native key event.
type Handler func(Event)

// eventChanCap bounds the event channel. Delivery is best-effort: if the
// consumer falls this far behind, further events are dropped rather than
// blocking the backend.
const eventChanCap = 256

// EventBus carries hotkey events from backends to the consumer. It is
// either drained through Receiver or, exclusively, serviced by a single
// handler installed with SetHandler. The channel is created lazily on
// first use.
type EventBus struct {
	mu      sync.Mutex
	ch      chan Event
	handler Handler
}

// NewEventBus returns an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// SetHandler installs h as the event handler. The first call wins: once a
// handler is installed it can never be replaced or removed, and events
// stop flowing to the channel. A nil h is ignored.
func (b *EventBus) SetHandler(h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handler == nil {
		b.handler = h
	}
}

// Receiver returns a handle for polling the bus without blocking.
func (b *EventBus) Receiver() *Receiver {
	return &Receiver{ch: b.channel()}
}

func (b *EventBus) channel() chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ch == nil {
		b.ch = make(chan Event, eventChanCap)
	}
	return b.ch
}

// send delivers an event: synchronously to the handler when one is
// installed, otherwise to the channel. A full channel drops the event;
// notification is best-effort, never guaranteed.
func (b *EventBus) send(ev Event) {
	b.mu.Lock()
	h := b.handler
	b.mu.Unlock()
	if h != nil {
		h(ev)
		return
	}
	select {
	case b.channel() <- ev:
	default:
	}
}

// Receiver polls an EventBus. TryRecv never blocks.
type Receiver struct {
	ch <-chan Event
}

// TryRecv returns the next pending event, or ok=false when none is
// queued. It never waits.
func (r *Receiver) TryRecv() (Event, bool) {
	select {
	case ev := <-r.ch:
		return ev, true
	default:
		return Event{}, false
	}
}

// DefaultBus serves managers that were not given their own bus.
var DefaultBus = NewEventBus()

// DefaultReceiver returns a handle polling the default bus.
func DefaultReceiver() *Receiver {
	return DefaultBus.Receiver()
}

// SetHandler installs a handler on the default bus. First write wins.
func SetHandler(h Handler) {
	DefaultBus.SetHandler(h)
}
