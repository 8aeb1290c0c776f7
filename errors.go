package eventkit

import "errors"

// Sentinel errors for the dispatcher.
var (
	// ErrNilEvent is returned when a nil event is dispatched or queued.
	ErrNilEvent = errors.New("event cannot be nil")

	// ErrNilHandle is returned when subscribing with a nil handle.
	ErrNilHandle = errors.New("listener handle cannot be nil")

	// ErrExpiredHandle is returned when subscribing with a handle that has
	// been released or whose listener has already expired.
	ErrExpiredHandle = errors.New("listener handle has expired")

	// ErrNilHandler is returned when a nil handler function is provided.
	ErrNilHandler = errors.New("handler function cannot be nil")

	// ErrNoEventKeys is returned when a key-based subscribe is given no
	// keys. Key-based unsubscribe treats an empty key list as a no-op.
	ErrNoEventKeys = errors.New("at least one event key is required")

	// ErrInvalidKey is returned when a zero Key is used to subscribe.
	ErrInvalidKey = errors.New("invalid event key")
)

// ListenerError wraps an error returned by a listener's OnEvent, carrying
// the event type and listener identity it came from. Dispatch and
// ProcessQueue return it when a listener fails.
type ListenerError struct {
	// Key is the event type being delivered when the listener failed.
	Key Key

	// Listener is the identity of the failing listener.
	Listener ListenerID

	// Err is the error the listener returned.
	Err error
}

// Error implements the error interface.
func (e *ListenerError) Error() string {
	return "listener error for event " + e.Key.String() + ": " + e.Err.Error()
}

// Unwrap returns the listener's error.
func (e *ListenerError) Unwrap() error {
	return e.Err
}
