package eventkit

// liveness is the shared core of a handle cell. Its address doubles as the
// listener's identity, so it is allocated once per NewHandle and never moves.
type liveness struct {
	refs int
	dead bool
}

// cell carries the listener value together with its liveness state. All
// strong handles cloned from one NewHandle call share a single cell.
type cell[L any] struct {
	live  liveness
	value L
}

// ListenerID is the opaque identity of a listener, used to register and
// remove subscriptions. IDs compare equal exactly when they originate from
// the same NewHandle call (directly or via Clone); the listener's content
// plays no part. The zero ListenerID identifies no listener.
type ListenerID struct {
	l *liveness
}

// IsZero reports whether id identifies no listener.
func (id ListenerID) IsZero() bool {
	return id.l == nil
}

// Handle is a strong, shared-ownership reference to a listener. The listener
// stays alive while at least one strong handle has not been released; the
// dispatcher itself holds only weak references and never extends a
// listener's lifetime.
//
// Clone creates an additional strong owner. Release drops this handle's
// ownership; releasing the last strong handle expires the listener, and
// every Weak observer sees the expiry. Like the rest of the package, handles
// are not safe for concurrent use without external synchronization.
type Handle[L any] struct {
	c        *cell[L]
	released bool
}

// NewHandle creates the first strong handle for a listener, with an ownership
// count of one. It returns nil when listener is a nil interface value;
// subscribing a nil handle fails with ErrNilHandle.
func NewHandle[L any](listener L) *Handle[L] {
	if any(listener) == nil {
		return nil
	}
	return &Handle[L]{c: &cell[L]{live: liveness{refs: 1}, value: listener}}
}

// Clone returns a new strong handle sharing ownership of the same listener.
// Cloning a nil or released handle returns nil.
func (h *Handle[L]) Clone() *Handle[L] {
	if h == nil || h.released || h.c.live.dead {
		return nil
	}
	h.c.live.refs++
	return &Handle[L]{c: h.c}
}

// Release drops this handle's ownership. It is a no-op on a nil handle or on
// a handle already released. When the last strong handle is released the
// listener value is dropped and all weak references expire.
func (h *Handle[L]) Release() {
	if h == nil || h.released {
		return
	}
	h.released = true
	h.c.live.refs--
	if h.c.live.refs <= 0 {
		h.c.live.dead = true
		var zero L
		h.c.value = zero
	}
}

// Get returns the listener and true while this handle still owns it. After
// Release (of this handle) it returns the zero value and false, regardless
// of other strong handles.
func (h *Handle[L]) Get() (L, bool) {
	if h == nil || h.released || h.c.live.dead {
		var zero L
		return zero, false
	}
	return h.c.value, true
}

// ID returns the listener's identity. The identity stays valid after Release
// so call sites holding only the handle can still unsubscribe by identity.
func (h *Handle[L]) ID() ListenerID {
	if h == nil {
		return ListenerID{}
	}
	return ListenerID{l: &h.c.live}
}

// Weak returns a non-owning reference to the listener. A nil handle yields
// an already-expired Weak.
func (h *Handle[L]) Weak() Weak[L] {
	if h == nil {
		return Weak[L]{}
	}
	return Weak[L]{c: h.c}
}

// Weak is a non-owning reference to a listener. It observes liveness without
// extending the listener's lifetime. The zero Weak is expired.
type Weak[L any] struct {
	c *cell[L]
}

// Get returns the listener and true while any strong handle keeps it alive,
// or the zero value and false once the listener has expired.
func (w Weak[L]) Get() (L, bool) {
	if w.c == nil || w.c.live.dead {
		var zero L
		return zero, false
	}
	return w.c.value, true
}

// Alive reports liveness without yielding the listener.
func (w Weak[L]) Alive() bool {
	return w.c != nil && !w.c.live.dead
}

// ID returns the identity of the referenced listener, or the zero ListenerID
// for the zero Weak. Identity remains valid after expiry.
func (w Weak[L]) ID() ListenerID {
	if w.c == nil {
		return ListenerID{}
	}
	return ListenerID{l: &w.c.live}
}
