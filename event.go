package eventkit

import "reflect"

// Event is the marker interface for dispatchable values.
// A type opts in by declaring the no-op marker method:
//
//	type CursorMoved struct{ Line, Col int }
//
//	func (CursorMoved) ImplementsEvent() {}
//
// Events are immutable values. For synchronous dispatch an event lives only
// for the duration of the Dispatch call; a queued event is held by the
// dispatcher's queue until it is drained.
type Event interface {
	ImplementsEvent()
}

// Key is the opaque identity of a concrete event type. Keys are comparable,
// unique per type within the process, and obtained in O(1). They carry no
// ordering and are used only for routing.
//
// The pointer form of an event type has a different key than its value form:
// KeyOf(CursorMoved{}) != KeyOf(&CursorMoved{}). Subscribe and dispatch must
// agree on which form an event type uses; by convention events are values.
type Key struct {
	rtype reflect.Type
}

// KeyOf returns the key for an event value's dynamic type. A nil event yields
// the zero Key.
func KeyOf(ev Event) Key {
	if ev == nil {
		return Key{}
	}
	return Key{rtype: reflect.TypeOf(ev)}
}

// KeyFor returns the key for the event type E. It agrees with KeyOf for every
// value whose dynamic type is E.
func KeyFor[E Event]() Key {
	return Key{rtype: reflect.TypeOf((*E)(nil)).Elem()}
}

// IsZero reports whether k is the zero Key, which identifies no event type.
func (k Key) IsZero() bool {
	return k.rtype == nil
}

// String returns the event type's name, or "<none>" for the zero Key.
func (k Key) String() string {
	if k.rtype == nil {
		return "<none>"
	}
	return k.rtype.String()
}
