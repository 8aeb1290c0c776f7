package eventkit

// EventListener is the capability a subscriber implements for one event type.
// OnEvent is invoked by the dispatcher once per matching dispatched event.
//
// An error returned from OnEvent is not handled by the dispatcher: it aborts
// the remainder of the dispatch pass and propagates to the Dispatch caller.
// Panics are likewise not recovered.
//
// A listener handling several event types either declares one named method
// per type (bound with SubscribeFuncTo) or implements EventListener[Event]
// and type-switches inside OnEvent (registered with SubscribeToKeys). See the
// package documentation for both shapes.
type EventListener[E Event] interface {
	OnEvent(ev E) error
}

// ListenerFunc adapts a plain function to EventListener[E].
//
//	h := eventkit.NewHandle(eventkit.ListenerFunc[CursorMoved](func(ev CursorMoved) error {
//	    fmt.Println(ev.Line, ev.Col)
//	    return nil
//	}))
//	eventkit.SubscribeTo[CursorMoved](d, h)
//
// The function's lifetime follows the handle like any other listener.
type ListenerFunc[E Event] func(ev E) error

// OnEvent implements EventListener[E].
func (f ListenerFunc[E]) OnEvent(ev E) error {
	return f(ev)
}
