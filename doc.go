// Package eventkit provides a small typed publish/subscribe dispatcher for
// in-process events.
//
// Callers define event types, register listeners against those types, and
// dispatch event values either immediately or through a deferred FIFO queue.
// Routing is by concrete event type: each event type has a unique Key, and a
// dispatched event reaches exactly the listeners subscribed to its type.
//
// # Architecture
//
// The package is built from three small pieces:
//
//	┌─────────────────────────────────────────────┐
//	│                 Dispatcher                  │
//	│  - registry: Key → ListenerID → callback    │
//	│  - FIFO queue of pending events             │
//	└─────────────────────────────────────────────┘
//	           │                      │
//	           ▼                      ▼
//	┌────────────────────┐  ┌────────────────────┐
//	│  Event / Key       │  │  Handle / Weak     │
//	│  - marker + type   │  │  - shared owner    │
//	│    identity        │  │  - weak observer   │
//	└────────────────────┘  └────────────────────┘
//
// # Events
//
// An event is any type carrying the Event marker method:
//
//	type FileSaved struct {
//	    Path string
//	}
//
//	func (FileSaved) ImplementsEvent() {}
//
// Events are immutable values. The pointer form *FileSaved is a distinct
// event type from FileSaved; by convention events are dispatched as values.
//
// # Listeners and ownership
//
// A listener implements EventListener[E] for an event type E. The dispatcher
// never owns listeners: subscriptions hold weak references, and the listener's
// lifetime is governed entirely by its strong Handle(s). When every strong
// handle has been released, the listener expires and the dispatcher silently
// prunes it at the next dispatch of a subscribed type.
//
//	type saveLogger struct{ count int }
//
//	func (s *saveLogger) OnEvent(ev FileSaved) error {
//	    s.count++
//	    return nil
//	}
//
//	d := eventkit.NewDispatcher()
//	h := eventkit.NewHandle(&saveLogger{})
//	eventkit.SubscribeTo[FileSaved](d, h)
//
//	d.Dispatch(FileSaved{Path: "a.txt"}) // delivered
//	h.Release()
//	d.Dispatch(FileSaved{Path: "b.txt"}) // pruned, not delivered
//
// # Multi-type listeners
//
// Go has no method overloading, so a listener handling several event types
// picks one of two shapes. Either it declares one named method per type and
// binds each with a method expression:
//
//	func (w *watcher) OnSaved(ev FileSaved) error  { ... }
//	func (w *watcher) OnClosed(ev FileClosed) error { ... }
//
//	eventkit.SubscribeFuncTo(d, h, (*watcher).OnSaved)
//	eventkit.SubscribeFuncTo(d, h, (*watcher).OnClosed)
//
// or it implements EventListener[Event] once and switches on the concrete
// type, registering the kinds it wants by key:
//
//	func (w *watcher) OnEvent(ev eventkit.Event) error {
//	    switch ev := ev.(type) {
//	    case FileSaved:  ...
//	    case FileClosed: ...
//	    }
//	    return nil
//	}
//
//	eventkit.SubscribeToKeys(d, h,
//	    eventkit.KeyFor[FileSaved](), eventkit.KeyFor[FileClosed]())
//
// # One-shot subscriptions
//
// SubscribeOnceTo and its variants register a subscription that fires at most
// once and is then removed, whether or not the listener was still alive for
// the attempt.
//
// # Queued delivery
//
// QueueEvent stores an event without delivering it. ProcessQueue drains, in
// FIFO order, the events present when it was called; events enqueued by
// listeners during the drain stay queued for the next call.
//
// # Error policy
//
// The dispatcher favors silent degradation. Dispatching with no subscribers,
// unsubscribing an absent listener, and draining an empty queue are all
// no-ops. A listener returning an error is the one loud path: the error stops
// the current dispatch pass (and any surrounding drain) and is returned to
// the caller wrapped in *ListenerError. The dispatcher does not recover
// panics; a panicking listener unwinds through the Dispatch caller.
//
// # Concurrency
//
// The dispatcher is single-threaded and synchronous. Dispatch and
// ProcessQueue run to completion on the calling goroutine, and listeners run
// inline on that same call stack. A listener may subscribe, unsubscribe,
// dispatch, or queue events re-entrantly: passes iterate a snapshot and apply
// removals after the pass, so the containers are never mutated mid-iteration.
// The Dispatcher is NOT safe for concurrent use from multiple goroutines
// without external synchronization. That is a deliberate design choice in
// favor of simplicity, not an oversight.
//
// # Logging
//
// The dispatcher is silent by default. WithLogger installs a zerolog.Logger
// that records subscribe, unsubscribe, queue, and prune activity at debug
// level and per-dispatch activity at trace level.
package eventkit
