package eventkit

import "github.com/rs/zerolog"

// Dispatcher routes events to subscribed listeners and owns the deferred
// event queue. Subscriptions hold weak references only; expired listeners
// are pruned lazily at dispatch time.
//
// A Dispatcher is single-threaded: Dispatch and ProcessQueue run listeners
// inline on the calling goroutine, and no operation is safe for concurrent
// use from multiple goroutines without external synchronization. This is a
// deliberate design choice in favor of simplicity. Re-entrant calls from
// inside a listener are safe.
type Dispatcher struct {
	reg   *registry
	queue []Event
	log   zerolog.Logger
	stats Stats
}

// NewDispatcher creates a dispatcher. With no options it logs nothing and
// starts with an empty registry and queue.
func NewDispatcher(opts ...Option) *Dispatcher {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Dispatcher{
		reg: newRegistry(),
		log: cfg.logger,
	}
	if cfg.queueCapacity > 0 {
		d.queue = make([]Event, 0, cfg.queueCapacity)
	}
	return d
}

// Dispatch delivers ev synchronously to every live listener subscribed to
// its type. Routing always uses the event's dynamic type, so a caller
// holding only the Event interface still reaches the right subscriber set.
// Dispatching an event with no subscribers is a silent no-op.
//
// The pass iterates a snapshot of the subscription set taken at entry, so
// listeners may subscribe, unsubscribe, dispatch, or queue re-entrantly;
// subscriptions added during the pass first see the next dispatch. Expired
// listeners and spent one-shot subscriptions are removed in one sweep after
// the pass. A one-shot subscription is spent the moment its delivery begins,
// so re-entrant dispatches of its event type cannot fire it a second time.
//
// A listener error aborts the pass: remaining listeners are not invoked and
// the error is returned wrapped in *ListenerError. Delivery order among the
// listeners of one event is unspecified; callers must not rely on it.
func (d *Dispatcher) Dispatch(ev Event) error {
	if ev == nil {
		return ErrNilEvent
	}
	key := KeyOf(ev)
	d.stats.EventsDispatched++

	snap := d.reg.snapshot(key)
	if snap == nil {
		return nil
	}
	d.log.Trace().Str("event", key.String()).Int("listeners", len(snap)).Msg("dispatch")

	var marked []*subscription
	var failed error
	expired := 0
	for _, sub := range snap {
		if sub.spent {
			continue
		}
		if sub.mode == ModeOneShot {
			// Spend the record before the listener runs so a re-entrant
			// dispatch of the same type cannot fire it again.
			sub.spent = true
		}
		delivered, err := sub.invoke(ev)
		switch {
		case !delivered:
			sub.spent = true
			marked = append(marked, sub)
			expired++
			d.stats.ListenersExpired++
		case sub.mode == ModeOneShot:
			marked = append(marked, sub)
			d.stats.ListenersNotified++
		default:
			d.stats.ListenersNotified++
		}
		if err != nil {
			d.stats.ListenerErrors++
			failed = &ListenerError{Key: key, Listener: sub.id, Err: err}
			break
		}
	}

	d.reg.discard(key, marked)
	if expired > 0 {
		d.log.Debug().Str("event", key.String()).Int("expired", expired).Msg("pruned expired listeners")
	}
	return failed
}

// addSubscription records sub under key, replacing any existing entry for
// the same listener identity. The typed subscribe functions funnel through
// here.
func (d *Dispatcher) addSubscription(key Key, sub *subscription) {
	d.reg.add(key, sub)
	d.log.Debug().Str("event", key.String()).Str("mode", sub.mode.String()).Msg("subscribe")
}

// UnsubscribeID removes the subscription for a listener identity under one
// event type key. It serves call sites that hold only a raw identity, such
// as cleanup code running without the original handle, and locates the entry
// by identity comparison alone. Silent no-op when no such entry exists.
func (d *Dispatcher) UnsubscribeID(key Key, id ListenerID) {
	if d.reg.remove(key, id) {
		d.log.Debug().Str("event", key.String()).Msg("unsubscribe")
	}
}

// UnsubscribeAll removes every subscription held by a listener identity
// across all event types. Silent no-op when there are none.
func (d *Dispatcher) UnsubscribeAll(id ListenerID) {
	if n := d.reg.removeAll(id); n > 0 {
		d.log.Debug().Int("removed", n).Msg("unsubscribe all")
	}
}

// Clear drops every subscription. Queued events are unaffected.
func (d *Dispatcher) Clear() {
	d.reg.clear()
	d.log.Debug().Msg("registry cleared")
}

// Count returns the total number of subscriptions across all event types.
func (d *Dispatcher) Count() int {
	return d.reg.count()
}

// CountKey returns the number of subscriptions for one event type key.
func (d *Dispatcher) CountKey(key Key) int {
	return d.reg.countKey(key)
}

// Stats contains dispatcher counters, accumulated over the dispatcher's
// lifetime.
type Stats struct {
	// EventsDispatched is the number of Dispatch calls, including queued
	// events delivered by ProcessQueue.
	EventsDispatched uint64

	// EventsQueued is the number of events accepted by QueueEvent.
	EventsQueued uint64

	// EventsDrained is the number of queued events consumed by ProcessQueue.
	EventsDrained uint64

	// ListenersNotified is the number of listener invocations.
	ListenersNotified uint64

	// ListenerErrors is the number of invocations that returned an error.
	ListenerErrors uint64

	// ListenersExpired is the number of subscriptions pruned because their
	// listener had expired.
	ListenersExpired uint64

	// ActiveSubscriptions is the current registry size.
	ActiveSubscriptions int

	// QueueDepth is the current number of queued events.
	QueueDepth int
}

// Stats returns a snapshot of the dispatcher's counters.
func (d *Dispatcher) Stats() Stats {
	s := d.stats
	s.ActiveSubscriptions = d.reg.count()
	s.QueueDepth = len(d.queue)
	return s
}
