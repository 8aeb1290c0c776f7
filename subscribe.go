package eventkit

// Methods cannot introduce type parameters, so the typed subscribe family is
// a set of free functions taking the dispatcher as their first argument.

// SubscribeTo registers the handle's listener for events of type E with
// persistent mode: it fires on every matching dispatch until explicitly
// unsubscribed or until the listener expires. The dispatcher keeps only a
// weak reference; the handle's owners control the listener's lifetime.
//
// Re-subscribing the same handle to the same event type replaces the
// existing entry, including its mode. Subscribing is idempotent from the
// caller's point of view: the registry holds at most one entry per listener
// identity per event type.
func SubscribeTo[E Event, L EventListener[E]](d *Dispatcher, h *Handle[L]) error {
	return subscribeListener[E](d, h, ModePersistent)
}

// SubscribeOnceTo registers the handle's listener for events of type E with
// one-shot mode: the subscription fires at most once and is then removed,
// whether or not the listener was still alive for the attempt.
func SubscribeOnceTo[E Event, L EventListener[E]](d *Dispatcher, h *Handle[L]) error {
	return subscribeListener[E](d, h, ModeOneShot)
}

// SubscribeFuncTo registers fn as the handler for events of type E, bound to
// the handle's listener. On a match fn receives the weak-resolved listener
// and the event, so a listener type with one named method per event type
// subscribes each with a method expression:
//
//	eventkit.SubscribeFuncTo(d, h, (*watcher).OnSaved)
//	eventkit.SubscribeFuncTo(d, h, (*watcher).OnClosed)
//
// The subscription's identity is the handle's, so it replaces and is removed
// exactly like one made with SubscribeTo.
func SubscribeFuncTo[E Event, L any](d *Dispatcher, h *Handle[L], fn func(L, E) error) error {
	return subscribeFunc(d, h, fn, ModePersistent)
}

// SubscribeOnceFuncTo is SubscribeFuncTo with one-shot mode.
func SubscribeOnceFuncTo[E Event, L any](d *Dispatcher, h *Handle[L], fn func(L, E) error) error {
	return subscribeFunc(d, h, fn, ModeOneShot)
}

// SubscribeToKeys registers a type-switching listener for each of the given
// event type keys. The listener's OnEvent receives the Event interface and
// type-switches on the concrete type:
//
//	eventkit.SubscribeToKeys(d, h,
//	    eventkit.KeyFor[FileSaved](), eventkit.KeyFor[FileClosed]())
//
// Each key gets an independent subscription with its own persistence state.
// Registration is per key with no atomicity across keys: on an invalid key
// the error is returned and keys registered before it stay registered.
func SubscribeToKeys[L EventListener[Event]](d *Dispatcher, h *Handle[L], keys ...Key) error {
	return subscribeKeys(d, h, ModePersistent, keys)
}

// SubscribeOnceToKeys is SubscribeToKeys with one-shot mode per key: the
// subscription for each key fires at most once, independently of the others.
func SubscribeOnceToKeys[L EventListener[Event]](d *Dispatcher, h *Handle[L], keys ...Key) error {
	return subscribeKeys(d, h, ModeOneShot, keys)
}

// UnsubscribeFrom removes the handle's subscription for event type E, if
// present. It is a silent no-op when the handle is nil or was never
// subscribed to E.
func UnsubscribeFrom[E Event, L any](d *Dispatcher, h *Handle[L]) {
	if h == nil {
		return
	}
	d.UnsubscribeID(KeyFor[E](), h.ID())
}

// UnsubscribeFromKeys removes the handle's subscriptions for each of the
// given event type keys, independently per key. Absent entries are silently
// skipped.
func UnsubscribeFromKeys[L any](d *Dispatcher, h *Handle[L], keys ...Key) {
	if h == nil {
		return
	}
	id := h.ID()
	for _, key := range keys {
		d.UnsubscribeID(key, id)
	}
}

func subscribeListener[E Event, L EventListener[E]](d *Dispatcher, h *Handle[L], mode Mode) error {
	w, err := weakOf(h)
	if err != nil {
		return err
	}
	invoke := func(ev Event) (bool, error) {
		l, ok := w.Get()
		if !ok {
			return false, nil
		}
		// The registry routes by exact dynamic type, so the assertion
		// cannot fail.
		return true, l.OnEvent(ev.(E))
	}
	d.addSubscription(KeyFor[E](), newSubscription(w.ID(), mode, invoke))
	return nil
}

func subscribeFunc[E Event, L any](d *Dispatcher, h *Handle[L], fn func(L, E) error, mode Mode) error {
	if fn == nil {
		return ErrNilHandler
	}
	w, err := weakOf(h)
	if err != nil {
		return err
	}
	invoke := func(ev Event) (bool, error) {
		l, ok := w.Get()
		if !ok {
			return false, nil
		}
		return true, fn(l, ev.(E))
	}
	d.addSubscription(KeyFor[E](), newSubscription(w.ID(), mode, invoke))
	return nil
}

func subscribeKeys[L EventListener[Event]](d *Dispatcher, h *Handle[L], mode Mode, keys []Key) error {
	if len(keys) == 0 {
		return ErrNoEventKeys
	}
	w, err := weakOf(h)
	if err != nil {
		return err
	}
	invoke := func(ev Event) (bool, error) {
		l, ok := w.Get()
		if !ok {
			return false, nil
		}
		return true, l.OnEvent(ev)
	}
	for _, key := range keys {
		if key.IsZero() {
			return ErrInvalidKey
		}
		// One record per key so one-shot state stays independent per key.
		d.addSubscription(key, newSubscription(w.ID(), mode, invoke))
	}
	return nil
}

// weakOf validates a handle for subscription. A handle that was released, or
// whose listener has expired, can no longer vouch for the listener.
func weakOf[L any](h *Handle[L]) (Weak[L], error) {
	if h == nil {
		return Weak[L]{}, ErrNilHandle
	}
	if _, ok := h.Get(); !ok {
		return Weak[L]{}, ErrExpiredHandle
	}
	return h.Weak(), nil
}
