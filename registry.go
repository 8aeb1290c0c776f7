package eventkit

// registry maps event type keys to the subscriptions interested in them.
// For any key there is at most one entry per listener identity; adding an
// entry for an identity already present replaces it. Like the dispatcher
// that owns it, the registry is not safe for concurrent use.
type registry struct {
	subs map[Key]map[ListenerID]*subscription
}

func newRegistry() *registry {
	return &registry{subs: make(map[Key]map[ListenerID]*subscription)}
}

// add inserts sub under key, replacing any existing entry for the same
// listener identity.
func (r *registry) add(key Key, sub *subscription) {
	set := r.subs[key]
	if set == nil {
		set = make(map[ListenerID]*subscription)
		r.subs[key] = set
	}
	set[sub.id] = sub
}

// remove deletes the entry for id under key, if present. It reports whether
// an entry was removed.
func (r *registry) remove(key Key, id ListenerID) bool {
	set := r.subs[key]
	if set == nil {
		return false
	}
	if _, ok := set[id]; !ok {
		return false
	}
	delete(set, id)
	if len(set) == 0 {
		delete(r.subs, key)
	}
	return true
}

// removeAll deletes the identity's entries under every key and returns how
// many entries were removed.
func (r *registry) removeAll(id ListenerID) int {
	removed := 0
	for key, set := range r.subs {
		if _, ok := set[id]; ok {
			delete(set, id)
			removed++
			if len(set) == 0 {
				delete(r.subs, key)
			}
		}
	}
	return removed
}

// snapshot returns a copy of the subscription set for key so a dispatch pass
// can iterate while listeners mutate the live registry. Returns nil when the
// key has no subscriptions. Order is map order: deliberately unspecified.
func (r *registry) snapshot(key Key) []*subscription {
	set := r.subs[key]
	if len(set) == 0 {
		return nil
	}
	out := make([]*subscription, 0, len(set))
	for _, sub := range set {
		out = append(out, sub)
	}
	return out
}

// discard removes the marked records under key. A record is removed only if
// it is still the live entry for its identity, so an entry re-registered
// during the pass survives.
func (r *registry) discard(key Key, marked []*subscription) {
	if len(marked) == 0 {
		return
	}
	set := r.subs[key]
	if set == nil {
		return
	}
	for _, sub := range marked {
		if cur, ok := set[sub.id]; ok && cur == sub {
			delete(set, sub.id)
		}
	}
	if len(set) == 0 {
		delete(r.subs, key)
	}
}

// count returns the total number of subscriptions across all keys.
func (r *registry) count() int {
	n := 0
	for _, set := range r.subs {
		n += len(set)
	}
	return n
}

// countKey returns the number of subscriptions registered for one key.
func (r *registry) countKey(key Key) int {
	return len(r.subs[key])
}

// clear removes every subscription.
func (r *registry) clear() {
	r.subs = make(map[Key]map[ListenerID]*subscription)
}
