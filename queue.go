package eventkit

// QueueEvent appends ev to the tail of the deferred event queue and returns
// without delivering anything. The queue owns the event until a drain
// consumes it.
func (d *Dispatcher) QueueEvent(ev Event) error {
	if ev == nil {
		return ErrNilEvent
	}
	d.queue = append(d.queue, ev)
	d.stats.EventsQueued++
	d.log.Debug().Str("event", KeyOf(ev).String()).Int("depth", len(d.queue)).Msg("event queued")
	return nil
}

// ProcessQueue dispatches, in FIFO order, the events that were queued when
// the call was made. Each event is removed from the queue as its dispatch
// begins and the queue drops its reference to it. Events enqueued by
// listeners during the drain are not part of this pass; they stay queued for
// the next call.
//
// A listener error aborts the drain and is returned: the failing event has
// already been consumed, events behind it remain queued. Draining an empty
// queue is a silent no-op.
func (d *Dispatcher) ProcessQueue() error {
	pending := len(d.queue)
	if pending == 0 {
		return nil
	}
	d.log.Debug().Int("pending", pending).Msg("draining queue")

	// Bound the drain by the depth observed at entry. The length check also
	// keeps a re-entrant ProcessQueue from a listener safe: whatever it
	// consumed is simply gone from this pass.
	for ; pending > 0 && len(d.queue) > 0; pending-- {
		ev := d.queue[0]
		d.queue[0] = nil
		d.queue = d.queue[1:]
		d.stats.EventsDrained++
		if err := d.Dispatch(ev); err != nil {
			return err
		}
	}
	return nil
}

// QueueLen returns the number of events currently queued.
func (d *Dispatcher) QueueLen() int {
	return len(d.queue)
}
