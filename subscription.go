package eventkit

// Mode selects whether a subscription survives its first delivery attempt.
type Mode int

const (
	// ModePersistent fires on every matching dispatch until explicitly
	// unsubscribed or until the listener expires.
	ModePersistent Mode = iota

	// ModeOneShot fires at most once and is then removed, whether or not the
	// listener was still alive for the attempt.
	ModeOneShot
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModePersistent:
		return "persistent"
	case ModeOneShot:
		return "one-shot"
	default:
		return "unknown"
	}
}

// subscription is one registry entry: the association between a listener
// identity and an event type key, with a persistence mode.
//
// invoke resolves the weak reference and calls the listener. It reports
// delivered false when the listener had expired, in which case it was not
// called. Mode semantics sit in the dispatcher: a one-shot entry is removed
// after any invocation attempt, delivered or not.
//
// spent flags a record whose removal is pending. It is set during a dispatch
// pass, before the post-pass sweep takes the record out of the registry, so
// nested passes started by a re-entrant dispatch skip the record instead of
// firing it again.
type subscription struct {
	id     ListenerID
	mode   Mode
	invoke func(ev Event) (delivered bool, err error)
	spent  bool
}

func newSubscription(id ListenerID, mode Mode, invoke func(Event) (bool, error)) *subscription {
	return &subscription{id: id, mode: mode, invoke: invoke}
}
