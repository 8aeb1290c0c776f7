package eventkit

import (
	"errors"
	"testing"
)

func TestQueue_FIFOOrder(t *testing.T) {
	d := NewDispatcher()
	var seq []string
	hs := NewHandle(ListenerFunc[fileSaved](func(ev fileSaved) error {
		seq = append(seq, "saved:"+ev.path)
		return nil
	}))
	hc := NewHandle(ListenerFunc[fileClosed](func(ev fileClosed) error {
		seq = append(seq, "closed:"+ev.path)
		return nil
	}))
	SubscribeTo[fileSaved](d, hs)
	SubscribeTo[fileClosed](d, hc)

	d.QueueEvent(fileSaved{path: "1"})
	d.QueueEvent(fileClosed{path: "2"})
	d.QueueEvent(fileSaved{path: "3"})

	if err := d.ProcessQueue(); err != nil {
		t.Fatalf("ProcessQueue() failed: %v", err)
	}

	want := []string{"saved:1", "closed:2", "saved:3"}
	if len(seq) != len(want) {
		t.Fatalf("expected %d deliveries, got %d: %v", len(want), len(seq), seq)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], seq[i])
		}
	}
}

func TestQueue_SingleDrainProcessesBatch(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	h := NewHandle(r)
	SubscribeTo[fileSaved](d, h)

	d.QueueEvent(fileSaved{})
	d.QueueEvent(fileSaved{})
	d.QueueEvent(fileSaved{})

	if d.QueueLen() != 3 {
		t.Fatalf("expected 3 queued events, got %d", d.QueueLen())
	}
	if r.calls != 0 {
		t.Fatalf("expected no delivery before drain, got %d calls", r.calls)
	}

	if err := d.ProcessQueue(); err != nil {
		t.Fatalf("ProcessQueue() failed: %v", err)
	}

	if r.calls != 3 {
		t.Errorf("expected 3 calls from one drain, got %d", r.calls)
	}
	if d.QueueLen() != 0 {
		t.Errorf("expected empty queue after drain, got %d", d.QueueLen())
	}
}

func TestQueue_NoSubscribers(t *testing.T) {
	d := NewDispatcher()

	if err := d.QueueEvent(fileSaved{}); err != nil {
		t.Fatalf("QueueEvent() failed: %v", err)
	}
	if err := d.ProcessQueue(); err != nil {
		t.Errorf("expected silent drain with no subscribers, got %v", err)
	}
	if d.QueueLen() != 0 {
		t.Errorf("expected empty queue, got %d", d.QueueLen())
	}
}

func TestQueue_UnsubscribeBeforeDrain(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	h := NewHandle(r)
	SubscribeTo[fileSaved](d, h)

	d.QueueEvent(fileSaved{})
	UnsubscribeFrom[fileSaved](d, h)

	if err := d.ProcessQueue(); err != nil {
		t.Fatalf("ProcessQueue() failed: %v", err)
	}
	if r.calls != 0 {
		t.Errorf("expected 0 calls after unsubscribe, got %d", r.calls)
	}
}

func TestQueue_ExpireBeforeDrain(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	h := NewHandle(r)
	SubscribeTo[fileSaved](d, h)

	d.QueueEvent(fileSaved{})
	h.Release()

	if err := d.ProcessQueue(); err != nil {
		t.Fatalf("ProcessQueue() failed: %v", err)
	}
	if r.calls != 0 {
		t.Errorf("expected 0 calls to expired listener, got %d", r.calls)
	}
	if d.Count() != 0 {
		t.Errorf("expected expired entry pruned during drain, got %d", d.Count())
	}
}

func TestQueue_EnqueueDuringDrainWaits(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	h := NewHandle(ListenerFunc[fileSaved](func(ev fileSaved) error {
		calls++
		if calls == 1 {
			d.QueueEvent(fileSaved{path: "again"})
		}
		return nil
	}))
	SubscribeTo[fileSaved](d, h)

	d.QueueEvent(fileSaved{path: "first"})
	if err := d.ProcessQueue(); err != nil {
		t.Fatalf("ProcessQueue() failed: %v", err)
	}

	// The event enqueued mid-drain waits for the next call.
	if calls != 1 {
		t.Errorf("expected 1 call in the first drain, got %d", calls)
	}
	if d.QueueLen() != 1 {
		t.Errorf("expected 1 event left for the next drain, got %d", d.QueueLen())
	}

	if err := d.ProcessQueue(); err != nil {
		t.Fatalf("ProcessQueue() failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls after the second drain, got %d", calls)
	}
	if d.QueueLen() != 0 {
		t.Errorf("expected empty queue, got %d", d.QueueLen())
	}
}

func TestQueue_ReentrantDrain(t *testing.T) {
	d := NewDispatcher()
	var seq []string
	h := NewHandle(ListenerFunc[fileSaved](func(ev fileSaved) error {
		seq = append(seq, ev.path)
		if ev.path == "1" {
			d.QueueEvent(fileSaved{path: "3"})
			d.QueueEvent(fileSaved{path: "4"})
			return d.ProcessQueue()
		}
		return nil
	}))
	SubscribeTo[fileSaved](d, h)

	d.QueueEvent(fileSaved{path: "1"})
	d.QueueEvent(fileSaved{path: "2"})

	if err := d.ProcessQueue(); err != nil {
		t.Fatalf("ProcessQueue() failed: %v", err)
	}

	// The nested drain consumes everything queued at its own entry,
	// including the event the outer drain was still owed; the outer loop
	// then finds the queue empty and stops cleanly.
	want := []string{"1", "2", "3", "4"}
	if len(seq) != len(want) {
		t.Fatalf("expected %d deliveries, got %d: %v", len(want), len(seq), seq)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], seq[i])
		}
	}
	if d.QueueLen() != 0 {
		t.Errorf("expected empty queue after nested drains, got %d", d.QueueLen())
	}
}

func TestQueue_ErrorAbortsDrain(t *testing.T) {
	d := NewDispatcher()
	cause := errors.New("boom")
	okCalls := 0
	hFail := NewHandle(ListenerFunc[fileClosed](func(ev fileClosed) error {
		return cause
	}))
	hOK := NewHandle(ListenerFunc[fileSaved](func(ev fileSaved) error {
		okCalls++
		return nil
	}))
	SubscribeTo[fileClosed](d, hFail)
	SubscribeTo[fileSaved](d, hOK)

	d.QueueEvent(fileClosed{}) // will fail
	d.QueueEvent(fileSaved{})  // behind it

	err := d.ProcessQueue()
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped listener error, got %v", err)
	}
	if okCalls != 0 {
		t.Errorf("expected the drain to stop before later events, got %d calls", okCalls)
	}
	// The failing event was consumed; the one behind it remains.
	if d.QueueLen() != 1 {
		t.Fatalf("expected 1 event still queued, got %d", d.QueueLen())
	}

	if err := d.ProcessQueue(); err != nil {
		t.Fatalf("ProcessQueue() failed: %v", err)
	}
	if okCalls != 1 {
		t.Errorf("expected the remaining event delivered, got %d calls", okCalls)
	}
}

func TestQueueEvent_Nil(t *testing.T) {
	d := NewDispatcher()
	if err := d.QueueEvent(nil); err != ErrNilEvent {
		t.Errorf("expected ErrNilEvent, got %v", err)
	}
}

func TestProcessQueue_Empty(t *testing.T) {
	d := NewDispatcher()
	if err := d.ProcessQueue(); err != nil {
		t.Errorf("expected no-op on empty queue, got %v", err)
	}
}

func TestWithQueueCapacity(t *testing.T) {
	d := NewDispatcher(WithQueueCapacity(8))
	if cap(d.queue) != 8 {
		t.Errorf("expected preallocated capacity 8, got %d", cap(d.queue))
	}

	// Non-positive values are ignored.
	d = NewDispatcher(WithQueueCapacity(0))
	if cap(d.queue) != 0 {
		t.Errorf("expected no preallocation, got %d", cap(d.queue))
	}
}
