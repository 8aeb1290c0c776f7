package eventkit

import (
	"errors"
	"testing"
)

func TestListenerError(t *testing.T) {
	underlyingErr := errors.New("something went wrong")
	id := newTestID()
	err := &ListenerError{
		Key:      KeyFor[fileSaved](),
		Listener: id,
		Err:      underlyingErr,
	}

	// Test Error() method
	errStr := err.Error()
	if errStr == "" {
		t.Error("expected non-empty error string")
	}
	if errStr != "listener error for event eventkit.fileSaved: something went wrong" {
		t.Errorf("unexpected error string: %s", errStr)
	}

	// Test Unwrap()
	if err.Unwrap() != underlyingErr {
		t.Error("Unwrap() should return the underlying error")
	}

	// Test errors.Is with underlying error
	if !errors.Is(err, underlyingErr) {
		t.Error("errors.Is should match the underlying error")
	}

	// Test errors.As recovers the typed error
	var lerr *ListenerError
	if !errors.As(err, &lerr) {
		t.Fatal("errors.As should match *ListenerError")
	}
	if lerr.Key != KeyFor[fileSaved]() {
		t.Errorf("unexpected key: %v", lerr.Key)
	}
	if lerr.Listener != id {
		t.Error("expected the failing listener's identity")
	}
}

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	sentinelErrors := []error{
		ErrNilEvent,
		ErrNilHandle,
		ErrExpiredHandle,
		ErrNilHandler,
		ErrNoEventKeys,
		ErrInvalidKey,
	}

	for i, err1 := range sentinelErrors {
		for j, err2 := range sentinelErrors {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestSentinelErrors_NotNil(t *testing.T) {
	sentinelErrors := map[string]error{
		"ErrNilEvent":      ErrNilEvent,
		"ErrNilHandle":     ErrNilHandle,
		"ErrExpiredHandle": ErrExpiredHandle,
		"ErrNilHandler":    ErrNilHandler,
		"ErrNoEventKeys":   ErrNoEventKeys,
		"ErrInvalidKey":    ErrInvalidKey,
	}

	for name, err := range sentinelErrors {
		if err == nil {
			t.Errorf("%s should not be nil", name)
		}
		if err.Error() == "" {
			t.Errorf("%s should have a non-empty error message", name)
		}
	}
}
