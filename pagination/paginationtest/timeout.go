package paginationtest

import (
	"reflect"
	"testing"
	"time"
)

// Instantly is for things that should already have happened, such as events
// emitted by a call that returned. NoRecv with Instantly asserts that nothing
// is pending.
var Instantly = Before(10 * time.Millisecond)

// Soon is for things happening on another goroutine, such as the timeout
// render.
var Soon = Before(Timeout)

func Before(d time.Duration) WithTimeout {
	return WithTimeout{before: d}
}

type WithTimeout struct {
	before time.Duration
}

// Recv receives from the channel from, calling fail if nothing arrives in
// time. A received value is stored in into when into is a non-nil pointer to
// a variable of the channel's element type. ok is false when from was closed.
func (wt WithTimeout) Recv(t *testing.T, into, from interface{}, fail func(format string, args ...interface{})) (ok bool) {
	t.Helper()
	v, ok, timedOut := wt.recv(from)
	if timedOut {
		fail("timed out after %v waiting to receive from %T", wt.before, from)
		return false
	}
	if ok && into != nil {
		reflect.ValueOf(into).Elem().Set(v)
	}
	return ok
}

// NoRecv is the opposite of Recv: fail is called if anything is received, or
// from is closed, before the timeout.
func (wt WithTimeout) NoRecv(t *testing.T, into, from interface{}, fail func(format string, args ...interface{})) (ok bool) {
	t.Helper()
	v, ok, timedOut := wt.recv(from)
	if timedOut {
		return false
	}
	if ok && into != nil {
		reflect.ValueOf(into).Elem().Set(v)
	}
	if ok {
		fail("unexpectedly received %v from %T", v, from)
	} else {
		fail("unexpectedly closed %T", from)
	}
	return ok
}

func (wt WithTimeout) recv(from interface{}) (v reflect.Value, ok, timedOut bool) {
	timer := time.NewTimer(wt.before)
	defer timer.Stop()

	chosen, v, ok := reflect.Select([]reflect.SelectCase{
		{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(from)},
		{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(timer.C)},
	})
	return v, ok, chosen == 1
}
