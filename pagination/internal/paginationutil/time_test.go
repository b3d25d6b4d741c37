package paginationutil_test

import (
	"context"
	"testing"
	"time"

	"github.com/discord-pagination/pagination-go/pagination/internal/paginationutil"
)

func TestAfterOK(t *testing.T) {
	t.Parallel()

	const wait = 10 * time.Millisecond
	now := time.Now()

	select {
	case got, ok := <-paginationutil.After(context.Background(), wait):
		if !ok {
			t.Fatal("expected timer to fire, channel was closed")
		}
		if got.Sub(now) < wait {
			t.Fatalf("fired after %v; expected at least %v", got.Sub(now), wait)
		}
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}
}

func TestAfterCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	ch := paginationutil.After(ctx, time.Hour)
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected channel to be closed on cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
