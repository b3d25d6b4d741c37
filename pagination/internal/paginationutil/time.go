package paginationutil

import (
	"context"
	"time"
)

// TimerFunc is the signature of After, so tests can swap in a fake clock.
type TimerFunc func(context.Context, time.Duration) <-chan time.Time

// After sends the time on the returned channel once d has elapsed. Cancelling
// ctx first stops the timer and closes the channel without a value.
func After(ctx context.Context, d time.Duration) <-chan time.Time {
	fired := make(chan time.Time, 1)
	timer := time.NewTimer(d)

	go func() {
		select {
		case t := <-timer.C:
			fired <- t
		case <-ctx.Done():
			timer.Stop()
			close(fired)
		}
	}()
	return fired
}
