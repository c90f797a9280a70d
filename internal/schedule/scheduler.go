package schedule

import (
	"context"
	"time"
)

// Ticks delivers now immediately and then every d until ctx is canceled,
// after which the channel is closed. Like time.Ticker, ticks are dropped
// for a slow reader rather than queued.
func Ticks(ctx context.Context, d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	go func() {
		defer close(ch)
		t := time.NewTicker(d)
		defer t.Stop()

		send := func(now time.Time) {
			select {
			case ch <- now:
			default:
			}
		}
		send(time.Now())
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				send(now)
			}
		}
	}()
	return ch
}

// Every runs f on the calling goroutine, immediately and then every d,
// until ctx is canceled.
func Every(ctx context.Context, d time.Duration, f func(now time.Time)) {
	for now := range Ticks(ctx, d) {
		if ctx.Err() != nil {
			return
		}
		f(now)
	}
}
