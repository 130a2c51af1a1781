package timer

import (
	"context"
	"time"
)

// Run ticks t once per interval while it is Running and returns nil as soon
// as it reaches a terminal state, or ctx.Err() when ctx is cancelled. The
// ticker is stopped on pause and restarted on resume, so a partial interval
// before a pause is never counted. onTick, if non-nil, is called after every
// counted tick.
func Run(ctx context.Context, t *Timer, interval time.Duration, onTick func(elapsed int)) error {
	for {
		switch state := t.State(); {
		case state.Terminal():
			return nil
		case state == Paused:
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.Changed():
			}
		default:
			if err := runSpan(ctx, t, interval, onTick); err != nil {
				return err
			}
		}
	}
}

// runSpan ticks until the timer changes state.
func runSpan(ctx context.Context, t *Timer, interval time.Duration, onTick func(elapsed int)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.Changed():
			return nil
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			if t.Tick() && onTick != nil {
				onTick(t.Elapsed())
			}
		}
	}
}
