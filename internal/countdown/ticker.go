package countdown

import (
	"context"
	"time"

	"engsoc.net/eweek/internal/types"
)

// Ticker re-resolves an event window once a second and hands each result to
// the callback. The owner starts it and must stop it on teardown, otherwise
// the tick keeps firing against a view that no longer exists.
type Ticker struct {
	start time.Time
	end   time.Time
	stop  context.CancelFunc
}

func NewTicker(start, end time.Time) *Ticker {
	return &Ticker{start: start, end: end}
}

func (t *Ticker) Start(ctx context.Context, onTick func(types.EventStatus, types.Breakdown)) {
	ctx, cancel := context.WithCancel(ctx)
	t.stop = cancel

	// first resolve happens immediately, not after one second
	status, left := Resolve(time.Now(), t.start, t.end)
	onTick(status, left)

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				status, left := Resolve(now, t.start, t.end)
				onTick(status, left)
			}
		}
	}()
}

func (t *Ticker) Stop() {
	if t.stop != nil {
		t.stop()
	}
}
