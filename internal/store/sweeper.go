package store

import "time"

// sweepTarget is what the sweeper drives; it keeps the sweeper independent
// of the store's value type.
type sweepTarget interface {
	CleanupExpired() int
}

// sweeper periodically runs a cleanup pass in the background. It is pure
// hygiene: expired entries stay invisible to readers with or without it,
// because Get removes them lazily.
type sweeper struct {
	interval time.Duration
	done     chan struct{}
}

func newSweeper(interval time.Duration) *sweeper {
	return &sweeper{
		interval: interval,
		done:     make(chan struct{}),
	}
}

// run starts the sweep goroutine; it exits when stop is called.
func (sw *sweeper) run(target sweepTarget) {
	ticker := time.NewTicker(sw.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				target.CleanupExpired()
			case <-sw.done:
				return
			}
		}
	}()
}

func (sw *sweeper) stop() {
	select {
	case <-sw.done:
		// already stopped
	default:
		close(sw.done)
	}
}
