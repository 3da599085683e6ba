package store

import "sync"

// Fanout is a Sink that relays every entry to a set of registered sinks.
// It lets one store feed several collaborators (say, a persistent log and
// an in-memory tail) without the store knowing about either.
type Fanout struct {
	mu    sync.RWMutex
	sinks map[Sink]struct{}
}

func NewFanout() *Fanout {
	return &Fanout{
		sinks: make(map[Sink]struct{}),
	}
}

// Register adds a sink; registering the same sink twice is a no-op.
func (f *Fanout) Register(s Sink) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sinks[s] = struct{}{}
}

// Unregister removes a sink if present.
func (f *Fanout) Unregister(s Sink) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sinks, s)
}

// Write relays the entry to every registered sink.
func (f *Fanout) Write(entry LogEntry) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for s := range f.sinks {
		s.Write(entry)
	}
}

// Ensure Fanout implements Sink at compile time.
var _ Sink = (*Fanout)(nil)
