package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// memSink records everything written to it.
type memSink struct {
	entries []LogEntry
}

func (m *memSink) Write(entry LogEntry) {
	m.entries = append(m.entries, entry)
}

func TestFanout_Broadcast(t *testing.T) {
	a := &memSink{}
	b := &memSink{}

	f := NewFanout()
	f.Register(a)
	f.Register(b)
	f.Register(b) // duplicate registration is a no-op

	f.Write(LogEntry{Timestamp: time.Now(), Level: LevelInfo, Message: "one"})
	require.Len(t, a.entries, 1)
	require.Len(t, b.entries, 1)

	f.Unregister(a)
	f.Write(LogEntry{Timestamp: time.Now(), Level: LevelInfo, Message: "two"})
	require.Len(t, a.entries, 1)
	require.Len(t, b.entries, 2)
	require.Equal(t, "two", b.entries[1].Message)
}

func TestFanout_AsStoreSink(t *testing.T) {
	tail := &memSink{}
	f := NewFanout()
	f.Register(tail)

	s := New[string](WithSink(f))
	s.Set("k", "v", time.Hour)

	// Construction entry plus the write entry both reached the sink.
	require.Len(t, tail.entries, 2)
	require.Equal(t, LevelInfo, tail.entries[1].Level)
	require.Contains(t, tail.entries[1].Message, `"k"`)
}
