package auditdb

import (
	"fmt"
	"testing"
	"time"

	"expiring-store/internal/store"
	"expiring-store/internal/testutil"

	"github.com/stretchr/testify/require"
)

func newTestSink(t *testing.T, keep int) *DBSink {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	sink, err := New(db, keep)
	require.NoError(t, err)
	return sink
}

func TestDBSink_WriteAndRecent(t *testing.T) {
	sink := newTestSink(t, 100)

	now := time.Now()
	sink.Write(store.LogEntry{Timestamp: now, Level: store.LevelInfo, Message: "first"})
	sink.Write(store.LogEntry{Timestamp: now, Level: store.LevelWarning, Message: "second"})

	n, err := sink.Count()
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	recs, err := sink.Recent(1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "second", recs[0].Message)
	require.Equal(t, string(store.LevelWarning), recs[0].Level)
}

func TestDBSink_Retention(t *testing.T) {
	sink := newTestSink(t, 5)

	for i := 0; i < 8; i++ {
		sink.Write(store.LogEntry{
			Timestamp: time.Now(),
			Level:     store.LevelInfo,
			Message:   fmt.Sprintf("entry %d", i),
		})
	}

	n, err := sink.Count()
	require.NoError(t, err)
	require.EqualValues(t, 5, n)

	// The oldest three were pruned; the newest survive.
	recs, err := sink.Recent(5)
	require.NoError(t, err)
	require.Equal(t, "entry 7", recs[0].Message)
	require.Equal(t, "entry 3", recs[4].Message)
}

func TestDBSink_KeepCoercion(t *testing.T) {
	sink := newTestSink(t, 0)
	require.Equal(t, DefaultKeep, sink.keep)
}

func TestDBSink_StoreIntegration(t *testing.T) {
	sink := newTestSink(t, 100)

	s := store.New[string](store.WithMaxItems(10), store.WithSink(sink))
	s.Set("u1", "payload", time.Hour)
	s.Set("gone", "payload", -time.Second)
	_, ok := s.Get("gone")
	require.False(t, ok)

	// Construction, two writes, one expiry warning.
	n, err := sink.Count()
	require.NoError(t, err)
	require.EqualValues(t, 4, n)

	recs, err := sink.Recent(1)
	require.NoError(t, err)
	require.Equal(t, string(store.LevelWarning), recs[0].Level)
	require.Contains(t, recs[0].Message, `"gone"`)
}
