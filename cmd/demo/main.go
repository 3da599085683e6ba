package main

import (
	"log"
	"os"
	"time"

	"expiring-store/internal/auditdb"
	"expiring-store/internal/store"
)

func main() {
	// Persistent audit sink; path is customizable via first argument
	dbPath := "store-audit.db"
	if len(os.Args) > 1 {
		dbPath = os.Args[1]
	}
	sink, err := auditdb.Open(dbPath, auditdb.DefaultKeep)
	if err != nil {
		log.Fatal("Failed to open audit sink: ", err)
	}
	defer sink.Close()

	s := store.New[any](
		store.WithMaxItems(10),
		store.WithSink(sink),
		store.WithSweepInterval(30*time.Second),
	)
	defer s.Close()

	s.Set("u1", map[string]string{"name": "Alice"}, 2*time.Hour)
	s.Set("u2", "short-lived", 5*time.Second)
	s.Set("u3", "stale on arrival", -5*time.Second)

	if v, ok := s.Get("u1"); ok {
		log.Printf("u1 => %v", v)
	}
	if _, ok := s.Get("u3"); !ok {
		log.Println("u3 was already expired at write time")
	}

	removed := s.CleanupExpired()
	log.Printf("sweep removed %d entries, %d still stored", removed, s.Len())

	log.Println("Audit log:")
	for _, e := range s.AuditLog() {
		log.Printf("  [%s] %s %s", e.Level, e.Timestamp.Format(time.RFC3339), e.Message)
	}

	if n, err := sink.Count(); err == nil {
		log.Printf("%d entries retained in %s", n, dbPath)
	}
}
