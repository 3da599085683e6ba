package store

import "time"

// Level classifies an audit log entry.
type Level string

const (
	LevelDebug   Level = "DEBUG"
	LevelInfo    Level = "INFO"
	LevelNotice  Level = "NOTICE"
	LevelWarning Level = "WARNING"
	LevelError   Level = "ERROR"
)

// LogEntry is one record in a store's audit log.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
}

// Sink receives a copy of every audit entry the store appends.
// Implementations must not block for long: the store forwards entries
// synchronously from inside its critical section.
type Sink interface {
	Write(entry LogEntry)
}

// logLocked appends an entry to the audit log and forwards it to the
// configured sink. Callers must hold s.mu (or be the constructor, before
// the store is shared).
func (s *Store[V]) logLocked(level Level, msg string) {
	entry := LogEntry{
		Timestamp: now(),
		Level:     level,
		Message:   msg,
	}
	s.audit = append(s.audit, entry)
	if s.sink != nil {
		s.sink.Write(entry)
	}
}
