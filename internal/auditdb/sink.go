package auditdb

import (
	"log"

	"expiring-store/internal/models"
	"expiring-store/internal/store"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultKeep is the retention bound used when none is configured
// (or when a non-positive one is).
const DefaultKeep = 10000

// DBSink persists store audit entries to a SQLite database and keeps only
// the newest entries, so the unbounded in-memory audit log has a bounded
// durable counterpart. It persists log entries only, never cache contents.
type DBSink struct {
	db   *gorm.DB
	keep int
}

// Open creates (or reuses) a SQLite database at path, runs migrations and
// returns a sink retaining the newest keep records. Non-positive keep
// falls back to DefaultKeep.
// Using glebarez/sqlite which is a pure Go implementation (no CGO required)
func Open(path string, keep int) (*DBSink, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return New(db, keep)
}

// New wraps an existing gorm DB, running migrations. Tests use this with
// an in-memory database.
func New(db *gorm.DB, keep int) (*DBSink, error) {
	if keep <= 0 {
		keep = DefaultKeep
	}
	if err := db.AutoMigrate(&models.AuditRecord{}); err != nil {
		return nil, err
	}
	return &DBSink{db: db, keep: keep}, nil
}

// Write inserts the entry and prunes anything older than the newest keep
// records. Failures are logged, not escalated: the store's audit path must
// never fail a cache operation.
func (s *DBSink) Write(entry store.LogEntry) {
	rec := models.AuditRecord{
		Timestamp: entry.Timestamp,
		Level:     string(entry.Level),
		Message:   entry.Message,
	}
	if err := s.db.Create(&rec).Error; err != nil {
		log.Printf("auditdb: write failed: %v", err)
		return
	}
	if err := s.db.Exec(
		"DELETE FROM audit_records WHERE id <= (SELECT MAX(id) FROM audit_records) - ?",
		s.keep,
	).Error; err != nil {
		log.Printf("auditdb: retention prune failed: %v", err)
	}
}

// Recent returns up to n records, newest first.
func (s *DBSink) Recent(n int) ([]models.AuditRecord, error) {
	var recs []models.AuditRecord
	if err := s.db.Order("id desc").Limit(n).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Count returns the number of retained records.
func (s *DBSink) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&models.AuditRecord{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Close releases the underlying database connection.
func (s *DBSink) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ensure DBSink implements store.Sink at compile time.
var _ store.Sink = (*DBSink)(nil)
