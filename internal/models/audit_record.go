package models

import "time"

// AuditRecord is the persisted form of one store audit entry.
// ID is assigned by the database in insertion order, which is what the
// retention pass keys on.
type AuditRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamp time.Time `json:"timestamp" gorm:"index;not null"`
	Level     string    `json:"level" gorm:"not null"`
	Message   string    `json:"message"`
}

// TableName specifies the table name for AuditRecord Model
func (AuditRecord) TableName() string {
	return "audit_records"
}
