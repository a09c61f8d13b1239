package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/investify-receipts/internal/domain/enum"
	"gorm.io/gorm"
)

// PrintJob records a document handed to a print host
type PrintJob struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Kind           enum.PrintKind      `gorm:"not null;index" json:"kind"`
	DocumentNumber string              `gorm:"size:100;not null;index" json:"document_number"`
	Status         enum.PrintJobStatus `gorm:"default:0;index" json:"status"`
	HostType       string              `gorm:"size:20" json:"host_type"`
	Format         string              `gorm:"size:20" json:"format"`
	TerminalID     string              `gorm:"size:100;index" json:"terminal_id,omitempty"`
	ScheduledAt    time.Time           `gorm:"not null;index" json:"scheduled_at"`
	PrintedAt      *time.Time          `json:"printed_at,omitempty"`
	Error          string              `gorm:"type:text" json:"error,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new print job
func (j *PrintJob) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PrintJob model
func (PrintJob) TableName() string {
	return "print_jobs"
}
