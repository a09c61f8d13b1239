package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreProfile is the store identity printed in every document header and footer
type StoreProfile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name               string    `gorm:"size:255;not null" json:"name"`
	Address            string    `gorm:"type:text" json:"address"`
	Phone              string    `gorm:"size:50" json:"phone"`
	NTN                string    `gorm:"size:50;column:ntn" json:"ntn"`
	ReceiptFooter      string    `gorm:"size:255" json:"receipt_footer"`
	ConfirmationFooter string    `gorm:"size:255" json:"confirmation_footer"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new profile
func (s *StoreProfile) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreProfile model
func (StoreProfile) TableName() string {
	return "store_profiles"
}
