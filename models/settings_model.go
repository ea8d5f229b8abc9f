package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Settings is a single-row table holding camp identity and feature toggles.
type Settings struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CampName       string    `gorm:"size:255;not null;default:'Camp Baraisa'" json:"camp_name"`
	CampEmail      *string   `gorm:"size:255" json:"camp_email"`
	CampPhone      *string   `gorm:"size:50" json:"camp_phone"`
	QuickbooksSync bool      `gorm:"default:false" json:"quickbooks_sync"`
	TwilioEnabled  bool      `gorm:"default:false" json:"twilio_enabled"`
	GmailEnabled   bool      `gorm:"default:false" json:"gmail_enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
