package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Communication is a queued outbound (or logged inbound) message. Records are
// created with status "pending"; the dispatch job moves them to sent/failed.
type Communication struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CamperID       uuid.UUID  `gorm:"not null;index" json:"camper_id"`
	Type           string     `gorm:"size:10;not null" json:"type"`
	Subject        *string    `gorm:"size:500" json:"subject"`
	Message        string     `gorm:"type:text;not null" json:"message"`
	Direction      string     `gorm:"size:10;not null" json:"direction"`
	Status         string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	RecipientEmail *string    `gorm:"size:255" json:"recipient_email"`
	RecipientPhone *string    `gorm:"size:50" json:"recipient_phone"`
	TemplateID     *uuid.UUID `json:"template_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Communication) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
