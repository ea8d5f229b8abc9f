package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmailTemplate struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Subject      string    `gorm:"size:500" json:"subject"`
	Body         string    `gorm:"type:text;not null" json:"body"`
	Trigger      *string   `gorm:"column:trigger_name;size:50;index" json:"trigger"`
	TemplateType string    `gorm:"size:10;not null;default:'email'" json:"template_type"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *EmailTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
