package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Expense struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Category    string    `gorm:"size:100;not null;index" json:"category"`
	Amount      float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        string    `gorm:"size:20;not null" json:"date"`
	Vendor      *string   `gorm:"size:255" json:"vendor"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
