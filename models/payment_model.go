package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Payment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID       uuid.UUID  `gorm:"not null;index" json:"invoice_id"`
	CamperID        *uuid.UUID `gorm:"index" json:"camper_id"`
	Amount          float64    `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method          string     `gorm:"size:20;not null" json:"method"`
	IncludeFee      bool       `gorm:"default:true" json:"include_fee"`
	FeeAmount       float64    `gorm:"type:numeric(10,2);default:0.00" json:"fee_amount"`
	Status          string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	StripeSessionID *string    `gorm:"size:255;unique" json:"stripe_session_id"`
	Notes           *string    `gorm:"type:text" json:"notes"`

	Invoice Invoice `gorm:"foreignkey:InvoiceID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
