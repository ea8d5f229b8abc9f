package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Invoice struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CamperID    uuid.UUID `gorm:"not null;index" json:"camper_id"`
	Amount      float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	Description string    `gorm:"type:text;not null" json:"description"`
	DueDate     *string   `gorm:"size:20" json:"due_date"`
	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	PaidAmount  float64   `gorm:"type:numeric(10,2);default:0.00" json:"paid_amount"`

	// JSON array of ISO dates a reminder was already sent on.
	ReminderSentDates string  `gorm:"type:text;default:'[]'" json:"-"`
	NextReminderDate  *string `gorm:"size:20" json:"next_reminder_date"`

	Camper Camper `gorm:"foreignkey:CamperID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.ReminderSentDates == "" {
		i.ReminderSentDates = "[]"
	}
	return nil
}

func (i *Invoice) SentDates() []string {
	var dates []string
	if err := json.Unmarshal([]byte(i.ReminderSentDates), &dates); err != nil {
		return []string{}
	}
	return dates
}

func (i *Invoice) SetSentDates(dates []string) {
	raw, err := json.Marshal(dates)
	if err != nil {
		return
	}
	i.ReminderSentDates = string(raw)
}

func (i *Invoice) MarshalJSON() ([]byte, error) {
	type alias Invoice
	return json.Marshal(struct {
		alias
		ReminderSentDates []string `json:"reminder_sent_dates"`
	}{alias(*i), i.SentDates()})
}
