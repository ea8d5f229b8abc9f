package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room assignments are stored on the camper (room_id); the roster is derived.
type Room struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Capacity int       `gorm:"not null" json:"capacity"`
	Building *string   `gorm:"size:255" json:"building"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
