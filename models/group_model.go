package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Group covers shiurim, transportation, trips and custom collections.
// Membership lives in the camper_groups join table only; rosters are derived.
type Group struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Capacity    *int      `json:"capacity"`
	Description *string   `gorm:"type:text" json:"description"`

	Campers []*Camper `gorm:"many2many:camper_groups;" json:"campers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
