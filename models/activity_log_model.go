package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog is an append-only audit trail keyed by (entity_type, entity_id).
type ActivityLog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	EntityType  string     `gorm:"size:50;not null;index:idx_activity_entity" json:"entity_type"`
	EntityID    uuid.UUID  `gorm:"not null;index:idx_activity_entity" json:"entity_id"`
	Action      string     `gorm:"size:50;not null" json:"action"`
	Details     string     `gorm:"type:text;default:'{}'" json:"-"`
	PerformedBy *uuid.UUID `json:"performed_by"`

	CreatedAt time.Time `json:"created_at"`
}

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Details == "" {
		l.Details = "{}"
	}
	return nil
}

func (l *ActivityLog) DetailsMap() map[string]interface{} {
	out := map[string]interface{}{}
	if err := json.Unmarshal([]byte(l.Details), &out); err != nil {
		return map[string]interface{}{}
	}
	return out
}

func (l *ActivityLog) MarshalJSON() ([]byte, error) {
	type alias ActivityLog
	return json.Marshal(struct {
		alias
		Details map[string]interface{} `json:"details"`
	}{alias(*l), l.DetailsMap()})
}
