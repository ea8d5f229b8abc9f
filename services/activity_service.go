package services

import (
	"encoding/json"
	"log"

	"github.com/campbaraisa/camp_admin/models"
	ws "github.com/campbaraisa/camp_admin/websocket"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogActivity appends one audit-trail entry and pushes it to the live admin
// feed. Audit writes are best-effort from the caller's point of view.
func LogActivity(db *gorm.DB, entityType string, entityID uuid.UUID, action string, details map[string]interface{}, performedBy *uuid.UUID) (*models.ActivityLog, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		raw = []byte("{}")
	}

	entry := models.ActivityLog{
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		Details:     string(raw),
		PerformedBy: performedBy,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("🔥 Failed to write activity log (%s/%s): %v", entityType, action, err)
		return nil, err
	}

	ws.BroadcastActivity(&entry)
	return &entry, nil
}
