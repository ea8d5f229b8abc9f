package jobs

import (
	"log"
	"strings"

	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/campbaraisa/camp_admin/notifications"
)

// DispatchPendingCommunications hands queued outbound emails to the sender
// and records the outcome. SMS stays pending until a Twilio-style channel is
// wired in; the toggle already exists on settings.
func DispatchPendingCommunications() {
	log.Println("Running job: DispatchPendingCommunications...")

	if notifications.EmailClient == nil {
		return
	}

	var pending []models.Communication
	err := database.DB.
		Where("status = ? AND direction = ? AND type = ?", "pending", "outbound", "email").
		Order("created_at asc").
		Limit(50).
		Find(&pending).Error
	if err != nil {
		log.Printf("Error loading pending communications: %v", err)
		return
	}

	for _, comm := range pending {
		if comm.RecipientEmail == nil || *comm.RecipientEmail == "" {
			database.DB.Model(&comm).Update("status", "failed")
			continue
		}

		subject := ""
		if comm.Subject != nil {
			subject = *comm.Subject
		}
		htmlBody := strings.ReplaceAll(comm.Message, "\n", "<br>")

		newStatus := "sent"
		if err := notifications.SendEmail("", *comm.RecipientEmail, subject, htmlBody); err != nil {
			newStatus = "failed"
		}
		if err := database.DB.Model(&comm).Update("status", newStatus).Error; err != nil {
			log.Printf("Error updating communication %s: %v", comm.ID, err)
		}
	}
}
