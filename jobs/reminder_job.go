package jobs

import (
	"log"
	"time"

	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/campbaraisa/camp_admin/services"
)

// RefreshReminderDates recomputes the cached next_reminder_date on every
// unpaid invoice. The value is also recomputed on read; the nightly sweep
// keeps the reminders-due query accurate for invoices nobody has opened.
func RefreshReminderDates() {
	log.Println("Running job: RefreshReminderDates...")

	var invoices []models.Invoice
	if err := database.DB.Where("status <> ?", "paid").Find(&invoices).Error; err != nil {
		log.Printf("Error loading invoices for reminder refresh: %v", err)
		return
	}

	now := time.Now().UTC()
	updated := 0
	for _, inv := range invoices {
		due := ""
		if inv.DueDate != nil {
			due = *inv.DueDate
		}
		next := services.NextReminderDate(due, inv.SentDates(), now)

		current := ""
		if inv.NextReminderDate != nil {
			current = *inv.NextReminderDate
		}
		fresh := ""
		if next != nil {
			fresh = *next
		}
		if current == fresh {
			continue
		}

		if err := database.DB.Model(&inv).Update("next_reminder_date", next).Error; err != nil {
			log.Printf("Error updating next reminder for invoice %s: %v", inv.ID, err)
			continue
		}
		updated++
	}

	if updated > 0 {
		log.Printf("✅ Refreshed next reminder date on %d invoices", updated)
	}
}
