package handlers

import (
	"time"

	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/campbaraisa/camp_admin/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRequest struct {
	CamperID    uuid.UUID `json:"camper_id" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Description string    `json:"description" validate:"required"`
	DueDate     *string   `json:"due_date"`
}

func CreateInvoice(c *fiber.Ctx) error {
	var req InvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var camper models.Camper
	if err := database.DB.First(&camper, "id = ?", req.CamperID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
	}

	dueDate := req.DueDate
	if dueDate == nil || *dueDate == "" {
		d := time.Now().UTC().AddDate(0, 0, 90).Format("2006-01-02")
		dueDate = &d
	}

	invoice := models.Invoice{
		CamperID:    req.CamperID,
		Amount:      req.Amount,
		Description: req.Description,
		DueDate:     dueDate,
		Status:      "pending",
	}
	invoice.NextReminderDate = services.NextReminderDate(*dueDate, nil, time.Now().UTC())

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}
		return tx.Model(&models.Camper{}).Where("id = ?", camper.ID).
			UpdateColumn("total_balance", gorm.Expr("total_balance + ?", req.Amount)).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create invoice"})
	}

	services.LogActivity(database.DB, "camper", camper.ID, "invoice_created", map[string]interface{}{
		"invoice_id":  invoice.ID.String(),
		"amount":      req.Amount,
		"description": req.Description,
	}, currentAdminID(c))

	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GetInvoices lists invoices, optionally scoped to one camper. The cached
// next reminder date is recomputed on the way out so the list never shows a
// stale schedule.
func GetInvoices(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Invoice{}).Order("created_at desc")
	if camperID := c.Query("camper_id"); camperID != "" {
		query = query.Where("camper_id = ?", camperID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	now := time.Now().UTC()
	for i := range invoices {
		refreshNextReminder(&invoices[i], now)
	}
	return c.JSON(invoices)
}

func GetInvoice(c *fiber.Ctx) error {
	var invoice models.Invoice
	if err := database.DB.First(&invoice, "id = ?", c.Params("invoiceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}
	refreshNextReminder(&invoice, time.Now().UTC())
	return c.JSON(invoice)
}

func refreshNextReminder(inv *models.Invoice, now time.Time) {
	if inv.Status == "paid" {
		return
	}
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
	if current != fresh {
		inv.NextReminderDate = next
		database.DB.Model(inv).Update("next_reminder_date", next)
	}
}

type InvoiceUpdateRequest struct {
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	Description *string  `json:"description"`
	DueDate     *string  `json:"due_date"`
}

// UpdateInvoice edits an invoice in place. An amount change moves the
// camper's total balance by the difference and recomputes the paid state.
func UpdateInvoice(c *fiber.Ctx) error {
	var invoice models.Invoice
	if err := database.DB.First(&invoice, "id = ?", c.Params("invoiceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}

	var req InvoiceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if req.Amount != nil && *req.Amount != invoice.Amount {
			diff := *req.Amount - invoice.Amount
			if err := tx.Model(&models.Camper{}).Where("id = ?", invoice.CamperID).
				UpdateColumn("total_balance", gorm.Expr("total_balance + ?", diff)).Error; err != nil {
				return err
			}
			invoice.Amount = *req.Amount
			if invoice.PaidAmount >= invoice.Amount {
				invoice.Status = "paid"
			} else if invoice.PaidAmount > 0 {
				invoice.Status = "partial"
			} else {
				invoice.Status = "pending"
			}
		}
		if req.Description != nil {
			invoice.Description = *req.Description
		}
		if req.DueDate != nil {
			invoice.DueDate = req.DueDate
		}
		return tx.Save(&invoice).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update invoice"})
	}

	refreshNextReminder(&invoice, time.Now().UTC())
	return c.JSON(invoice)
}

// DeleteInvoice removes an invoice that has no money against it and gives
// the amount back to the camper's balance.
func DeleteInvoice(c *fiber.Ctx) error {
	var invoice models.Invoice
	if err := database.DB.First(&invoice, "id = ?", c.Params("invoiceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}

	var paymentCount int64
	database.DB.Model(&models.Payment{}).Where("invoice_id = ?", invoice.ID).Count(&paymentCount)
	if invoice.PaidAmount > 0 || paymentCount > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete an invoice with payments"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Camper{}).Where("id = ?", invoice.CamperID).
			UpdateColumn("total_balance", gorm.Expr("total_balance - ?", invoice.Amount)).Error; err != nil {
			return err
		}
		return tx.Delete(&invoice).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete invoice"})
	}

	services.LogActivity(database.DB, "camper", invoice.CamperID, "invoice_deleted", map[string]interface{}{
		"invoice_id": invoice.ID.String(),
		"amount":     invoice.Amount,
	}, currentAdminID(c))

	return c.JSON(fiber.Map{"message": "Invoice deleted"})
}

// GetRemindersDue lists unpaid invoices whose next reminder date has arrived,
// joined with enough camper context to act on them.
func GetRemindersDue(c *fiber.Ctx) error {
	today := time.Now().UTC().Format("2006-01-02")

	var invoices []models.Invoice
	err := database.DB.
		Where("status <> ? AND next_reminder_date IS NOT NULL AND next_reminder_date <= ?", "paid", today).
		Find(&invoices).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	due := make([]fiber.Map, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		var camper models.Camper
		if err := database.DB.First(&camper, "id = ?", inv.CamperID).Error; err != nil {
			continue
		}
		due = append(due, fiber.Map{
			"invoice_id":         inv.ID,
			"camper_id":          camper.ID,
			"camper_name":        camper.FullName(),
			"parent_email":       camper.ParentEmail,
			"amount":             inv.Amount,
			"paid_amount":        inv.PaidAmount,
			"balance":            inv.Amount - inv.PaidAmount,
			"due_date":           inv.DueDate,
			"next_reminder_date": inv.NextReminderDate,
		})
	}
	return c.JSON(due)
}

// SendInvoiceReminder queues a payment reminder email for one invoice,
// records today in the invoice's sent-dates set and advances the schedule.
func SendInvoiceReminder(c *fiber.Ctx) error {
	var invoice models.Invoice
	if err := database.DB.First(&invoice, "id = ?", c.Params("invoiceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}
	if invoice.Status == "paid" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invoice is already paid"})
	}

	var camper models.Camper
	if err := database.DB.First(&camper, "id = ?", invoice.CamperID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
	}
	if camper.ParentEmail == nil || *camper.ParentEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Camper has no parent email on file"})
	}

	var template models.EmailTemplate
	err := database.DB.
		Where("trigger_name = ? AND template_type = ? AND is_active = ?", "payment_reminder", "email", true).
		First(&template).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No active payment reminder template"})
	}

	data := services.BuildCamperMergeData(database.DB, &camper)
	data["amount_due"] = services.FormatCurrency(invoice.Amount - invoice.PaidAmount)
	if invoice.DueDate != nil {
		data["due_date"] = *invoice.DueDate
	}
	subject, body := services.RenderTemplate(template.Subject, template.Body, data)

	comm := models.Communication{
		CamperID:       camper.ID,
		Type:           "email",
		Subject:        &subject,
		Message:        body,
		Direction:      "outbound",
		Status:         "pending",
		RecipientEmail: camper.ParentEmail,
		TemplateID:     &template.ID,
	}
	if err := database.DB.Create(&comm).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to queue reminder"})
	}

	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	sent := invoice.SentDates()
	already := false
	for _, d := range sent {
		if d == today {
			already = true
			break
		}
	}
	if !already {
		sent = append(sent, today)
	}
	invoice.SetSentDates(sent)

	due := ""
	if invoice.DueDate != nil {
		due = *invoice.DueDate
	}
	next := services.NextReminderDate(due, sent, now)
	err = database.DB.Model(&invoice).Updates(map[string]interface{}{
		"reminder_sent_dates": invoice.ReminderSentDates,
		"next_reminder_date":  next,
	}).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update reminder schedule"})
	}

	services.LogActivity(database.DB, "camper", camper.ID, "reminder_sent", map[string]interface{}{
		"invoice_id": invoice.ID.String(),
		"amount_due": invoice.Amount - invoice.PaidAmount,
	}, currentAdminID(c))

	return c.JSON(fiber.Map{
		"message":            "Reminder queued",
		"next_reminder_date": next,
	})
}
