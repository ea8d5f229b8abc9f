package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"

	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/campbaraisa/camp_admin/services"
	"github.com/gofiber/fiber/v2"
)

// ExportCampersCSV streams the camper roster as a CSV download. The optional
// status filter matches the kanban board's columns.
func ExportCampersCSV(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Camper{}).Order("last_name asc, first_name asc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var campers []models.Camper
	if err := query.Find(&campers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{
		"First Name", "Last Name", "Status", "Grade", "Yeshiva",
		"Parent Name", "Parent Email", "Parent Phone",
		"Address", "City", "State", "Zip",
		"Total Balance", "Total Paid", "Payment Plan",
	})
	for i := range campers {
		camper := &campers[i]
		w.Write([]string{
			camper.FirstName,
			camper.LastName,
			camper.Status,
			strValue(camper.Grade),
			strValue(camper.Yeshiva),
			camper.ParentName(),
			strValue(camper.ParentEmail),
			camper.ParentPhone(),
			strValue(camper.Address),
			strValue(camper.City),
			strValue(camper.State),
			strValue(camper.ZipCode),
			fmt.Sprintf("%.2f", camper.TotalBalance),
			fmt.Sprintf("%.2f", camper.TotalPaid),
			strValue(camper.PaymentPlan),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build export"})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="campers.csv"`)
	return c.Send(buf.Bytes())
}

// ExportBillingCSV exports one row per invoice with its camper context.
func ExportBillingCSV(c *fiber.Ctx) error {
	var invoices []models.Invoice
	if err := database.DB.Order("created_at asc").Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{
		"Invoice ID", "Camper", "Description", "Amount", "Paid", "Balance",
		"Status", "Due Date", "Created",
	})
	for i := range invoices {
		inv := &invoices[i]
		var camper models.Camper
		camperName := ""
		if err := database.DB.Unscoped().First(&camper, "id = ?", inv.CamperID).Error; err == nil {
			camperName = camper.FullName()
		}
		w.Write([]string{
			inv.ID.String(),
			camperName,
			inv.Description,
			fmt.Sprintf("%.2f", inv.Amount),
			fmt.Sprintf("%.2f", inv.PaidAmount),
			fmt.Sprintf("%.2f", inv.Amount-inv.PaidAmount),
			inv.Status,
			strValue(inv.DueDate),
			inv.CreatedAt.Format("2006-01-02"),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build export"})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="billing.csv"`)
	return c.Send(buf.Bytes())
}

// DownloadInvoicePDF renders one invoice as a printable PDF.
func DownloadInvoicePDF(c *fiber.Ctx) error {
	var invoice models.Invoice
	if err := database.DB.First(&invoice, "id = ?", c.Params("invoiceId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}

	var camper models.Camper
	if err := database.DB.Unscoped().First(&camper, "id = ?", invoice.CamperID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Camper not found"})
	}

	pdf, err := services.GenerateInvoicePDF(database.DB, &invoice, &camper)
	if err != nil {
		log.Printf("🔥 Invoice PDF generation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate PDF"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, invoice.ID))
	return c.Send(pdf)
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
