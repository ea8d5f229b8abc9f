package handlers

import (
	"log"

	config "github.com/campbaraisa/camp_admin/configs"
	"github.com/campbaraisa/camp_admin/database"
	"github.com/campbaraisa/camp_admin/models"
	"github.com/campbaraisa/camp_admin/payments"
	"github.com/campbaraisa/camp_admin/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetPortal is the unauthenticated parent view, keyed by the camper's portal
// token. It exposes only what a parent needs to see and pay their balance.
func GetPortal(c *fiber.Ctx) error {
	var camper models.Camper
	if err := database.DB.First(&camper, "portal_token = ?", c.Params("token")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Portal not found"})
	}

	var invoices []models.Invoice
	if err := database.DB.Where("camper_id = ?", camper.ID).Order("created_at asc").Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	balance := 0.0
	invoiceViews := make([]fiber.Map, 0, len(invoices))
	for _, inv := range invoices {
		balance += inv.Amount - inv.PaidAmount
		invoiceViews = append(invoiceViews, fiber.Map{
			"id":          inv.ID,
			"description": inv.Description,
			"amount":      inv.Amount,
			"paid_amount": inv.PaidAmount,
			"balance":     inv.Amount - inv.PaidAmount,
			"due_date":    inv.DueDate,
			"status":      inv.Status,
		})
	}

	campName := "Camp Baraisa"
	var settings models.Settings
	if err := database.DB.First(&settings).Error; err == nil {
		campName = settings.CampName
	}

	return c.JSON(fiber.Map{
		"camp_name":     campName,
		"camper_name":   camper.FullName(),
		"parent_name":   camper.ParentName(),
		"status":        camper.Status,
		"total_balance": balance,
		"fee_rate":      services.CreditCardFeeRate,
		"invoices":      invoiceViews,
	})
}

type PortalPaymentRequest struct {
	InvoiceID  uuid.UUID `json:"invoice_id" validate:"required"`
	Amount     float64   `json:"amount" validate:"required,gt=0"`
	IncludeFee *bool     `json:"include_fee"`
}

// CreatePortalPayment starts a hosted card checkout from the parent portal.
// The invoice must belong to the camper behind the token.
func CreatePortalPayment(c *fiber.Ctx) error {
	var camper models.Camper
	if err := database.DB.First(&camper, "portal_token = ?", c.Params("token")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Portal not found"})
	}

	var req PortalPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var invoice models.Invoice
	if err := database.DB.First(&invoice, "id = ? AND camper_id = ?", req.InvoiceID, camper.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}
	if invoice.Status == "paid" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invoice is already paid"})
	}

	includeFee := true
	if req.IncludeFee != nil {
		includeFee = *req.IncludeFee
	}
	fee, total := services.CalculateFee(req.Amount, includeFee)

	portalURL := config.Config("FRONTEND_URL") + "/portal/" + camper.PortalToken
	session, err := payments.CreateCheckoutSession(
		total,
		invoice.Description,
		portalURL+"?payment=success&session_id={CHECKOUT_SESSION_ID}",
		portalURL+"?payment=cancelled",
		map[string]string{
			"invoice_id": invoice.ID.String(),
			"camper_id":  camper.ID.String(),
			"source":     "portal",
		},
	)
	if err != nil {
		log.Printf("🔥 Portal checkout creation failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to create checkout session"})
	}

	payment := models.Payment{
		InvoiceID:       invoice.ID,
		CamperID:        &camper.ID,
		Amount:          req.Amount,
		Method:          "stripe",
		IncludeFee:      includeFee,
		FeeAmount:       fee,
		Status:          "pending",
		StripeSessionID: &session.ID,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record pending payment"})
	}

	return c.JSON(fiber.Map{
		"session_id":   session.ID,
		"checkout_url": session.URL,
		"fee_amount":   fee,
		"total":        total,
	})
}
