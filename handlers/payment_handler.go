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

type PaymentRequest struct {
	InvoiceID  uuid.UUID `json:"invoice_id" validate:"required"`
	Amount     float64   `json:"amount" validate:"required,gt=0"`
	Method     string    `json:"method" validate:"required,oneof=check zelle cash internal"`
	IncludeFee *bool     `json:"include_fee"`
	Notes      *string   `json:"notes"`
}

// CreatePayment records a manually collected payment (check, zelle, cash,
// internal credit). Card payments go through the hosted Stripe checkout
// endpoints instead.
func CreatePayment(c *fiber.Ctx) error {
	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var invoice models.Invoice
	if err := database.DB.First(&invoice, "id = ?", req.InvoiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}

	includeFee := false
	if req.IncludeFee != nil {
		includeFee = *req.IncludeFee
	}
	fee, _ := services.CalculateFee(req.Amount, includeFee)

	payment := models.Payment{
		InvoiceID:  req.InvoiceID,
		CamperID:   &invoice.CamperID,
		Amount:     req.Amount,
		Method:     req.Method,
		IncludeFee: includeFee,
		FeeAmount:  fee,
		Notes:      req.Notes,
	}
	if err := services.RecordManualPayment(database.DB, &payment, currentAdminID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

func GetPayments(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Payment{}).Order("created_at desc")
	if invoiceID := c.Query("invoice_id"); invoiceID != "" {
		query = query.Where("invoice_id = ?", invoiceID)
	}
	if camperID := c.Query("camper_id"); camperID != "" {
		query = query.Where("camper_id = ?", camperID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var list []models.Payment
	if err := query.Find(&list).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(list)
}

// CalculatePaymentFee quotes the card surcharge for a given base amount.
func CalculatePaymentFee(c *fiber.Ctx) error {
	amount := c.QueryFloat("amount")
	if amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must be greater than zero"})
	}
	includeFee := c.QueryBool("include_fee", true)

	fee, total := services.CalculateFee(amount, includeFee)
	return c.JSON(fiber.Map{
		"base_amount": amount,
		"fee_rate":    services.CreditCardFeeRate,
		"fee_amount":  fee,
		"total":       total,
	})
}

type StripeCheckoutRequest struct {
	InvoiceID  uuid.UUID `json:"invoice_id" validate:"required"`
	Amount     float64   `json:"amount" validate:"required,gt=0"`
	IncludeFee *bool     `json:"include_fee"`
}

// CreateStripeCheckout opens a hosted checkout session for an invoice and
// records a pending card payment keyed to the session.
func CreateStripeCheckout(c *fiber.Ctx) error {
	var req StripeCheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var invoice models.Invoice
	if err := database.DB.First(&invoice, "id = ?", req.InvoiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}

	includeFee := true
	if req.IncludeFee != nil {
		includeFee = *req.IncludeFee
	}
	fee, total := services.CalculateFee(req.Amount, includeFee)

	frontendURL := config.Config("FRONTEND_URL")
	session, err := payments.CreateCheckoutSession(
		total,
		invoice.Description,
		frontendURL+"/payment/success?session_id={CHECKOUT_SESSION_ID}",
		frontendURL+"/payment/cancelled",
		map[string]string{
			"invoice_id": invoice.ID.String(),
			"camper_id":  invoice.CamperID.String(),
		},
	)
	if err != nil {
		log.Printf("🔥 Stripe checkout creation failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to create checkout session"})
	}

	payment := models.Payment{
		InvoiceID:       invoice.ID,
		CamperID:        &invoice.CamperID,
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

// GetStripeCheckoutStatus polls the gateway and, when the session has been
// paid, completes the local payment. Completion is idempotent so a poll
// racing the webhook posts the money once.
func GetStripeCheckoutStatus(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	session, err := payments.GetCheckoutStatus(sessionID)
	if err != nil {
		log.Printf("🔥 Stripe status poll failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to fetch checkout status"})
	}

	if session.PaymentStatus == "paid" {
		if _, err := services.CompleteStripePayment(database.DB, sessionID); err != nil {
			log.Printf("🔥 Failed to complete payment for session %s: %v", sessionID, err)
		}
	}

	return c.JSON(fiber.Map{
		"session_id":     session.ID,
		"status":         session.Status,
		"payment_status": session.PaymentStatus,
	})
}

// StripeWebhook handles checkout.session.completed events. The gateway
// retries on non-200, so every failure here is logged and acked, bad
// signatures included; a permanently failing event must not be redelivered
// for days. The status poll and the idempotent completer pick up anything
// missed.
func StripeWebhook(c *fiber.Ctx) error {
	event, err := payments.ParseWebhookEvent(c.Body(), c.Get("Stripe-Signature"))
	if err != nil {
		log.Printf("⚠️ Stripe webhook rejected: %v", err)
		return c.JSON(fiber.Map{"received": true})
	}

	if event.Type == "checkout.session.completed" && event.PaymentStatus == "paid" {
		if _, err := services.CompleteStripePayment(database.DB, event.SessionID); err != nil {
			log.Printf("🔥 Webhook completion failed for session %s: %v", event.SessionID, err)
		}
	}

	return c.JSON(fiber.Map{"received": true})
}
