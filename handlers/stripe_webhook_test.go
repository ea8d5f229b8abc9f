package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/campbaraisa/camp_admin/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func stripeSignature(secret, timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return "t=" + timestamp + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(t *testing.T, signature string, payload []byte) (int, map[string]interface{}) {
	t.Helper()

	app := fiber.New()
	app.Post("/api/v1/webhooks/stripe", StripeWebhook)

	req := httptest.NewRequest("POST", "/api/v1/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("webhook request failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode webhook response: %v", err)
	}
	return resp.StatusCode, body
}

// Stripe retries any non-200 response for days, so a bad signature must
// still be acknowledged.
func TestStripeWebhookAcksBadSignature(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")

	payload := []byte(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_bad","payment_status":"paid"}}}`)
	status, body := postWebhook(t, "t=1700000000,v1=deadbeef", payload)

	if status != fiber.StatusOK {
		t.Fatalf("expected 200 for bad signature, got %d", status)
	}
	if received, _ := body["received"].(bool); !received {
		t.Fatalf("expected received=true, got %v", body)
	}
}

func TestStripeWebhookAcksMissingSignature(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")

	status, body := postWebhook(t, "", []byte(`{}`))

	if status != fiber.StatusOK {
		t.Fatalf("expected 200 for missing signature, got %d", status)
	}
	if received, _ := body["received"].(bool); !received {
		t.Fatalf("expected received=true, got %v", body)
	}
}

func TestStripeWebhookCompletesPaidSession(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")
	db := setupTestDB(t)

	camper := models.Camper{FirstName: "Moshe", LastName: "Katz", PortalToken: "katz-hook"}
	if err := db.Create(&camper).Error; err != nil {
		t.Fatalf("create camper: %v", err)
	}
	invoice := models.Invoice{CamperID: camper.ID, Amount: 500, Description: "Summer 2026 deposit"}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	sessionID := "cs_test_" + uuid.NewString()
	pending := models.Payment{
		InvoiceID:       invoice.ID,
		CamperID:        &camper.ID,
		Amount:          500,
		Method:          "stripe",
		Status:          "pending",
		StripeSessionID: &sessionID,
	}
	if err := db.Create(&pending).Error; err != nil {
		t.Fatalf("create pending payment: %v", err)
	}

	payload := []byte(`{"type":"checkout.session.completed","data":{"object":{"id":"` + sessionID + `","payment_status":"paid"}}}`)
	status, body := postWebhook(t, stripeSignature("whsec_test", "1700000000", payload), payload)

	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if received, _ := body["received"].(bool); !received {
		t.Fatalf("expected received=true, got %v", body)
	}

	var payment models.Payment
	if err := db.First(&payment, "stripe_session_id = ?", sessionID).Error; err != nil {
		t.Fatalf("reload payment: %v", err)
	}
	if payment.Status != "completed" {
		t.Errorf("payment status = %q, want completed", payment.Status)
	}

	var reloaded models.Invoice
	if err := db.First(&reloaded, "id = ?", invoice.ID).Error; err != nil {
		t.Fatalf("reload invoice: %v", err)
	}
	if reloaded.Status != "paid" || reloaded.PaidAmount != 500 {
		t.Errorf("invoice = %q/%.2f, want paid/500.00", reloaded.Status, reloaded.PaidAmount)
	}
}
