package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signPayload(secret, timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestParseWebhookEvent(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")

	payload := []byte(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_123","payment_status":"paid"}}}`)
	header := "t=1700000000,v1=" + signPayload("whsec_test", "1700000000", payload)

	event, err := ParseWebhookEvent(payload, header)
	if err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}
	if event.Type != "checkout.session.completed" {
		t.Errorf("type = %q", event.Type)
	}
	if event.SessionID != "cs_123" {
		t.Errorf("session id = %q", event.SessionID)
	}
	if event.PaymentStatus != "paid" {
		t.Errorf("payment status = %q", event.PaymentStatus)
	}
}

func TestParseWebhookEventRejectsTampering(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")

	payload := []byte(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_123","payment_status":"paid"}}}`)
	header := "t=1700000000,v1=" + signPayload("whsec_test", "1700000000", payload)
	tampered := []byte(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_456","payment_status":"paid"}}}`)

	if _, err := ParseWebhookEvent(tampered, header); err == nil {
		t.Error("expected error for tampered payload")
	}
	if _, err := ParseWebhookEvent(payload, "t=1700000000,v1=deadbeef"); err == nil {
		t.Error("expected error for forged signature")
	}
	if _, err := ParseWebhookEvent(payload, ""); err == nil {
		t.Error("expected error for missing header")
	}
}
