package services

import (
	"testing"

	"github.com/campbaraisa/camp_admin/models"
	"gorm.io/gorm"
)

func seedInvoice(t *testing.T, db *gorm.DB, amount float64) (*models.Camper, *models.Invoice) {
	t.Helper()
	camper := seedCamper(t, db)
	invoice := models.Invoice{
		CamperID:    camper.ID,
		Amount:      amount,
		Description: "Camp Fee",
		Status:      "pending",
	}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	return camper, &invoice
}

func TestRecordManualPaymentPartialThenFull(t *testing.T) {
	db := newTestDB(t)
	camper, invoice := seedInvoice(t, db, 1000)

	first := models.Payment{
		InvoiceID: invoice.ID,
		CamperID:  &camper.ID,
		Amount:    500,
		Method:    "check",
	}
	if err := RecordManualPayment(db, &first, nil); err != nil {
		t.Fatalf("first payment: %v", err)
	}
	if first.Status != "completed" {
		t.Errorf("payment status = %q, want completed", first.Status)
	}

	var mid models.Invoice
	db.First(&mid, "id = ?", invoice.ID)
	if mid.PaidAmount != 500 || mid.Status != "partial" {
		t.Errorf("after first payment: paid=%v status=%q, want 500/partial", mid.PaidAmount, mid.Status)
	}

	second := models.Payment{
		InvoiceID: invoice.ID,
		CamperID:  &camper.ID,
		Amount:    500,
		Method:    "zelle",
	}
	if err := RecordManualPayment(db, &second, nil); err != nil {
		t.Fatalf("second payment: %v", err)
	}

	var final models.Invoice
	db.First(&final, "id = ?", invoice.ID)
	if final.PaidAmount != 1000 {
		t.Errorf("paid amount = %v, want 1000 (no lost update)", final.PaidAmount)
	}
	if final.Status != "paid" {
		t.Errorf("invoice status = %q, want paid", final.Status)
	}

	var freshCamper models.Camper
	db.First(&freshCamper, "id = ?", camper.ID)
	if freshCamper.TotalPaid != 1000 {
		t.Errorf("camper total paid = %v, want 1000", freshCamper.TotalPaid)
	}
}

func TestRecordManualPaymentOverpayMarksPaid(t *testing.T) {
	db := newTestDB(t)
	camper, invoice := seedInvoice(t, db, 300)

	payment := models.Payment{
		InvoiceID: invoice.ID,
		CamperID:  &camper.ID,
		Amount:    350,
		Method:    "cash",
	}
	if err := RecordManualPayment(db, &payment, nil); err != nil {
		t.Fatalf("payment: %v", err)
	}

	var fresh models.Invoice
	db.First(&fresh, "id = ?", invoice.ID)
	if fresh.Status != "paid" || fresh.PaidAmount != 350 {
		t.Errorf("invoice = %v/%q, want 350/paid", fresh.PaidAmount, fresh.Status)
	}
}

func TestCompleteStripePaymentAppliesOnce(t *testing.T) {
	db := newTestDB(t)
	camper, invoice := seedInvoice(t, db, 1000)

	sessionID := "cs_test_123"
	pending := models.Payment{
		InvoiceID:       invoice.ID,
		CamperID:        &camper.ID,
		Amount:          1000,
		Method:          "stripe",
		Status:          "pending",
		StripeSessionID: &sessionID,
	}
	if err := db.Create(&pending).Error; err != nil {
		t.Fatalf("seed pending payment: %v", err)
	}

	// First completion: webhook or status poll, whichever lands first.
	completed, err := CompleteStripePayment(db, sessionID)
	if err != nil {
		t.Fatalf("first completion: %v", err)
	}
	if completed == nil || completed.Status != "completed" {
		t.Fatal("expected a completed payment on first call")
	}

	// Second completion for the same session must be a no-op.
	again, err := CompleteStripePayment(db, sessionID)
	if err != nil {
		t.Fatalf("second completion: %v", err)
	}
	if again != nil {
		t.Error("second completion returned a payment, want nil no-op")
	}

	var fresh models.Invoice
	db.First(&fresh, "id = ?", invoice.ID)
	if fresh.PaidAmount != 1000 {
		t.Errorf("paid amount = %v, want 1000 applied exactly once", fresh.PaidAmount)
	}
	if fresh.Status != "paid" {
		t.Errorf("invoice status = %q, want paid", fresh.Status)
	}

	var freshCamper models.Camper
	db.First(&freshCamper, "id = ?", camper.ID)
	if freshCamper.TotalPaid != 1000 {
		t.Errorf("camper total paid = %v, want 1000", freshCamper.TotalPaid)
	}
}

func TestCompleteStripePaymentUnknownSession(t *testing.T) {
	db := newTestDB(t)

	payment, err := CompleteStripePayment(db, "cs_missing")
	if err != nil {
		t.Fatalf("unknown session: %v", err)
	}
	if payment != nil {
		t.Error("unknown session returned a payment, want nil")
	}
}
