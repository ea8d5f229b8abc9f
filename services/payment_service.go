package services

import (
	"errors"

	"github.com/campbaraisa/camp_admin/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplyPaymentCompletion posts a completed payment to its invoice and camper
// inside one transaction. Both counters move via atomic SQL increments and
// the invoice status is recomputed with guarded updates, so two payments
// confirmed at the same moment cannot lose an update.
func ApplyPaymentCompletion(db *gorm.DB, payment *models.Payment) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var invoice models.Invoice
		if err := tx.First(&invoice, "id = ?", payment.InvoiceID).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Invoice{}).
			Where("id = ?", invoice.ID).
			UpdateColumn("paid_amount", gorm.Expr("paid_amount + ?", payment.Amount)).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Invoice{}).
			Where("id = ? AND paid_amount >= amount", invoice.ID).
			UpdateColumn("status", "paid").Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Invoice{}).
			Where("id = ? AND paid_amount < amount", invoice.ID).
			UpdateColumn("status", "partial").Error; err != nil {
			return err
		}

		return tx.Model(&models.Camper{}).
			Where("id = ?", invoice.CamperID).
			UpdateColumn("total_paid", gorm.Expr("total_paid + ?", payment.Amount)).Error
	})
}

// CompleteStripePayment flips a pending gateway payment to completed and
// posts it, at most once per checkout session no matter how many times the
// status poll or webhook reports the same session as paid.
func CompleteStripePayment(db *gorm.DB, sessionID string) (*models.Payment, error) {
	var payment models.Payment
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Payment{}).
			Where("stripe_session_id = ? AND status = ?", sessionID, "pending").
			UpdateColumn("status", "completed")
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Unknown session or already reconciled.
			return gorm.ErrRecordNotFound
		}

		if err := tx.First(&payment, "stripe_session_id = ?", sessionID).Error; err != nil {
			return err
		}
		return ApplyPaymentCompletion(tx, &payment)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if payment.CamperID != nil {
		LogActivity(db, "camper", *payment.CamperID, "payment_completed", map[string]interface{}{
			"payment_id": payment.ID.String(),
			"invoice_id": payment.InvoiceID.String(),
			"amount":     payment.Amount,
			"method":     payment.Method,
		}, nil)
	}
	return &payment, nil
}

// RecordManualPayment creates a check/zelle/cash/internal payment, which is
// completed immediately, and posts it to the invoice and camper.
func RecordManualPayment(db *gorm.DB, payment *models.Payment, performedBy *uuid.UUID) error {
	payment.Status = "completed"
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return ApplyPaymentCompletion(tx, payment)
	})
	if err != nil {
		return err
	}

	if payment.CamperID != nil {
		LogActivity(db, "camper", *payment.CamperID, "payment_completed", map[string]interface{}{
			"payment_id": payment.ID.String(),
			"invoice_id": payment.InvoiceID.String(),
			"amount":     payment.Amount,
			"method":     payment.Method,
		}, performedBy)
	}
	return nil
}
