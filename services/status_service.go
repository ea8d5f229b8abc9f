package services

import (
	"errors"
	"log"

	"github.com/campbaraisa/camp_admin/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KanbanStatuses is the fixed ordered set of pipeline stages. Transitions are
// not constrained to adjacent stages; admins correct mistakes or skip ahead.
var KanbanStatuses = []string{
	"Applied",
	"Accepted",
	"Check/Unknown",
	"Invoice Sent",
	"Payment Plan - Request",
	"Payment Plan Running",
	"Sending Check",
	"Partial Paid",
	"Partial Paid & Committed",
	"Paid in Full",
}

// Only these stages have a template trigger bound to them.
var statusTriggers = map[string]string{
	"Accepted":     "status_accepted",
	"Paid in Full": "status_paid_in_full",
	"Invoice Sent": "invoice_sent",
}

var ErrInvalidStatus = errors.New("invalid status")

func IsValidStatus(status string) bool {
	for _, s := range KanbanStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type StatusChangeResult struct {
	OldStatus    string  `json:"old_status"`
	NewStatus    string  `json:"new_status"`
	Notified     bool    `json:"email_triggered"`
	Subject      string  `json:"subject,omitempty"`
	Body         string  `json:"body,omitempty"`
	TemplateName string  `json:"template_name,omitempty"`
	Warning      *string `json:"warning,omitempty"`
}

type StatusPreview struct {
	HasTemplate    bool    `json:"has_template"`
	TemplateName   string  `json:"template_name,omitempty"`
	TemplateType   string  `json:"template_type,omitempty"`
	Subject        string  `json:"subject"`
	Body           string  `json:"body"`
	RecipientEmail *string `json:"recipient_email,omitempty"`
	RecipientPhone *string `json:"recipient_phone,omitempty"`
}

// ApplyStatusChange moves a camper to newStatus and, when a template is bound
// to that stage, queues the rendered communication. The stage change is the
// primary fact: a failed queue insert is reported as a warning, never rolled
// back. Notification is skipped on same-status moves, on skipNotification,
// and when the stage has no bound trigger.
func ApplyStatusChange(db *gorm.DB, camper *models.Camper, newStatus string, skipNotification bool, performedBy *uuid.UUID) (*StatusChangeResult, error) {
	if !IsValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	oldStatus := camper.Status
	if err := db.Model(camper).Update("status", newStatus).Error; err != nil {
		return nil, err
	}
	camper.Status = newStatus

	LogActivity(db, "camper", camper.ID, "status_changed", map[string]interface{}{
		"old_status": oldStatus,
		"new_status": newStatus,
	}, performedBy)

	result := &StatusChangeResult{OldStatus: oldStatus, NewStatus: newStatus}

	trigger, hasTrigger := statusTriggers[newStatus]
	if !hasTrigger || oldStatus == newStatus || skipNotification {
		return result, nil
	}

	var template models.EmailTemplate
	if err := db.Where("trigger_name = ? AND is_active = ?", trigger, true).First(&template).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ Template lookup failed for trigger %s: %v", trigger, err)
		}
		return result, nil
	}

	data := BuildCamperMergeData(db, camper)
	subject, body := RenderTemplate(template.Subject, template.Body, data)

	comm := models.Communication{
		CamperID:       camper.ID,
		Type:           template.TemplateType,
		Subject:        &subject,
		Message:        body,
		Direction:      "outbound",
		Status:         "pending",
		RecipientEmail: camper.ParentEmail,
		TemplateID:     &template.ID,
	}
	if phone := camper.ParentPhone(); phone != "" {
		comm.RecipientPhone = &phone
	}
	if err := db.Create(&comm).Error; err != nil {
		log.Printf("⚠️ Status changed but communication insert failed for camper %s: %v", camper.ID, err)
		warning := "status updated but notification could not be queued"
		result.Warning = &warning
		return result, nil
	}

	LogActivity(db, "camper", camper.ID, "email_queued", map[string]interface{}{
		"type":          trigger,
		"email_id":      comm.ID.String(),
		"template_name": template.Name,
	}, performedBy)

	result.Notified = true
	result.Subject = subject
	result.Body = body
	result.TemplateName = template.Name
	return result, nil
}

// PreviewStatusEmail renders the communication a status change would queue,
// without persisting anything. Backs the review-before-confirming popup.
func PreviewStatusEmail(db *gorm.DB, camper *models.Camper, newStatus string) (*StatusPreview, error) {
	if !IsValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	trigger, hasTrigger := statusTriggers[newStatus]
	if !hasTrigger {
		return &StatusPreview{}, nil
	}

	var template models.EmailTemplate
	if err := db.Where("trigger_name = ? AND is_active = ?", trigger, true).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &StatusPreview{}, nil
		}
		return nil, err
	}

	data := BuildCamperMergeData(db, camper)
	data["camper_status"] = newStatus
	subject, body := RenderTemplate(template.Subject, template.Body, data)

	preview := &StatusPreview{
		HasTemplate:    true,
		TemplateName:   template.Name,
		TemplateType:   template.TemplateType,
		Subject:        subject,
		Body:           body,
		RecipientEmail: camper.ParentEmail,
	}
	if phone := camper.ParentPhone(); phone != "" {
		preview.RecipientPhone = &phone
	}
	return preview, nil
}
